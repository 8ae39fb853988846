package avr

import "golang.org/x/exp/constraints"

// Width is the storage of a register value.
type Width interface {
	constraints.Unsigned
	~uint8 | ~uint16
}

// Bits converts a raw value into the bit set F. This and the Raw functions
// are the only crossings between raw integers and typed masks. Bits panics if
// raw has bits outside the width of F.
func Bits[F Width](raw uint16) F {
	f := F(raw)
	if uint16(f) != raw {
		panic("avr: raw value wider than the register")
	}
	return f
}

// Zero is the empty mask of F.
func Zero[F Width]() F { return 0 }

// Bit is the single-bit mask of F at position n.
func Bit[F Width](n uint8) F { return F(1) << n }

// Mask combines the single-bit masks at the given positions.
func Mask[F Width](positions ...uint8) F {
	var m F
	for _, n := range positions {
		m |= Bit[F](n)
	}
	return m
}

// Raw8 drops the register tag of an 8-bit mask.
func Raw8[F ~uint8](bits F) uint8 { return uint8(bits) }

// Raw16 drops the register tag of a 16-bit mask.
func Raw16[F ~uint16](bits F) uint16 { return uint16(bits) }

// bitAt extracts bit i of v as 0 or 1.
func bitAt[T constraints.Unsigned](v T, i uint) T {
	return (v >> i) & 1
}
