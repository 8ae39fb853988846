// Package avr gives typed access to the memory-mapped registers and I/O pins
// of 8-bit AVR microcontrollers.
//
// A register is a constant: its value is the data-space address and its type
// carries the register's bit-set type, so a mask built for one register cannot
// be applied to another:
//
//	const UCSRB avr.Register8[UCSRBBits] = 0x2A
//
//	UCSRB.Set(TXEN | RXEN)  // ok
//	UCSRB.Set(TWEN)         // compile error: TWCRBits is not UCSRBBits
//
// None of the read-modify-write operations are atomic with respect to
// interrupts. Wrap them in a critical section (package avr/interrupt) when a
// handler touches the same register.
package avr

// Register8 is an 8-bit register at a fixed data-space address.
type Register8[F ~uint8] uintptr

// Address returns the data-space address of r.
func (r Register8[F]) Address() uintptr { return uintptr(r) }

// Read performs one volatile load.
func (r Register8[F]) Read() uint8 { return load8(uintptr(r)) }

// Write performs one volatile store.
func (r Register8[F]) Write(v uint8) { store8(uintptr(r), v) }

// ReadBits reads r as its bit-set type.
func (r Register8[F]) ReadBits() F { return F(r.Read()) }

// WriteBits stores bits, replacing the whole register.
func (r Register8[F]) WriteBits(bits F) { r.Write(uint8(bits)) }

// Set sets every bit of bits, leaving the others unchanged.
func (r Register8[F]) Set(bits F) { r.SetMaskRaw(uint8(bits)) }

// Unset clears every bit of bits, leaving the others unchanged.
func (r Register8[F]) Unset(bits F) { r.UnsetMaskRaw(uint8(bits)) }

// Toggle inverts every bit of bits.
func (r Register8[F]) Toggle(bits F) { r.ToggleRaw(uint8(bits)) }

// IsSet reports whether all bits of bits read as 1.
func (r Register8[F]) IsSet(bits F) bool { return r.IsMaskSetRaw(uint8(bits)) }

// IsClear reports whether all bits of bits read as 0.
func (r Register8[F]) IsClear(bits F) bool { return r.IsClearRaw(uint8(bits)) }

// WaitUntilSet spins until all bits of bits read as 1.
func (r Register8[F]) WaitUntilSet(bits F) { r.WaitUntilMaskSetRaw(uint8(bits)) }

func (r Register8[F]) SetMaskRaw(mask uint8) {
	a := uintptr(r)
	store8(a, load8(a)|mask)
}

func (r Register8[F]) UnsetMaskRaw(mask uint8) {
	a := uintptr(r)
	store8(a, load8(a)&^mask)
}

func (r Register8[F]) ToggleRaw(mask uint8) {
	a := uintptr(r)
	store8(a, load8(a)^mask)
}

func (r Register8[F]) IsMaskSetRaw(mask uint8) bool {
	return r.Read()&mask == mask
}

func (r Register8[F]) IsClearRaw(mask uint8) bool {
	return r.Read()&mask == 0
}

// WaitUntilMaskSetRaw re-reads r until all bits of mask are 1. There is no
// timeout: the caller must only wait for conditions the hardware will
// eventually raise.
func (r Register8[F]) WaitUntilMaskSetRaw(mask uint8) {
	for !r.IsMaskSetRaw(mask) {
	}
}

// Register16 is a 16-bit register pair. The low byte lives at the address,
// the high byte at the address plus one. Accesses go through the shared TEMP
// register: reads take the low byte first, writes store the high byte first.
type Register16[F ~uint16] uintptr

func (r Register16[F]) Address() uintptr { return uintptr(r) }
func (r Register16[F]) Read() uint16     { return load16(uintptr(r)) }
func (r Register16[F]) Write(v uint16)   { store16(uintptr(r), v) }
func (r Register16[F]) ReadBits() F      { return F(r.Read()) }
func (r Register16[F]) WriteBits(bits F) { r.Write(uint16(bits)) }

func (r Register16[F]) Set(bits F)          { r.SetMaskRaw(uint16(bits)) }
func (r Register16[F]) Unset(bits F)        { r.UnsetMaskRaw(uint16(bits)) }
func (r Register16[F]) Toggle(bits F)       { r.ToggleRaw(uint16(bits)) }
func (r Register16[F]) IsSet(bits F) bool   { return r.IsMaskSetRaw(uint16(bits)) }
func (r Register16[F]) IsClear(bits F) bool { return r.IsClearRaw(uint16(bits)) }
func (r Register16[F]) WaitUntilSet(bits F) { r.WaitUntilMaskSetRaw(uint16(bits)) }

func (r Register16[F]) SetMaskRaw(mask uint16)   { r.Write(r.Read() | mask) }
func (r Register16[F]) UnsetMaskRaw(mask uint16) { r.Write(r.Read() &^ mask) }
func (r Register16[F]) ToggleRaw(mask uint16)    { r.Write(r.Read() ^ mask) }

func (r Register16[F]) IsMaskSetRaw(mask uint16) bool { return r.Read()&mask == mask }
func (r Register16[F]) IsClearRaw(mask uint16) bool   { return r.Read()&mask == 0 }

func (r Register16[F]) WaitUntilMaskSetRaw(mask uint16) {
	for !r.IsMaskSetRaw(mask) {
	}
}

func load16(addr uintptr) uint16 {
	lo := load8(addr)
	hi := load8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func store16(addr uintptr, v uint16) {
	store8(addr+1, uint8(v>>8))
	store8(addr, uint8(v))
}
