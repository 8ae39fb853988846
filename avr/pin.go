package avr

// Direction of a pin.
type Direction uint8

const (
	Input Direction = iota
	Output
)

// Pin is one bit of an I/O port: the data-direction register, the output
// register, the input register and the bit position shared by all three.
//
// Level operations (SetHigh, SetLow, Toggle) assume the pin is an output and
// the polls (IsHigh, IsLow) assume it is an input. Neither is checked.
type Pin struct {
	ddr    Register8[uint8]
	port   Register8[uint8]
	pin    Register8[uint8]
	offset uint8
}

// NewPin builds a pin from its register triple. It panics if offset is
// outside 0-7.
func NewPin[D, P, I ~uint8](ddr Register8[D], port Register8[P], pin Register8[I], offset uint8) Pin {
	if offset > 7 {
		panic("avr: pin offset out of range")
	}
	return Pin{
		ddr:    Register8[uint8](ddr),
		port:   Register8[uint8](port),
		pin:    Register8[uint8](pin),
		offset: offset,
	}
}

func (p Pin) Offset() uint8 { return p.offset }

// Mask is the single-bit mask of the pin, 1 << Offset().
func (p Pin) Mask() uint8 { return 1 << p.offset }

// DDR returns the untyped direction register.
func (p Pin) DDR() Register8[uint8] { return p.ddr }

// Port returns the untyped output register.
func (p Pin) Port() Register8[uint8] { return p.port }

// In returns the untyped input register.
func (p Pin) In() Register8[uint8] { return p.pin }

func (p Pin) SetDirection(d Direction) {
	if d == Output {
		p.SetOutput()
		return
	}
	p.SetInput()
}

func (p Pin) SetInput()  { p.ddr.UnsetMaskRaw(p.Mask()) }
func (p Pin) SetOutput() { p.ddr.SetMaskRaw(p.Mask()) }
func (p Pin) SetHigh()   { p.port.SetMaskRaw(p.Mask()) }
func (p Pin) SetLow()    { p.port.UnsetMaskRaw(p.Mask()) }
func (p Pin) Toggle()    { p.port.ToggleRaw(p.Mask()) }

// IsHigh polls the input register.
func (p Pin) IsHigh() bool { return p.pin.IsMaskSetRaw(p.Mask()) }

// IsLow polls the input register independently of IsHigh.
func (p Pin) IsLow() bool { return p.pin.IsClearRaw(p.Mask()) }

// SetPins makes every pin an output with one direction write and drives them
// with one output write. Bit 0 of value goes to the first pin, bit 1 to the
// second and so on. All pins must share their direction and output
// registers; SetPins panics otherwise.
func SetPins(value uint8, pins ...Pin) {
	if len(pins) == 0 {
		return
	}
	ddr, port := pins[0].ddr, pins[0].port

	var mask, levels uint8
	for i, p := range pins {
		if p.ddr != ddr || p.port != port {
			panic("avr: SetPins across different ports")
		}
		mask |= p.Mask()
		levels |= bitAt(value, uint(i)) << p.offset
	}

	ddr.SetMaskRaw(mask)
	port.Write(port.Read()&^mask | levels&mask)
}
