package devicedesc

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"

	"rp6/avr/interrupt"
)

// Validation errors. Build wraps them with the position of the offending
// statement.
var (
	ErrDuplicateName   = errors.New("devicedesc: name declared twice")
	ErrDuplicateSlot   = errors.New("devicedesc: vector slot declared twice")
	ErrAddressRange    = errors.New("devicedesc: address outside the data space")
	ErrRegisterOverlap = errors.New("devicedesc: register overlaps another register")
	ErrUnknownRegister = errors.New("devicedesc: unknown register")
	ErrPinRegister     = errors.New("devicedesc: pin register is not 8 bits wide")
	ErrBitRange        = errors.New("devicedesc: pin bit outside 0-7")
	ErrSlotRange       = errors.New("devicedesc: vector slot out of range")
	ErrNoReset         = errors.New("devicedesc: slot 0 must be RESET")
)

// MaxAddress is the highest data-space address a register may occupy.
const MaxAddress = 0xFF

//go:embed atmega32.dev
var atmega32Source string

// ATmega32Source returns the bundled ATmega32 description.
func ATmega32Source() string { return atmega32Source }

// ATmega32 loads the bundled ATmega32 description.
func ATmega32() (*Device, error) {
	return LoadString("atmega32.dev", atmega32Source)
}

// Register is a validated register declaration.
type Register struct {
	Name    string
	Address uint16
	Width   int // 8 or 16
}

// Pin is a validated pin declaration.
type Pin struct {
	Name string
	DDR  string
	Out  string
	In   string
	Bit  uint8
}

// Mask is the pin's single-bit mask.
func (p Pin) Mask() uint8 { return 1 << p.Bit }

// Vector is a validated interrupt vector.
type Vector struct {
	Name string
	Slot uint8
}

// Device is a validated description.
type Device struct {
	Name      string
	Registers []Register
	Pins      []Pin
	Vectors   []Vector

	registers map[string]int
	pins      map[string]int
	vectors   map[string]int
}

func (d *Device) Register(name string) (Register, bool) {
	i, ok := d.registers[name]
	if !ok {
		return Register{}, false
	}
	return d.Registers[i], true
}

func (d *Device) Pin(name string) (Pin, bool) {
	i, ok := d.pins[name]
	if !ok {
		return Pin{}, false
	}
	return d.Pins[i], true
}

func (d *Device) Vector(name string) (Vector, bool) {
	i, ok := d.vectors[name]
	if !ok {
		return Vector{}, false
	}
	return d.Vectors[i], true
}

// VectorTable converts the vectors into the table used at run time.
func (d *Device) VectorTable() interrupt.Table {
	t := make(interrupt.Table, len(d.Vectors))
	for i, v := range d.Vectors {
		t[i] = interrupt.Named{Name: v.Name, Vector: interrupt.Vector(v.Slot)}
	}
	return t
}

// Build validates a parsed description. Every problem found is reported;
// the errors are joined.
func Build(f *File) (*Device, error) {
	d := &Device{
		Name:      f.Device,
		registers: map[string]int{},
		pins:      map[string]int{},
		vectors:   map[string]int{},
	}
	var errs []error
	fail := func(pos fmt.Stringer, what, name string, err error) {
		errs = append(errs, fmt.Errorf("%s: %s %s: %w", pos, what, name, err))
	}

	for _, decl := range f.Decls {
		r := decl.Register
		if r == nil {
			continue
		}
		addr, err := strconv.ParseUint(r.Address, 0, 16)
		width := 8
		if r.Width == "u16" {
			width = 16
		}
		switch {
		case err != nil || addr+uint64(width/8)-1 > MaxAddress:
			fail(r.Pos, "register", r.Name, ErrAddressRange)
			continue
		case d.hasRegister(r.Name):
			fail(r.Pos, "register", r.Name, ErrDuplicateName)
			continue
		}
		reg := Register{Name: r.Name, Address: uint16(addr), Width: width}
		if other, ok := d.overlapping(reg); ok {
			fail(r.Pos, "register", r.Name, fmt.Errorf("%w: %s", ErrRegisterOverlap, other))
			continue
		}
		d.registers[reg.Name] = len(d.Registers)
		d.Registers = append(d.Registers, reg)
	}

	for _, decl := range f.Decls {
		switch {
		case decl.Port != nil:
			p := decl.Port
			if err := d.checkTriple(p.DDR, p.Out, p.In); err != nil {
				fail(p.Pos, "port", p.Name, err)
				continue
			}
			for bit := uint8(0); bit < 8; bit++ {
				name := p.Name + strconv.Itoa(int(bit))
				if err := d.addPin(Pin{Name: name, DDR: p.DDR, Out: p.Out, In: p.In, Bit: bit}); err != nil {
					fail(p.Pos, "pin", name, err)
				}
			}
		case decl.Pin != nil:
			p := decl.Pin
			bit, err := strconv.ParseUint(p.Bit, 10, 8)
			if err != nil || bit > 7 {
				fail(p.Pos, "pin", p.Name, ErrBitRange)
				continue
			}
			if err := d.checkTriple(p.DDR, p.Out, p.In); err != nil {
				fail(p.Pos, "pin", p.Name, err)
				continue
			}
			if err := d.addPin(Pin{Name: p.Name, DDR: p.DDR, Out: p.Out, In: p.In, Bit: uint8(bit)}); err != nil {
				fail(p.Pos, "pin", p.Name, err)
			}
		case decl.Vector != nil:
			v := decl.Vector
			slot, err := strconv.ParseUint(v.Slot, 10, 8)
			if err != nil || slot >= interrupt.MaxVectors {
				fail(v.Pos, "vector", v.Name, ErrSlotRange)
				continue
			}
			if err := d.addVector(Vector{Name: v.Name, Slot: uint8(slot)}); err != nil {
				fail(v.Pos, "vector", v.Name, err)
			}
		}
	}

	if len(d.Vectors) > 0 {
		if v, ok := d.vectorAt(0); !ok || v.Name != "RESET" {
			errs = append(errs, fmt.Errorf("device %s: %w", d.Name, ErrNoReset))
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return d, nil
}

func (d *Device) hasRegister(name string) bool {
	_, ok := d.registers[name]
	return ok
}

// overlapping finds a register sharing a byte with r. Two 8-bit registers at
// the same address are aliases (UCSRC/UBRRH) and allowed.
func (d *Device) overlapping(r Register) (string, bool) {
	lo, hi := r.Address, r.Address+uint16(r.Width/8)-1
	for _, o := range d.Registers {
		if o.Address == r.Address && o.Width == 8 && r.Width == 8 {
			continue
		}
		olo, ohi := o.Address, o.Address+uint16(o.Width/8)-1
		if lo <= ohi && olo <= hi {
			return o.Name, true
		}
	}
	return "", false
}

func (d *Device) checkTriple(names ...string) error {
	for _, name := range names {
		r, ok := d.Register(name)
		if !ok {
			return fmt.Errorf("%w %s", ErrUnknownRegister, name)
		}
		if r.Width != 8 {
			return fmt.Errorf("%w: %s", ErrPinRegister, name)
		}
	}
	return nil
}

func (d *Device) addPin(p Pin) error {
	if _, ok := d.pins[p.Name]; ok {
		return ErrDuplicateName
	}
	d.pins[p.Name] = len(d.Pins)
	d.Pins = append(d.Pins, p)
	return nil
}

func (d *Device) addVector(v Vector) error {
	if _, ok := d.vectors[v.Name]; ok {
		return ErrDuplicateName
	}
	if other, ok := d.vectorAt(v.Slot); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSlot, other.Name)
	}
	d.vectors[v.Name] = len(d.Vectors)
	d.Vectors = append(d.Vectors, v)
	return nil
}

func (d *Device) vectorAt(slot uint8) (Vector, bool) {
	for _, v := range d.Vectors {
		if v.Slot == slot {
			return v, true
		}
	}
	return Vector{}, false
}
