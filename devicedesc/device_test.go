package devicedesc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseATmega32(t *testing.T) {
	d, err := ATmega32()
	if err != nil {
		t.Fatalf("bundled description: %v", err)
	}

	if d.Name != "atmega32" {
		t.Errorf("device name %q", d.Name)
	}
	if len(d.Vectors) != 21 {
		t.Errorf("got %d vectors, want 21", len(d.Vectors))
	}
	if len(d.Pins) != 32 {
		t.Errorf("got %d pins, want 32", len(d.Pins))
	}

	tests := []struct {
		name string
		addr uint16
		wide int
	}{
		{"PORTA", 0x3B, 8},
		{"PIND", 0x30, 8},
		{"TCNT1", 0x4C, 16},
		{"UCSRC", 0x40, 8},
		{"UBRRH", 0x40, 8},
	}
	for _, tt := range tests {
		r, ok := d.Register(tt.name)
		if !ok || r.Address != tt.addr || r.Width != tt.wide {
			t.Errorf("%s = %+v (found %v)", tt.name, r, ok)
		}
	}

	if p, ok := d.Pin("C4"); !ok || p.Out != "PORTC" || p.Mask() != 0x10 {
		t.Errorf("C4 = %+v", p)
	}
	if v, ok := d.Vector("TIMER0_OVF"); !ok || v.Slot != 11 {
		t.Errorf("TIMER0_OVF = %+v", v)
	}
	if _, ok := d.Vector("TIMER9_OVF"); ok {
		t.Error("unknown vector found")
	}

	table := d.VectorTable()
	if v, ok := table.Lookup("USART_RXC"); !ok || v != 13 {
		t.Errorf("table lookup USART_RXC = %d %v", v, ok)
	}
}

func TestPinDeclaration(t *testing.T) {
	src := `
device tiny;
register DDRB  0x37 u8;
register PORTB 0x38 u8;
register PINB  0x36 u8;
pin LED ddr DDRB out PORTB in PINB bit 5;  # status LED
vector RESET 0;
`
	d, err := LoadString("tiny.dev", src)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p, ok := d.Pin("LED")
	if !ok || p.Bit != 5 || p.DDR != "DDRB" || p.In != "PINB" {
		t.Fatalf("LED = %+v", p)
	}
}

func TestValidationErrors(t *testing.T) {
	base := "device bad;\nregister DDRB 0x37 u8;\nregister PORTB 0x38 u8;\nregister PINB 0x36 u8;\nregister T1 0x4C u16;\nvector RESET 0;\n"

	tests := []struct {
		name string
		src  string
		want error
	}{
		{"duplicate register", "register DDRB 0x50 u8;", ErrDuplicateName},
		{"address range", "register FAR 0x1FF u8;", ErrAddressRange},
		{"16-bit past end", "register WIDE 0xFF u16;", ErrAddressRange},
		{"overlap", "register T1H 0x4D u8;", ErrRegisterOverlap},
		{"unknown register", "pin X ddr DDRB out PORTX in PINB bit 1;", ErrUnknownRegister},
		{"wide pin register", "pin X ddr DDRB out T1 in PINB bit 1;", ErrPinRegister},
		{"bit range", "pin X ddr DDRB out PORTB in PINB bit 8;", ErrBitRange},
		{"duplicate pin", "port B ddr DDRB out PORTB in PINB;\npin B3 ddr DDRB out PORTB in PINB bit 3;", ErrDuplicateName},
		{"duplicate vector name", "vector INT0 1;\nvector INT0 2;", ErrDuplicateName},
		{"duplicate slot", "vector INT0 1;\nvector INT1 1;", ErrDuplicateSlot},
		{"slot range", "vector HUGE 40;", ErrSlotRange},
		{"second vector at reset slot", "vector RESET2 0;", ErrDuplicateSlot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadString("bad.dev", base+tt.src)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMissingReset(t *testing.T) {
	_, err := LoadString("bad.dev", "device bad;\nvector INT0 1;\n")
	if !errors.Is(err, ErrNoReset) {
		t.Fatalf("err = %v", err)
	}
}

func TestErrorsCarryPosition(t *testing.T) {
	_, err := LoadString("pos.dev", "device bad;\n\nregister A 0x20 u8;\nregister A 0x21 u8;\n")
	if err == nil || !strings.Contains(err.Error(), "pos.dev:4:") {
		t.Fatalf("err = %v", err)
	}
}

func TestSyntaxError(t *testing.T) {
	if _, err := LoadString("syntax.dev", "device x;\nregister A u8;\n"); err == nil {
		t.Fatal("missing address accepted")
	}
	if _, err := LoadString("syntax.dev", "register A 0x20 u8;\n"); err == nil {
		t.Fatal("missing device statement accepted")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atmega32.dev")
	if err := os.WriteFile(path, []byte(ATmega32Source()), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(d.Registers) == 0 {
		t.Fatal("no registers")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.dev")); err == nil {
		t.Fatal("missing file accepted")
	}
}
