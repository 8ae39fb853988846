package robot

import (
	"testing"

	"rp6/avr"
	"rp6/avr/atmega32"
	"rp6/avr/interrupt"
)

func reset() {
	avr.ResetMemory()
	interrupt.ResetSimulator()
}

func TestInitPorts(t *testing.T) {
	reset()
	InitPorts()

	regs := []struct {
		name      string
		got, want uint8
	}{
		{"PORTA", atmega32.PORTA.Read(), 0b00000000},
		{"PORTB", atmega32.PORTB.Read(), 0b00000000},
		{"PORTC", atmega32.PORTC.Read(), 0b00000000},
		{"PORTD", atmega32.PORTD.Read(), 0b00000001},
		{"DDRA", atmega32.DDRA.Read(), 0b00000000},
		{"DDRB", atmega32.DDRB.Read(), 0b01011000},
		{"DDRC", atmega32.DDRC.Read(), 0b10001100},
		{"DDRD", atmega32.DDRD.Read(), 0b11110010},
	}
	for _, r := range regs {
		if r.got != r.want {
			t.Errorf("%s = %#08b, want %#08b", r.name, r.got, r.want)
		}
	}
}

func TestInit(t *testing.T) {
	reset()
	Init()

	if !interrupt.Enabled() || interrupt.Depth() != 0 {
		t.Fatalf("interrupts enabled %v at depth %d", interrupt.Enabled(), interrupt.Depth())
	}
	if !ResetButton.IsLow() || ResetButton.DDR().IsMaskSetRaw(ResetButton.Mask()) {
		t.Error("reset button not released")
	}
	if !IRComm.IsLow() {
		t.Error("IRCOMM on")
	}
	// ACS off turns both power lines into inputs.
	if got := atmega32.DDRB.Read(); got != 0b01010000 {
		t.Errorf("DDRB = %#08b", got)
	}
	if got := atmega32.DDRD.Read(); got != 0b10110010 {
		t.Errorf("DDRD = %#08b", got)
	}
	if !atmega32.UCSRB.IsSet(atmega32.RXEN | atmega32.TXEN) {
		t.Errorf("serial not initialised, UCSRB = %#08b", atmega32.UCSRB.Read())
	}
}

func TestPower(t *testing.T) {
	reset()
	InitPorts()

	PowerOn()
	if !PowerOnPin.IsHigh() {
		t.Fatal("power not on")
	}
	PowerOff()
	if !PowerOnPin.IsLow() {
		t.Fatal("power not off")
	}

	DisableResetButton()
	if !ResetButton.DDR().IsMaskSetRaw(ResetButton.Mask()) || !ResetButton.IsLow() {
		t.Fatal("reset line not driven low")
	}
	EnableResetButton()
	if ResetButton.DDR().IsMaskSetRaw(ResetButton.Mask()) {
		t.Fatal("reset line still driven")
	}
}

func TestSetLEDs(t *testing.T) {
	reset()
	InitPorts()
	PowerOn()

	SetLEDs(0b101101)

	if got := atmega32.PORTC.Read() & 0b01110000; got != 0b01010000 {
		t.Errorf("PORTC LEDs = %#08b", got)
	}
	if got := atmega32.PORTB.Read(); got != 0b10010001 {
		t.Errorf("PORTB = %#08b, want LED4, LED6 and power on", got)
	}
	if got := LEDs(); got != 0b101101 {
		t.Errorf("LEDs() = %#06b", got)
	}

	for v := uint8(0); v < 64; v++ {
		SetLEDs(v)
		if LEDs() != v {
			t.Fatalf("SetLEDs(%#06b) reads back %#06b", v, LEDs())
		}
	}

	SetLEDs(0xFF)
	if LEDs() != 0b111111 {
		t.Fatalf("upper bits leaked: %#08b", LEDs())
	}
}

func TestSetACSPower(t *testing.T) {
	tests := []struct {
		level             ACSLevel
		pwrOut, pwrHigh   bool
		pwrHOut, pwrHHigh bool
	}{
		{ACSOff, false, false, false, false},
		{ACSLow, true, true, false, false},
		{ACSMedium, false, false, true, true},
		{ACSHigh, true, true, true, true},
	}
	for _, tt := range tests {
		reset()
		InitPorts()
		ACSLeft.SetHigh()
		SetACSPower(tt.level)

		out := func(p avr.Pin) bool { return p.DDR().IsMaskSetRaw(p.Mask()) }
		if out(ACSPower) != tt.pwrOut || ACSPower.IsHigh() != tt.pwrHigh {
			t.Errorf("level %d: ACS_PWR output %v high %v", tt.level, out(ACSPower), ACSPower.IsHigh())
		}
		if out(ACSPowerHigh) != tt.pwrHOut || ACSPowerHigh.IsHigh() != tt.pwrHHigh {
			t.Errorf("level %d: ACS_PWRH output %v high %v", tt.level, out(ACSPowerHigh), ACSPowerHigh.IsHigh())
		}
		if tt.level == ACSOff && ACSLeft.IsHigh() {
			t.Errorf("ACS_L still high after power off")
		}
	}

	defer func() {
		if recover() == nil {
			t.Fatal("unknown level accepted")
		}
	}()
	SetACSPower(ACSHigh + 1)
}

func TestMotors(t *testing.T) {
	reset()
	InitPorts()

	if err := InitMotors(); err != nil {
		t.Fatal(err)
	}
	if atmega32.ICR1.Read() != MaxPower {
		t.Fatalf("ICR1 = %d", atmega32.ICR1.Read())
	}

	SetMotorPower(300, 100)
	if atmega32.OCR1B.Read() != MaxPower || atmega32.OCR1A.Read() != 100 {
		t.Errorf("OCR1A %d OCR1B %d", atmega32.OCR1A.Read(), atmega32.OCR1B.Read())
	}

	SetMotorDirection(Backward, Forward)
	if !DirLeft.IsHigh() || !DirRight.IsLow() {
		t.Errorf("DirLeft high %v DirRight high %v", DirLeft.IsHigh(), DirRight.IsHigh())
	}

	StopMotors()
	if atmega32.OCR1A.Read() != 0 || atmega32.OCR1B.Read() != 0 {
		t.Errorf("motors still driven")
	}
}
