package timer

import (
	"errors"
	"testing"

	"rp6/avr"
	"rp6/avr/atmega32"
	"rp6/avr/interrupt"
)

func reset() {
	avr.ResetMemory()
	interrupt.ResetSimulator()
}

func TestTick100us(t *testing.T) {
	reset()
	atmega32.TIMSK.WriteBits(atmega32.TOIE1)

	if err := Configure0(Tick100us); err != nil {
		t.Fatal(err)
	}
	// CTC, clk/8: the value the RP6 library writes.
	if got := atmega32.TCCR0.Read(); got != 0b00001010 {
		t.Errorf("TCCR0 = %#08b", got)
	}
	if atmega32.OCR0.Read() != 99 {
		t.Errorf("OCR0 = %d", atmega32.OCR0.Read())
	}
	if !atmega32.TIMSK.IsSet(atmega32.OCIE0|atmega32.TOIE1) || atmega32.TIMSK.IsSet(atmega32.TOIE0) {
		t.Errorf("TIMSK = %#08b", atmega32.TIMSK.Read())
	}
	if interrupt.Depth() != 0 {
		t.Errorf("critical section left open")
	}
}

func TestConfigure0ClockLastWrite(t *testing.T) {
	reset()
	stop := avr.RecordWrites()
	if err := Configure0(Setup8{Waveform: FastPWM8, Prescaler: Div64, Compare: 7}); err != nil {
		t.Fatal(err)
	}
	writes := stop()

	first, last := writes[0], writes[len(writes)-1]
	if first.Addr != atmega32.TCCR0.Address() || first.Value != 0 {
		t.Errorf("first write %+v, want the timer stopped", first)
	}
	want := uint8(atmega32.WGM00|atmega32.WGM01) | 3
	if last.Addr != atmega32.TCCR0.Address() || last.Value != want {
		t.Errorf("last write %+v, want TCCR0 = %#08b", last, want)
	}
}

func TestPrescalers(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(Prescaler) error
		p    Prescaler
		cs   uint8
		err  error
	}{
		{"timer0 clk/1024", func(p Prescaler) error { return Configure0(Setup8{Prescaler: p}) }, Div1024, 5, nil},
		{"timer0 clk/32", func(p Prescaler) error { return Configure0(Setup8{Prescaler: p}) }, Div32, 0, ErrPrescaler},
		{"timer2 clk/32", func(p Prescaler) error { return Configure2(Setup8{Prescaler: p}) }, Div32, 3, nil},
		{"timer2 clk/1024", func(p Prescaler) error { return Configure2(Setup8{Prescaler: p}) }, Div1024, 7, nil},
		{"timer1 clk/128", func(p Prescaler) error { return Configure1(Setup16{Prescaler: p}) }, Div128, 0, ErrPrescaler},
		{"timer1 clk/256", func(p Prescaler) error { return Configure1(Setup16{Prescaler: p}) }, Div256, 4, nil},
		{"stopped", func(p Prescaler) error { return Configure0(Setup8{Prescaler: p}) }, 0, 0, ErrPrescaler},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			err := tt.cfg(tt.p)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if err != nil {
				return
			}
			cs := (atmega32.TCCR0.Read() | atmega32.TCCR1B.Read() | atmega32.TCCR2.Read()) & 0b111
			if cs != tt.cs {
				t.Fatalf("clock select = %d, want %d", cs, tt.cs)
			}
		})
	}
}

func TestACSCarrier(t *testing.T) {
	reset()
	if err := Configure2(ACSCarrier); err != nil {
		t.Fatal(err)
	}
	if got := atmega32.TCCR2.Read(); got != uint8(atmega32.WGM21)|1 {
		t.Errorf("TCCR2 = %#08b", got)
	}
	if atmega32.OCR2.Read() != 0x6E || atmega32.TIMSK.Read() != 0 {
		t.Errorf("OCR2 = %#x TIMSK = %#08b", atmega32.OCR2.Read(), atmega32.TIMSK.Read())
	}
}

func TestMotorPWM(t *testing.T) {
	reset()
	if err := Configure1(MotorPWM); err != nil {
		t.Fatal(err)
	}
	if got := atmega32.TCCR1A.ReadBits(); got != atmega32.WGM11|atmega32.COM1A1|atmega32.COM1B1 {
		t.Errorf("TCCR1A = %#08b", got)
	}
	if got := atmega32.TCCR1B.Read(); got != uint8(atmega32.WGM13)|1 {
		t.Errorf("TCCR1B = %#08b", got)
	}
	if atmega32.ICR1.Read() != 210 || atmega32.OCR1A.Read() != 0 || atmega32.OCR1B.Read() != 0 {
		t.Errorf("ICR1 %d OCR1A %d OCR1B %d", atmega32.ICR1.Read(), atmega32.OCR1A.Read(), atmega32.OCR1B.Read())
	}

	SetDuty(100, 210)
	if atmega32.OCR1A.Read() != 100 || atmega32.OCR1B.Read() != 210 {
		t.Errorf("OCR1A %d OCR1B %d", atmega32.OCR1A.Read(), atmega32.OCR1B.Read())
	}

	Stop1()
	if atmega32.TCCR1B.Read() != uint8(atmega32.WGM13) {
		t.Errorf("TCCR1B after stop = %#08b", atmega32.TCCR1B.Read())
	}
}

func TestCTC16(t *testing.T) {
	reset()
	err := Configure1(Setup16{Waveform: CTC16, Prescaler: Div64, Top: 12499, CompareAInterrupt: true})
	if err != nil {
		t.Fatal(err)
	}
	if atmega32.OCR1A.Read() != 12499 || atmega32.ICR1.Read() != 0 {
		t.Errorf("OCR1A %d ICR1 %d", atmega32.OCR1A.Read(), atmega32.ICR1.Read())
	}
	if !atmega32.TCCR1B.IsSet(atmega32.WGM12) || !atmega32.TIMSK.IsSet(atmega32.OCIE1A) {
		t.Errorf("TCCR1B %#08b TIMSK %#08b", atmega32.TCCR1B.Read(), atmega32.TIMSK.Read())
	}
}

func TestStop(t *testing.T) {
	reset()
	Configure0(Setup8{Waveform: CTC8, Prescaler: Div8})
	Configure2(Setup8{Waveform: CTC8, Prescaler: Div8})
	Stop0()
	Stop2()
	if atmega32.TCCR0.ReadBits() != atmega32.WGM01 || atmega32.TCCR2.ReadBits() != atmega32.WGM21 {
		t.Fatalf("TCCR0 %#08b TCCR2 %#08b", atmega32.TCCR0.Read(), atmega32.TCCR2.Read())
	}
}

func TestCompareFor(t *testing.T) {
	tests := []struct {
		hz   uint32
		p    Prescaler
		want uint32
		err  error
	}{
		{10_000, Div8, 99, nil},
		{10, Div64, 12499, nil},
		{72_000, Div1, 110, nil},
		{0, Div8, 0, ErrRange},
		{10_000_000, Div1, 0, ErrRange},
	}
	for _, tt := range tests {
		got, err := CompareFor(tt.hz, tt.p)
		if got != tt.want || !errors.Is(err, tt.err) {
			t.Errorf("CompareFor(%d, %d) = %d, %v; want %d, %v", tt.hz, tt.p, got, err, tt.want, tt.err)
		}
	}
}
