// Package timer configures the three ATmega32 timer/counters: the 8-bit
// Timer0 and Timer2 and the 16-bit Timer1.
package timer

import (
	"errors"

	"rp6/avr/atmega32"
	"rp6/avr/interrupt"
	"rp6/config"
)

var (
	ErrPrescaler = errors.New("timer: prescaler not available on this timer")
	ErrRange     = errors.New("timer: frequency out of range")
)

// Prescaler divides the system clock before it reaches a counter.
type Prescaler uint16

const (
	Div1    Prescaler = 1
	Div8    Prescaler = 8
	Div32   Prescaler = 32 // Timer2 only
	Div64   Prescaler = 64
	Div128  Prescaler = 128 // Timer2 only
	Div256  Prescaler = 256
	Div1024 Prescaler = 1024
)

// Clock select values, indexed by CS bits. Zero stops the counter.
var (
	clocks01 = [...]Prescaler{1: Div1, 2: Div8, 3: Div64, 4: Div256, 5: Div1024}
	clocks2  = [...]Prescaler{1: Div1, 2: Div8, 3: Div32, 4: Div64, 5: Div128, 6: Div256, 7: Div1024}
)

func clockSelect(table []Prescaler, p Prescaler) (uint8, error) {
	for cs, v := range table {
		if v != 0 && v == p {
			return uint8(cs), nil
		}
	}
	return 0, ErrPrescaler
}

// Waveform8 is the waveform generation mode of an 8-bit timer. CTC8 clears
// the counter on compare match.
type Waveform8 uint8

const (
	Normal8 Waveform8 = iota
	PhaseCorrectPWM8
	CTC8
	FastPWM8
)

// Setup8 configures Timer0 or Timer2.
type Setup8 struct {
	Waveform          Waveform8
	Prescaler         Prescaler
	Compare           uint8
	CompareInterrupt  bool
	OverflowInterrupt bool
}

// Tick100us is the RP6 system tick: CTC at 8 MHz / 8 / 100 = 10 kHz.
var Tick100us = Setup8{Waveform: CTC8, Prescaler: Div8, Compare: 99, CompareInterrupt: true}

// ACSCarrier is the 72 kHz infrared carrier timing of the anti-collision
// system.
var ACSCarrier = Setup8{Waveform: CTC8, Prescaler: Div1, Compare: 0x6E}

// Configure0 stops Timer0, applies s and restarts it from zero.
func Configure0(s Setup8) error {
	cs, err := clockSelect(clocks01[:], s.Prescaler)
	if err != nil {
		return err
	}
	var bits atmega32.TCCR0Bits
	switch s.Waveform {
	case PhaseCorrectPWM8:
		bits = atmega32.WGM00
	case CTC8:
		bits = atmega32.WGM01
	case FastPWM8:
		bits = atmega32.WGM00 | atmega32.WGM01
	}

	atmega32.TCCR0.Write(0)
	atmega32.TCNT0.Write(0)
	atmega32.OCR0.Write(s.Compare)
	interrupt.Do(func(interrupt.CriticalSection) {
		setMask(atmega32.OCIE0, s.CompareInterrupt)
		setMask(atmega32.TOIE0, s.OverflowInterrupt)
	})
	atmega32.TCCR0.WriteBits(bits | atmega32.TCCR0Bits(cs)&atmega32.CS0)
	return nil
}

// Configure2 is Configure0 for Timer2, which has its own prescaler set.
func Configure2(s Setup8) error {
	cs, err := clockSelect(clocks2[:], s.Prescaler)
	if err != nil {
		return err
	}
	var bits atmega32.TCCR2Bits
	switch s.Waveform {
	case PhaseCorrectPWM8:
		bits = atmega32.WGM20
	case CTC8:
		bits = atmega32.WGM21
	case FastPWM8:
		bits = atmega32.WGM20 | atmega32.WGM21
	}

	atmega32.TCCR2.Write(0)
	atmega32.TCNT2.Write(0)
	atmega32.OCR2.Write(s.Compare)
	interrupt.Do(func(interrupt.CriticalSection) {
		setMask(atmega32.OCIE2, s.CompareInterrupt)
		setMask(atmega32.TOIE2, s.OverflowInterrupt)
	})
	atmega32.TCCR2.WriteBits(bits | atmega32.TCCR2Bits(cs)&atmega32.CS2)
	return nil
}

// Waveform16 is the waveform generation mode of Timer1. CTC16 counts up to
// OCR1A, the PWM modes up to ICR1.
type Waveform16 uint8

const (
	Normal16 Waveform16 = iota
	CTC16
	PhaseCorrectPWM16
	FastPWM16
)

// Setup16 configures Timer1. Top goes to OCR1A in CTC16 and to ICR1 in the
// PWM modes. OutputA and OutputB connect OC1A and OC1B in non-inverting mode.
type Setup16 struct {
	Waveform           Waveform16
	Prescaler          Prescaler
	Top                uint16
	CompareA, CompareB uint16
	OutputA, OutputB   bool
	CompareAInterrupt  bool
	OverflowInterrupt  bool
}

// MotorPWM is the RP6 motor drive: phase correct PWM at about 19 kHz with a
// duty range of 0 to 210.
var MotorPWM = Setup16{Waveform: PhaseCorrectPWM16, Prescaler: Div1, Top: 210, OutputA: true, OutputB: true}

// Configure1 stops Timer1, applies s and restarts it from zero.
func Configure1(s Setup16) error {
	cs, err := clockSelect(clocks01[:], s.Prescaler)
	if err != nil {
		return err
	}
	var a atmega32.TCCR1ABits
	var b atmega32.TCCR1BBits
	switch s.Waveform {
	case CTC16:
		b = atmega32.WGM12
	case PhaseCorrectPWM16:
		a, b = atmega32.WGM11, atmega32.WGM13
	case FastPWM16:
		a, b = atmega32.WGM11, atmega32.WGM13|atmega32.WGM12
	}
	if s.OutputA {
		a |= atmega32.COM1A1
	}
	if s.OutputB {
		a |= atmega32.COM1B1
	}

	atmega32.TCCR1B.Write(0)
	atmega32.TCNT1.Write(0)
	switch s.Waveform {
	case CTC16:
		atmega32.OCR1A.Write(s.Top)
	case PhaseCorrectPWM16, FastPWM16:
		atmega32.ICR1.Write(s.Top)
		atmega32.OCR1A.Write(s.CompareA)
	default:
		atmega32.OCR1A.Write(s.CompareA)
	}
	atmega32.OCR1B.Write(s.CompareB)
	interrupt.Do(func(interrupt.CriticalSection) {
		setMask(atmega32.OCIE1A, s.CompareAInterrupt)
		setMask(atmega32.TOIE1, s.OverflowInterrupt)
	})
	atmega32.TCCR1A.WriteBits(a)
	atmega32.TCCR1B.WriteBits(b | atmega32.TCCR1BBits(cs)&atmega32.CS1)
	return nil
}

// SetDuty sets the PWM compare values of Timer1. Values above the configured
// top saturate.
func SetDuty(a, b uint16) {
	atmega32.OCR1A.Write(a)
	atmega32.OCR1B.Write(b)
}

func Stop0() { atmega32.TCCR0.Unset(atmega32.CS0) }
func Stop1() { atmega32.TCCR1B.Unset(atmega32.CS1) }
func Stop2() { atmega32.TCCR2.Unset(atmega32.CS2) }

// CompareFor returns the compare value that makes a CTC timer clocked
// through p fire at hz.
func CompareFor(hz uint32, p Prescaler) (uint32, error) {
	if hz == 0 || p == 0 {
		return 0, ErrRange
	}
	ticks := uint32(config.CPUFrequencyHz) / (uint32(p) * hz)
	if ticks == 0 {
		return 0, ErrRange
	}
	return ticks - 1, nil
}

func setMask(bits atmega32.TIMSKBits, on bool) {
	if on {
		atmega32.TIMSK.Set(bits)
	} else {
		atmega32.TIMSK.Unset(bits)
	}
}
