// Package robot drives the RP6 base board: port set-up, power, the reset
// button, the six status LEDs, the anti-collision system and the motors.
package robot

import (
	"rp6/avr"
	"rp6/avr/atmega32"
	"rp6/avr/interrupt"
	"rp6/uart"
)

// Initial port levels and directions. Everything starts low except the
// serial RX pull-up; outputs are the LEDs, power and motor lines.
const (
	portA = 0b00000000
	portB = 0b00000000
	portC = 0b00000000
	portD = 0b00000001

	ddrA = 0b00000000
	ddrB = 0b01011000
	ddrC = 0b10001100
	ddrD = 0b11110010
)

// Init brings the base board into a safe state and enables interrupts. Port
// directions come first; the remaining set-up runs with interrupts masked.
func Init() {
	InitPorts()

	interrupt.Do(func(interrupt.CriticalSection) {
		// Without the reset button the robot can only be stopped by
		// switching it off.
		EnableResetButton()

		DisableIRComm()
		SetACSPower(ACSOff)

		uart.Init()
	})
	interrupt.Enable()
}

// InitPorts writes the documented start-up levels and directions of all four
// ports.
func InitPorts() {
	atmega32.PORTA.Write(portA)
	atmega32.PORTB.Write(portB)
	atmega32.PORTC.Write(portC)
	atmega32.PORTD.Write(portD)

	atmega32.DDRA.Write(ddrA)
	atmega32.DDRB.Write(ddrB)
	atmega32.DDRC.Write(ddrC)
	atmega32.DDRD.Write(ddrD)
}

func PowerOn()  { PowerOnPin.SetHigh() }
func PowerOff() { PowerOnPin.SetLow() }

// EnableResetButton releases the reset line so the button works.
func EnableResetButton() {
	ResetButton.SetLow()
	ResetButton.SetInput()
}

// DisableResetButton drives the reset line low.
func DisableResetButton() {
	ResetButton.SetLow()
	ResetButton.SetOutput()
}

func DisableIRComm() { IRComm.SetLow() }

// SetLEDs shows the low six bits of v: bit 0 on LED1 through bit 5 on LED6.
func SetLEDs(v uint8) {
	avr.SetPins(v, LED1, LED2, LED3)
	avr.SetPins(v>>3, LED4, LED5, LED6)
}

// LEDs reads back the six status LEDs in the layout of SetLEDs.
func LEDs() uint8 {
	var v uint8
	for i, p := range []avr.Pin{LED1, LED2, LED3, LED4, LED5, LED6} {
		if p.IsHigh() {
			v |= 1 << i
		}
	}
	return v
}
