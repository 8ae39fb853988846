//go:build !(tinygo && avr)

package atmega32

import "rp6/avr"

func init() {
	avr.SimulatePort(DDRA.Address(), PORTA.Address(), PINA.Address())
	avr.SimulatePort(DDRB.Address(), PORTB.Address(), PINB.Address())
	avr.SimulatePort(DDRC.Address(), PORTC.Address(), PINC.Address())
	avr.SimulatePort(DDRD.Address(), PORTD.Address(), PIND.Address())
}
