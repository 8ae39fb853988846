package atmega32

import "rp6/avr"

// Port pins.
var (
	A0 = avr.NewPin(DDRA, PORTA, PINA, 0)
	A1 = avr.NewPin(DDRA, PORTA, PINA, 1)
	A2 = avr.NewPin(DDRA, PORTA, PINA, 2)
	A3 = avr.NewPin(DDRA, PORTA, PINA, 3)
	A4 = avr.NewPin(DDRA, PORTA, PINA, 4)
	A5 = avr.NewPin(DDRA, PORTA, PINA, 5)
	A6 = avr.NewPin(DDRA, PORTA, PINA, 6)
	A7 = avr.NewPin(DDRA, PORTA, PINA, 7)

	B0 = avr.NewPin(DDRB, PORTB, PINB, 0)
	B1 = avr.NewPin(DDRB, PORTB, PINB, 1)
	B2 = avr.NewPin(DDRB, PORTB, PINB, 2)
	B3 = avr.NewPin(DDRB, PORTB, PINB, 3)
	B4 = avr.NewPin(DDRB, PORTB, PINB, 4)
	B5 = avr.NewPin(DDRB, PORTB, PINB, 5)
	B6 = avr.NewPin(DDRB, PORTB, PINB, 6)
	B7 = avr.NewPin(DDRB, PORTB, PINB, 7)

	C0 = avr.NewPin(DDRC, PORTC, PINC, 0)
	C1 = avr.NewPin(DDRC, PORTC, PINC, 1)
	C2 = avr.NewPin(DDRC, PORTC, PINC, 2)
	C3 = avr.NewPin(DDRC, PORTC, PINC, 3)
	C4 = avr.NewPin(DDRC, PORTC, PINC, 4)
	C5 = avr.NewPin(DDRC, PORTC, PINC, 5)
	C6 = avr.NewPin(DDRC, PORTC, PINC, 6)
	C7 = avr.NewPin(DDRC, PORTC, PINC, 7)

	D0 = avr.NewPin(DDRD, PORTD, PIND, 0)
	D1 = avr.NewPin(DDRD, PORTD, PIND, 1)
	D2 = avr.NewPin(DDRD, PORTD, PIND, 2)
	D3 = avr.NewPin(DDRD, PORTD, PIND, 3)
	D4 = avr.NewPin(DDRD, PORTD, PIND, 4)
	D5 = avr.NewPin(DDRD, PORTD, PIND, 5)
	D6 = avr.NewPin(DDRD, PORTD, PIND, 6)
	D7 = avr.NewPin(DDRD, PORTD, PIND, 7)
)
