// Package atmega32 describes the ATmega32: its registers, their bits, the
// I/O pins and the interrupt vector table.
//
// Addresses are data-space addresses (I/O address + 0x20).
package atmega32

import "rp6/avr"

// Bit-set types, one per register.
type (
	PINABits  uint8
	DDRABits  uint8
	PORTABits uint8
	PINBBits  uint8
	DDRBBits  uint8
	PORTBBits uint8
	PINCBits  uint8
	DDRCBits  uint8
	PORTCBits uint8
	PINDBits  uint8
	DDRDBits  uint8
	PORTDBits uint8

	TWBRBits uint8
	TWSRBits uint8
	TWARBits uint8
	TWDRBits uint8
	TWCRBits uint8

	ADCBits    uint16
	ADCSRABits uint8
	ADMUXBits  uint8
	ACSRBits   uint8

	UBRRLBits uint8
	UCSRBBits uint8
	UCSRABits uint8
	UDRBits   uint8
	UCSRCBits uint8
	UBRRHBits uint8

	SPCRBits uint8
	SPSRBits uint8
	SPDRBits uint8

	EECRBits uint8
	EEDRBits uint8
	EEARBits uint16

	WDTCRBits  uint8
	ASSRBits   uint8
	OCR2Bits   uint8
	TCNT2Bits  uint8
	TCCR2Bits  uint8
	ICR1Bits   uint16
	OCR1BBits  uint16
	OCR1ABits  uint16
	TCNT1Bits  uint16
	TCCR1BBits uint8
	TCCR1ABits uint8
	SFIORBits  uint8
	OSCCALBits uint8
	TCNT0Bits  uint8
	TCCR0Bits  uint8
	MCUCSRBits uint8
	MCUCRBits  uint8
	SPMCRBits  uint8
	TIFRBits   uint8
	TIMSKBits  uint8
	GIFRBits   uint8
	GICRBits   uint8
	OCR0Bits   uint8
	SPBits     uint16
	SREGBits   uint8
)

const (
	TWBR   avr.Register8[TWBRBits]   = 0x20
	TWSR   avr.Register8[TWSRBits]   = 0x21
	TWAR   avr.Register8[TWARBits]   = 0x22
	TWDR   avr.Register8[TWDRBits]   = 0x23
	ADC    avr.Register16[ADCBits]   = 0x24
	ADCSRA avr.Register8[ADCSRABits] = 0x26
	ADMUX  avr.Register8[ADMUXBits]  = 0x27
	ACSR   avr.Register8[ACSRBits]   = 0x28
	UBRRL  avr.Register8[UBRRLBits]  = 0x29
	UCSRB  avr.Register8[UCSRBBits]  = 0x2A
	UCSRA  avr.Register8[UCSRABits]  = 0x2B
	UDR    avr.Register8[UDRBits]    = 0x2C
	SPCR   avr.Register8[SPCRBits]   = 0x2D
	SPSR   avr.Register8[SPSRBits]   = 0x2E
	SPDR   avr.Register8[SPDRBits]   = 0x2F

	PIND  avr.Register8[PINDBits]  = 0x30
	DDRD  avr.Register8[DDRDBits]  = 0x31
	PORTD avr.Register8[PORTDBits] = 0x32
	PINC  avr.Register8[PINCBits]  = 0x33
	DDRC  avr.Register8[DDRCBits]  = 0x34
	PORTC avr.Register8[PORTCBits] = 0x35
	PINB  avr.Register8[PINBBits]  = 0x36
	DDRB  avr.Register8[DDRBBits]  = 0x37
	PORTB avr.Register8[PORTBBits] = 0x38
	PINA  avr.Register8[PINABits]  = 0x39
	DDRA  avr.Register8[DDRABits]  = 0x3A
	PORTA avr.Register8[PORTABits] = 0x3B

	EECR avr.Register8[EECRBits]  = 0x3C
	EEDR avr.Register8[EEDRBits]  = 0x3D
	EEAR avr.Register16[EEARBits] = 0x3E

	// UCSRC and UBRRH share an address; writes with URSEL set go to UCSRC.
	UCSRC avr.Register8[UCSRCBits] = 0x40
	UBRRH avr.Register8[UBRRHBits] = 0x40

	WDTCR  avr.Register8[WDTCRBits]  = 0x41
	ASSR   avr.Register8[ASSRBits]   = 0x42
	OCR2   avr.Register8[OCR2Bits]   = 0x43
	TCNT2  avr.Register8[TCNT2Bits]  = 0x44
	TCCR2  avr.Register8[TCCR2Bits]  = 0x45
	ICR1   avr.Register16[ICR1Bits]  = 0x46
	OCR1B  avr.Register16[OCR1BBits] = 0x48
	OCR1A  avr.Register16[OCR1ABits] = 0x4A
	TCNT1  avr.Register16[TCNT1Bits] = 0x4C
	TCCR1B avr.Register8[TCCR1BBits] = 0x4E
	TCCR1A avr.Register8[TCCR1ABits] = 0x4F
	SFIOR  avr.Register8[SFIORBits]  = 0x50
	OSCCAL avr.Register8[OSCCALBits] = 0x51
	TCNT0  avr.Register8[TCNT0Bits]  = 0x52
	TCCR0  avr.Register8[TCCR0Bits]  = 0x53
	MCUCSR avr.Register8[MCUCSRBits] = 0x54
	MCUCR  avr.Register8[MCUCRBits]  = 0x55
	TWCR   avr.Register8[TWCRBits]   = 0x56
	SPMCR  avr.Register8[SPMCRBits]  = 0x57
	TIFR   avr.Register8[TIFRBits]   = 0x58
	TIMSK  avr.Register8[TIMSKBits]  = 0x59
	GIFR   avr.Register8[GIFRBits]   = 0x5A
	GICR   avr.Register8[GICRBits]   = 0x5B
	OCR0   avr.Register8[OCR0Bits]   = 0x5C
	SP     avr.Register16[SPBits]    = 0x5D
	SREG   avr.Register8[SREGBits]   = 0x5F
)
