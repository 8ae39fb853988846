package robot

import "rp6/avr/atmega32"

// RP6 base board pin functions.
var (
	ADC0              = atmega32.A0
	ADC1              = atmega32.A1
	LightSensorRight  = atmega32.A2
	LightSensorLeft   = atmega32.A3
	ExternalInterrupt = atmega32.A4
	MotorCurrentRight = atmega32.A5
	MotorCurrentLeft  = atmega32.A6
	BatteryVoltage    = atmega32.A7

	LED6         = atmega32.B0
	LED5         = atmega32.B1
	ACS          = atmega32.B2
	ACSPowerHigh = atmega32.B3
	PowerOnPin   = atmega32.B4
	ResetButton  = atmega32.B5
	ACSLeft      = atmega32.B6
	LED4         = atmega32.B7

	SCL      = atmega32.C0
	SDA      = atmega32.C1
	DirLeft  = atmega32.C2
	DirRight = atmega32.C3
	LED1     = atmega32.C4
	LED2     = atmega32.C5
	LED3     = atmega32.C6
	ACSRight = atmega32.C7

	RX           = atmega32.D0
	TX           = atmega32.D1
	EncoderLeft  = atmega32.D2
	EncoderRight = atmega32.D3
	MotorLeft    = atmega32.D4
	MotorRight   = atmega32.D5
	ACSPower     = atmega32.D6
	IRComm       = atmega32.D7
)
