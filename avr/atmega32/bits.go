package atmega32

// USART
const (
	RXC  UCSRABits = 1 << 7
	TXC  UCSRABits = 1 << 6
	UDRE UCSRABits = 1 << 5
	FE   UCSRABits = 1 << 4
	DOR  UCSRABits = 1 << 3
	PE   UCSRABits = 1 << 2
	U2X  UCSRABits = 1 << 1
	MPCM UCSRABits = 1 << 0

	RXCIE UCSRBBits = 1 << 7
	TXCIE UCSRBBits = 1 << 6
	UDRIE UCSRBBits = 1 << 5
	RXEN  UCSRBBits = 1 << 4
	TXEN  UCSRBBits = 1 << 3
	UCSZ2 UCSRBBits = 1 << 2
	RXB8  UCSRBBits = 1 << 1
	TXB8  UCSRBBits = 1 << 0

	URSEL UCSRCBits = 1 << 7
	UMSEL UCSRCBits = 1 << 6
	UPM   UCSRCBits = 0b11 << 4
	USBS  UCSRCBits = 1 << 3
	UCSZ  UCSRCBits = 0b11 << 1
	UCPOL UCSRCBits = 1 << 0
)

// Two-wire interface
const (
	TWINT TWCRBits = 1 << 7
	TWEA  TWCRBits = 1 << 6
	TWSTA TWCRBits = 1 << 5
	TWSTO TWCRBits = 1 << 4
	TWWC  TWCRBits = 1 << 3
	TWEN  TWCRBits = 1 << 2
	TWIE  TWCRBits = 1 << 0

	TWS  TWSRBits = 0b11111 << 3
	TWPS TWSRBits = 0b11

	TWGCE TWARBits = 1 << 0
)

// Timers
const (
	OCIE2  TIMSKBits = 1 << 7
	TOIE2  TIMSKBits = 1 << 6
	TICIE1 TIMSKBits = 1 << 5
	OCIE1A TIMSKBits = 1 << 4
	OCIE1B TIMSKBits = 1 << 3
	TOIE1  TIMSKBits = 1 << 2
	OCIE0  TIMSKBits = 1 << 1
	TOIE0  TIMSKBits = 1 << 0

	OCF2  TIFRBits = 1 << 7
	TOV2  TIFRBits = 1 << 6
	ICF1  TIFRBits = 1 << 5
	OCF1A TIFRBits = 1 << 4
	OCF1B TIFRBits = 1 << 3
	TOV1  TIFRBits = 1 << 2
	OCF0  TIFRBits = 1 << 1
	TOV0  TIFRBits = 1 << 0

	FOC0  TCCR0Bits = 1 << 7
	WGM00 TCCR0Bits = 1 << 6
	COM0  TCCR0Bits = 0b11 << 4
	WGM01 TCCR0Bits = 1 << 3
	CS0   TCCR0Bits = 0b111

	FOC2  TCCR2Bits = 1 << 7
	WGM20 TCCR2Bits = 1 << 6
	COM2  TCCR2Bits = 0b11 << 4
	WGM21 TCCR2Bits = 1 << 3
	CS2   TCCR2Bits = 0b111

	COM1A  TCCR1ABits = 0b11 << 6
	COM1A1 TCCR1ABits = 1 << 7
	COM1B  TCCR1ABits = 0b11 << 4
	COM1B1 TCCR1ABits = 1 << 5
	FOC1A  TCCR1ABits = 1 << 3
	FOC1B  TCCR1ABits = 1 << 2
	WGM11  TCCR1ABits = 1 << 1
	WGM10  TCCR1ABits = 1 << 0

	ICNC1 TCCR1BBits = 1 << 7
	ICES1 TCCR1BBits = 1 << 6
	WGM13 TCCR1BBits = 1 << 4
	WGM12 TCCR1BBits = 1 << 3
	CS1   TCCR1BBits = 0b111

	AS2    ASSRBits = 1 << 3
	TCN2UB ASSRBits = 1 << 2
	OCR2UB ASSRBits = 1 << 1
	TCR2UB ASSRBits = 1 << 0
)

// External interrupts and MCU control
const (
	INT1  GICRBits = 1 << 7
	INT0  GICRBits = 1 << 6
	INT2  GICRBits = 1 << 5
	IVSEL GICRBits = 1 << 1
	IVCE  GICRBits = 1 << 0

	INTF1 GIFRBits = 1 << 7
	INTF0 GIFRBits = 1 << 6
	INTF2 GIFRBits = 1 << 5

	SE   MCUCRBits = 1 << 7
	SM   MCUCRBits = 0b111 << 4
	ISC1 MCUCRBits = 0b11 << 2
	ISC0 MCUCRBits = 0b11

	JTD   MCUCSRBits = 1 << 7
	ISC2  MCUCSRBits = 1 << 6
	JTRF  MCUCSRBits = 1 << 4
	WDRF  MCUCSRBits = 1 << 3
	BORF  MCUCSRBits = 1 << 2
	EXTRF MCUCSRBits = 1 << 1
	PORF  MCUCSRBits = 1 << 0

	SREG_I SREGBits = 1 << 7
	SREG_T SREGBits = 1 << 6
	SREG_H SREGBits = 1 << 5
	SREG_S SREGBits = 1 << 4
	SREG_V SREGBits = 1 << 3
	SREG_N SREGBits = 1 << 2
	SREG_Z SREGBits = 1 << 1
	SREG_C SREGBits = 1 << 0
)

// Analog
const (
	ADEN  ADCSRABits = 1 << 7
	ADSC  ADCSRABits = 1 << 6
	ADATE ADCSRABits = 1 << 5
	ADIF  ADCSRABits = 1 << 4
	ADIE  ADCSRABits = 1 << 3
	ADPS  ADCSRABits = 0b111

	REFS  ADMUXBits = 0b11 << 6
	ADLAR ADMUXBits = 1 << 5
	MUX   ADMUXBits = 0b11111

	ACD  ACSRBits = 1 << 7
	ACBG ACSRBits = 1 << 6
	ACO  ACSRBits = 1 << 5
	ACI  ACSRBits = 1 << 4
	ACIE ACSRBits = 1 << 3
	ACIC ACSRBits = 1 << 2
	ACIS ACSRBits = 0b11

	ADTS  SFIORBits = 0b111 << 5
	ACME  SFIORBits = 1 << 3
	PUD   SFIORBits = 1 << 2
	PSR2  SFIORBits = 1 << 1
	PSR10 SFIORBits = 1 << 0
)

// SPI, EEPROM, watchdog, self-programming
const (
	SPIE SPCRBits = 1 << 7
	SPE  SPCRBits = 1 << 6
	DORD SPCRBits = 1 << 5
	MSTR SPCRBits = 1 << 4
	CPOL SPCRBits = 1 << 3
	CPHA SPCRBits = 1 << 2
	SPR  SPCRBits = 0b11

	SPIF  SPSRBits = 1 << 7
	WCOL  SPSRBits = 1 << 6
	SPI2X SPSRBits = 1 << 0

	EERIE EECRBits = 1 << 3
	EEMWE EECRBits = 1 << 2
	EEWE  EECRBits = 1 << 1
	EERE  EECRBits = 1 << 0

	WDTOE WDTCRBits = 1 << 4
	WDE   WDTCRBits = 1 << 3
	WDP   WDTCRBits = 0b111

	SPMIE  SPMCRBits = 1 << 7
	RWWSB  SPMCRBits = 1 << 6
	RWWSRE SPMCRBits = 1 << 4
	BLBSET SPMCRBits = 1 << 3
	PGWRT  SPMCRBits = 1 << 2
	PGERS  SPMCRBits = 1 << 1
	SPMEN  SPMCRBits = 1 << 0
)
