package atmega32

import "rp6/avr/interrupt"

// Interrupt vectors.
const (
	IRQ_RESET        interrupt.Vector = 0
	IRQ_INT0         interrupt.Vector = 1
	IRQ_INT1         interrupt.Vector = 2
	IRQ_INT2         interrupt.Vector = 3
	IRQ_TIMER2_COMP  interrupt.Vector = 4
	IRQ_TIMER2_OVF   interrupt.Vector = 5
	IRQ_TIMER1_CAPT  interrupt.Vector = 6
	IRQ_TIMER1_COMPA interrupt.Vector = 7
	IRQ_TIMER1_COMPB interrupt.Vector = 8
	IRQ_TIMER1_OVF   interrupt.Vector = 9
	IRQ_TIMER0_COMP  interrupt.Vector = 10
	IRQ_TIMER0_OVF   interrupt.Vector = 11
	IRQ_SPI_STC      interrupt.Vector = 12
	IRQ_USART_RXC    interrupt.Vector = 13
	IRQ_USART_UDRE   interrupt.Vector = 14
	IRQ_USART_TXC    interrupt.Vector = 15
	IRQ_ADC          interrupt.Vector = 16
	IRQ_EE_RDY       interrupt.Vector = 17
	IRQ_ANA_COMP     interrupt.Vector = 18
	IRQ_TWI          interrupt.Vector = 19
	IRQ_SPM_RDY      interrupt.Vector = 20
)

// Vectors is the ATmega32 vector table.
var Vectors = interrupt.Table{
	{Name: "RESET", Vector: IRQ_RESET},
	{Name: "INT0", Vector: IRQ_INT0},
	{Name: "INT1", Vector: IRQ_INT1},
	{Name: "INT2", Vector: IRQ_INT2},
	{Name: "TIMER2_COMP", Vector: IRQ_TIMER2_COMP},
	{Name: "TIMER2_OVF", Vector: IRQ_TIMER2_OVF},
	{Name: "TIMER1_CAPT", Vector: IRQ_TIMER1_CAPT},
	{Name: "TIMER1_COMPA", Vector: IRQ_TIMER1_COMPA},
	{Name: "TIMER1_COMPB", Vector: IRQ_TIMER1_COMPB},
	{Name: "TIMER1_OVF", Vector: IRQ_TIMER1_OVF},
	{Name: "TIMER0_COMP", Vector: IRQ_TIMER0_COMP},
	{Name: "TIMER0_OVF", Vector: IRQ_TIMER0_OVF},
	{Name: "SPI_STC", Vector: IRQ_SPI_STC},
	{Name: "USART_RXC", Vector: IRQ_USART_RXC},
	{Name: "USART_UDRE", Vector: IRQ_USART_UDRE},
	{Name: "USART_TXC", Vector: IRQ_USART_TXC},
	{Name: "ADC", Vector: IRQ_ADC},
	{Name: "EE_RDY", Vector: IRQ_EE_RDY},
	{Name: "ANA_COMP", Vector: IRQ_ANA_COMP},
	{Name: "TWI", Vector: IRQ_TWI},
	{Name: "SPM_RDY", Vector: IRQ_SPM_RDY},
}

func init() {
	interrupt.SetTable(Vectors)
}
