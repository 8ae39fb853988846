//go:build tinygo && avr

package atmega32

import (
	rtint "runtime/interrupt"

	"rp6/avr/interrupt"
)

// Each trampoline is exported by the compiler as __vector_N and forwards to
// the handler table. Vector numbers must be constants here.
func init() {
	rtint.New(int(IRQ_INT0), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_INT0) })
	rtint.New(int(IRQ_INT1), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_INT1) })
	rtint.New(int(IRQ_INT2), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_INT2) })
	rtint.New(int(IRQ_TIMER2_COMP), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_TIMER2_COMP) })
	rtint.New(int(IRQ_TIMER2_OVF), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_TIMER2_OVF) })
	rtint.New(int(IRQ_TIMER1_CAPT), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_TIMER1_CAPT) })
	rtint.New(int(IRQ_TIMER1_COMPA), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_TIMER1_COMPA) })
	rtint.New(int(IRQ_TIMER1_COMPB), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_TIMER1_COMPB) })
	rtint.New(int(IRQ_TIMER1_OVF), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_TIMER1_OVF) })
	rtint.New(int(IRQ_TIMER0_COMP), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_TIMER0_COMP) })
	rtint.New(int(IRQ_TIMER0_OVF), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_TIMER0_OVF) })
	rtint.New(int(IRQ_SPI_STC), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_SPI_STC) })
	rtint.New(int(IRQ_USART_RXC), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_USART_RXC) })
	rtint.New(int(IRQ_USART_UDRE), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_USART_UDRE) })
	rtint.New(int(IRQ_USART_TXC), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_USART_TXC) })
	rtint.New(int(IRQ_ADC), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_ADC) })
	rtint.New(int(IRQ_EE_RDY), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_EE_RDY) })
	rtint.New(int(IRQ_ANA_COMP), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_ANA_COMP) })
	rtint.New(int(IRQ_TWI), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_TWI) })
	rtint.New(int(IRQ_SPM_RDY), func(rtint.Interrupt) { interrupt.Dispatch(IRQ_SPM_RDY) })
}
