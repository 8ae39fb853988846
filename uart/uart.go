// Package uart drives the RP6's serial link: raw byte output and
// interrupt-driven input through a ring buffer.
package uart

import (
	"errors"

	"rp6/avr/atmega32"
	"rp6/avr/interrupt"
	"rp6/config"
)

// Baud rate register values at the RP6's clock.
const (
	UBRRBaudLow  = config.CPUFrequencyHz/(16*config.BaudLow) - 1
	UBRRBaudHigh = config.CPUFrequencyHz/(16*config.BaudHigh) - 1
)

// ErrEmpty is returned by ReadByte and Read when nothing was received.
var ErrEmpty = errors.New("uart: receive buffer empty")

var (
	rxPin = atmega32.D0
	txPin = atmega32.D1
)

var (
	rx       = interrupt.NewDynamicMutex(ring{})
	receiver *interrupt.Handler[struct{}]
)

// Init configures the pins and the USART for 8N1 at the low baud rate with
// the receive interrupt enabled. The first call registers the USART_RXC
// handler.
func Init() {
	rxPin.SetInput()
	txPin.SetLow()
	txPin.SetOutput()

	SetBaudLow()
	atmega32.UCSRA.Write(0x00)
	atmega32.UCSRC.WriteBits(atmega32.URSEL | atmega32.UCSZ)
	atmega32.UCSRB.WriteBits(atmega32.TXEN | atmega32.RXEN | atmega32.RXCIE)

	if receiver == nil {
		receiver = interrupt.Interrupt(atmega32.IRQ_USART_RXC, struct{}{}, onReceive)
	}
}

// SetBaudLow switches to config.BaudLow.
func SetBaudLow() { setUBRR(UBRRBaudLow) }

// SetBaudHigh switches to config.BaudHigh.
func SetBaudHigh() { setUBRR(UBRRBaudHigh) }

func setUBRR(v uint16) {
	// URSEL is clear in the high byte, so this write reaches UBRRH.
	atmega32.UBRRH.Write(uint8(v>>8) &^ uint8(atmega32.URSEL))
	atmega32.UBRRL.Write(uint8(v))
}

func EnableRxInterrupt()  { atmega32.UCSRB.Set(atmega32.RXCIE) }
func DisableRxInterrupt() { atmega32.UCSRB.Unset(atmega32.RXCIE) }
func EnableTxInterrupt()  { atmega32.UCSRB.Set(atmega32.TXCIE) }
func DisableTxInterrupt() { atmega32.UCSRB.Unset(atmega32.TXCIE) }

// WriteByte sends b once the data register is empty. It never fails.
func WriteByte(b byte) error {
	atmega32.UCSRA.WaitUntilSet(atmega32.UDRE)
	atmega32.UDR.Write(b)
	return nil
}

// Write sends p byte by byte.
func Write(p []byte) (int, error) {
	for _, b := range p {
		WriteByte(b)
	}
	return len(p), nil
}

// WriteString sends s byte by byte.
func WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		WriteByte(s[i])
	}
	return len(s), nil
}

// NewLine sends a line feed.
func NewLine() { WriteByte('\n') }

// Println sends s followed by a line feed. It has the signature of
// trace.Writer.
func Println(s string) {
	WriteString(s)
	NewLine()
}

// Port adapts the package functions to the io reader and writer
// interfaces.
type Port struct{}

func (Port) Write(p []byte) (int, error) { return Write(p) }

func (Port) WriteByte(b byte) error { return WriteByte(b) }

func (Port) WriteString(s string) (int, error) { return WriteString(s) }

func (Port) ReadByte() (byte, error) { return ReadByte() }

func (Port) Read(p []byte) (int, error) { return Read(p) }

func onReceive(*struct{}) {
	b := atmega32.UDR.Read()

	cs := interrupt.Enter()
	buf := rx.Lock(cs).BorrowMut()
	buf.Value().push(b)
	buf.Release()
	cs.Exit()
}

// ReadByte takes the oldest received byte.
func ReadByte() (byte, error) {
	cs := interrupt.Enter()
	buf := rx.Lock(cs).BorrowMut()
	b, ok := buf.Value().pop()
	buf.Release()
	cs.Exit()

	if !ok {
		return 0, ErrEmpty
	}
	return b, nil
}

// Read takes up to len(p) received bytes without waiting.
func Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	cs := interrupt.Enter()
	buf := rx.Lock(cs).BorrowMut()
	n := 0
	for n < len(p) {
		b, ok := buf.Value().pop()
		if !ok {
			break
		}
		p[n] = b
		n++
	}
	buf.Release()
	cs.Exit()

	if n == 0 {
		return 0, ErrEmpty
	}
	return n, nil
}

// Buffered returns the number of received bytes waiting to be read.
func Buffered() int {
	return interrupt.Without(func(cs interrupt.CriticalSection) int {
		n := 0
		rx.Lock(cs).Inspect(func(r *ring) { n = int(r.count) })
		return n
	})
}

// Dropped returns how many received bytes were lost to a full buffer.
func Dropped() uint16 {
	return interrupt.Without(func(cs interrupt.CriticalSection) uint16 {
		var n uint16
		rx.Lock(cs).Inspect(func(r *ring) { n = r.dropped })
		return n
	})
}

// Flush discards everything received so far.
func Flush() {
	interrupt.Do(func(cs interrupt.CriticalSection) {
		rx.Lock(cs).Modify(func(r *ring) { *r = ring{} })
	})
}
