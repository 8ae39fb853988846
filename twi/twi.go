// Package twi is a polled master for the ATmega32 two-wire interface. Bus
// satisfies tinygo.org/x/drivers.I2C, so TinyGo sensor drivers can run on the
// RP6's expansion bus.
package twi

import (
	"errors"

	"tinygo.org/x/drivers"

	"rp6/avr/atmega32"
	"rp6/config"
)

var (
	ErrAddressNack   = errors.New("twi: address not acknowledged")
	ErrDataNack      = errors.New("twi: data not acknowledged")
	ErrArbLost       = errors.New("twi: arbitration lost")
	ErrBusError      = errors.New("twi: unexpected bus status")
	ErrFrequency     = errors.New("twi: frequency not reachable")
	ErrInvalidAddr   = errors.New("twi: address is not 7-bit")
	ErrNotConfigured = errors.New("twi: bus not configured")
)

// Status codes of TWSR with the prescaler bits masked off.
const (
	StatusStart        = 0x08
	StatusRepStart     = 0x10
	StatusMTSlaAck     = 0x18
	StatusMTSlaNack    = 0x20
	StatusMTDataAck    = 0x28
	StatusMTDataNack   = 0x30
	StatusArbLost      = 0x38
	StatusMRSlaAck     = 0x40
	StatusMRSlaNack    = 0x48
	StatusMRDataAck    = 0x50
	StatusMRDataNack   = 0x58
	StatusNoInfo       = 0xF8
	StatusIllegalState = 0x00
)

// Config is the bus configuration.
type Config struct {
	Frequency uint32 // Hz, defaults to config.TWIFrequencyHz
}

// Bus is the TWI peripheral. The ATmega32 has one; use Bus0.
type Bus struct {
	configured bool
}

// Bus0 is the only TWI bus of the ATmega32.
var Bus0 = &Bus{}

var _ drivers.I2C = (*Bus)(nil)

// Configure sets the bit rate with a prescaler of 1 and enables the
// peripheral.
func (b *Bus) Configure(cfg Config) error {
	if cfg.Frequency == 0 {
		cfg.Frequency = config.TWIFrequencyHz
	}
	// SCL = F_CPU / (16 + 2*TWBR)
	div := uint32(config.CPUFrequencyHz) / cfg.Frequency
	if div < 16 || (div-16)/2 > 0xFF {
		return ErrFrequency
	}
	atmega32.TWSR.Unset(atmega32.TWPS)
	atmega32.TWBR.Write(uint8((div - 16) / 2))
	atmega32.TWCR.WriteBits(atmega32.TWEN)
	b.configured = true
	return nil
}

// Tx writes w to the device at addr, then reads len(r) bytes with a
// repeated start. Either slice may be empty; with both empty Tx probes the
// address.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if !b.configured {
		return ErrNotConfigured
	}
	if addr > 0x7F {
		return ErrInvalidAddr
	}
	sla := uint8(addr) << 1

	if len(w) > 0 || len(r) == 0 {
		if err := b.start(); err != nil {
			return b.fail(err)
		}
		if err := b.send(sla, StatusMTSlaAck, StatusMTSlaNack, ErrAddressNack); err != nil {
			return b.fail(err)
		}
		for _, c := range w {
			if err := b.send(c, StatusMTDataAck, StatusMTDataNack, ErrDataNack); err != nil {
				return b.fail(err)
			}
		}
	}

	if len(r) > 0 {
		if err := b.start(); err != nil {
			return b.fail(err)
		}
		if err := b.send(sla|1, StatusMRSlaAck, StatusMRSlaNack, ErrAddressNack); err != nil {
			return b.fail(err)
		}
		for i := range r {
			last := i == len(r)-1
			c, err := b.receive(!last)
			if err != nil {
				return b.fail(err)
			}
			r[i] = c
		}
	}

	b.stop()
	return nil
}

// ReadRegister reads len(buf) bytes starting at register reg.
func (b *Bus) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	return b.Tx(uint16(addr), []byte{reg}, buf)
}

// WriteRegister writes buf starting at register reg.
func (b *Bus) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	w := make([]byte, 0, len(buf)+1)
	w = append(w, reg)
	w = append(w, buf...)
	return b.Tx(uint16(addr), w, nil)
}

func status() uint8 {
	return uint8(atmega32.TWSR.ReadBits() & atmega32.TWS)
}

// command starts a bus action and waits for the hardware to finish it.
func command(bits atmega32.TWCRBits) {
	atmega32.TWCR.WriteBits(atmega32.TWINT | atmega32.TWEN | bits)
	atmega32.TWCR.WaitUntilSet(atmega32.TWINT)
}

func (b *Bus) start() error {
	command(atmega32.TWSTA)
	switch status() {
	case StatusStart, StatusRepStart:
		return nil
	case StatusArbLost:
		return ErrArbLost
	default:
		return ErrBusError
	}
}

func (b *Bus) send(c uint8, ack, nack uint8, nackErr error) error {
	atmega32.TWDR.Write(c)
	command(0)
	switch status() {
	case ack:
		return nil
	case nack:
		return nackErr
	case StatusArbLost:
		return ErrArbLost
	default:
		return ErrBusError
	}
}

func (b *Bus) receive(ack bool) (uint8, error) {
	want := uint8(StatusMRDataNack)
	if ack {
		command(atmega32.TWEA)
		want = StatusMRDataAck
	} else {
		command(0)
	}
	if status() != want {
		return 0, ErrBusError
	}
	return atmega32.TWDR.Read(), nil
}

func (b *Bus) stop() {
	atmega32.TWCR.WriteBits(atmega32.TWINT | atmega32.TWEN | atmega32.TWSTO)
}

func (b *Bus) fail(err error) error {
	if err != ErrArbLost {
		b.stop()
	}
	return err
}
