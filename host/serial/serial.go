// Package serial opens the host side of the RP6 serial link.
package serial

import (
	"errors"
	"io"

	"rp6/config"
)

// ErrNoDevice is returned by Open when the configuration names no device.
var ErrNoDevice = errors.New("serial: no device given")

// Port is an open serial connection. The monitor only needs the byte
// stream, so tests substitute an in-memory pipe.
type Port interface {
	io.ReadWriteCloser

	// Flush discards data received but not yet read.
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate, config.BaudLow unless the robot was switched to the fast mode
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the configuration the RP6 boots with: 38400 baud,
// 8N1.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        config.BaudLow,
		ReadTimeout: 100,
	}
}

// HighSpeed switches c to the fast baud rate and returns it.
func (c *Config) HighSpeed() *Config {
	c.Baud = config.BaudHigh
	return c
}
