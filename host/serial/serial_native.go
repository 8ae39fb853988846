//go:build !wasm

package serial

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// NativePort wraps the tarm/serial implementation
type NativePort struct {
	port *serial.Port
	cfg  *Config
}

// Open opens a native serial port
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Device == "" {
		return nil, ErrNoDevice
	}

	serialConfig := &serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		Size:        8,
		Parity:      serial.ParityNone,
		StopBits:    serial.Stop1,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	}

	port, err := serial.OpenPort(serialConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}

	return &NativePort{
		port: port,
		cfg:  cfg,
	}, nil
}

// Read reads data from the serial port. A read timeout returns 0, nil.
func (p *NativePort) Read(b []byte) (int, error) {
	n, err := p.port.Read(b)
	// tarm reports an expired timeout as EOF on posix systems.
	if n == 0 && errors.Is(err, io.EOF) && p.cfg.ReadTimeout > 0 {
		return 0, nil
	}
	return n, err
}

// Write writes data to the serial port
func (p *NativePort) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Close closes the serial port
func (p *NativePort) Close() error {
	if p.port != nil {
		return p.port.Close()
	}
	return nil
}

// Flush drops pending input, such as the boot banner of a robot that was
// reset while the port was closed.
func (p *NativePort) Flush() error {
	return p.port.Flush()
}

// Config returns the configuration the port was opened with.
func (p *NativePort) Config() Config {
	return *p.cfg
}
