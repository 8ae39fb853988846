// Package config holds the build-time configuration of the RP6 firmware.
package config

// CPUFrequencyHz is the RP6 base system clock.
const CPUFrequencyHz = 8_000_000

// Serial link
const (
	BaudLow  = 38_400  // default, what the RP6 loader uses
	BaudHigh = 500_000 // fast mode
)

// RxBufferSize is the capacity of the interrupt-fed receive buffer.
const RxBufferSize = 32

// TWIFrequencyHz is the default two-wire bus clock.
const TWIFrequencyHz = 100_000
