//go:build tinygo && avr

package interrupt

import (
	"device/avr"
	rtint "runtime/interrupt"
	"runtime/volatile"
	"unsafe"
)

type state = rtint.State

// sreg is the status register in data space; bit 7 is the global
// interrupt enable.
const sreg = uintptr(0x5F)

func disable() state { return rtint.Disable() }

func restore(s state) { rtint.Restore(s) }

func enable() { avr.Asm("sei") }

func enabled() bool {
	return volatile.LoadUint8((*uint8)(unsafe.Pointer(sreg)))&0x80 != 0
}
