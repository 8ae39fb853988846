//go:build tinygo && avr

package avr

import (
	"runtime/volatile"
	"unsafe"
)

func load8(addr uintptr) uint8 {
	return volatile.LoadUint8((*uint8)(unsafe.Pointer(addr)))
}

func store8(addr uintptr, v uint8) {
	volatile.StoreUint8((*uint8)(unsafe.Pointer(addr)), v)
}
