//go:build !(tinygo && avr)

package interrupt

import (
	"math/bits"

	"rp6/trace"
)

// Host builds simulate the interrupt controller. Interrupts start enabled,
// as they are when a TinyGo program reaches main. Raise marks a line
// pending; pending lines are delivered lowest vector first whenever delivery
// is enabled. A line is masked while its own handler runs, so raising it
// again leaves it pending until the handler returns, but other lines may
// preempt the handler unless a critical section is open.

type state bool

var (
	simEnabled = true
	pending    uint32
	inService  uint32
)

func disable() state {
	prev := simEnabled
	simEnabled = false
	return state(prev)
}

func restore(s state) {
	simEnabled = bool(s)
	deliver()
}

func enable() {
	simEnabled = true
	deliver()
}

func enabled() bool { return simEnabled }

// Raise requests interrupt v as the hardware would.
func Raise(v Vector) {
	if v >= MaxVectors {
		panic("interrupt: Raise of an out-of-range vector")
	}
	pending |= 1 << v
	if !simEnabled || inService&(1<<v) != 0 {
		trace.Record(trace.EvtPending, uint8(v), 0)
	}
	deliver()
}

// Pending reports whether v is raised but not yet delivered.
func Pending(v Vector) bool {
	return v < MaxVectors && pending&(1<<v) != 0
}

func deliver() {
	for simEnabled {
		ready := pending &^ inService
		if ready == 0 {
			return
		}
		v := Vector(bits.TrailingZeros32(ready))
		pending &^= 1 << v
		inService |= 1 << v
		Dispatch(v)
		inService &^= 1 << v
	}
}

// ResetSimulator closes every critical section, drops pending lines and
// re-enables delivery. Registered handlers are kept.
func ResetSimulator() {
	depth = 0
	open = [MaxNesting]uint32{}
	saved = false
	simEnabled = true
	pending = 0
	inService = 0
}
