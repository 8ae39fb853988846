// Package interrupt provides interrupt-safe access to state shared between
// the main flow and interrupt handlers on a single-core AVR.
//
// A CriticalSection token proves that interrupt delivery is masked. Shared
// state lives in a Mutex or DynamicMutex and can only be reached by
// presenting a live token. Sections nest: only the exit of the outermost
// section restores the interrupt state that was in effect before it.
//
//	cs := interrupt.Enter()
//	ticks.Lock(cs).Update(func(n uint16) uint16 { return n + 1 })
//	cs.Exit()
package interrupt

import "rp6/trace"

// MaxNesting is the deepest supported nesting of critical sections.
const MaxNesting = 8

// CriticalSection is the token handed out by Enter. It is only valid until
// the matching Exit; keeping it beyond that and presenting it again panics.
type CriticalSection struct {
	level uint8
	seq   uint32
}

var (
	depth   uint8
	saved   state
	open    [MaxNesting]uint32
	lastSeq uint32
)

// Enter masks interrupt delivery and opens a critical section. The state in
// effect before the outermost Enter is saved and restored by its Exit.
func Enter() CriticalSection {
	s := disable()
	// The counter is only touched with delivery masked.
	if depth == MaxNesting {
		restore(s)
		panic("interrupt: critical sections nested too deeply")
	}
	if depth == 0 {
		saved = s
	}
	lastSeq++
	if lastSeq == 0 {
		lastSeq = 1
	}
	open[depth] = lastSeq
	depth++
	return CriticalSection{level: depth, seq: lastSeq}
}

// Exit closes the section. Sections must be closed innermost first; closing
// one out of order or twice panics. Exit with no section open does nothing,
// so the nesting counter never goes below zero.
func (cs CriticalSection) Exit() {
	if depth == 0 {
		trace.Record(trace.EvtUnmatchedExit, cs.level, uint16(cs.seq))
		return
	}
	if !cs.Live() {
		panic("interrupt: exit of a critical section that is not open")
	}
	if cs.level != depth {
		panic("interrupt: critical sections exited out of order")
	}
	depth--
	open[depth] = 0
	if depth == 0 {
		restore(saved)
	}
}

// Live reports whether cs is still open.
func (cs CriticalSection) Live() bool {
	return cs.level != 0 && cs.level <= depth && open[cs.level-1] == cs.seq
}

func (cs CriticalSection) check() {
	if !cs.Live() {
		panic("interrupt: critical section used after it was closed")
	}
}

// Depth returns the current nesting level, zero outside any section.
func Depth() uint8 {
	return depth
}

// Enabled reports whether interrupt delivery is globally enabled.
func Enabled() bool {
	return enabled()
}

// Without runs f inside a critical section and returns its result.
func Without[T any](f func(cs CriticalSection) T) T {
	cs := Enter()
	defer cs.Exit()
	return f(cs)
}

// Do runs f inside a critical section.
func Do(f func(cs CriticalSection)) {
	cs := Enter()
	defer cs.Exit()
	f(cs)
}

// Enable turns on interrupt delivery. Call it once at start-up after the
// peripherals are configured; it panics inside a critical section.
func Enable() {
	if depth != 0 {
		panic("interrupt: Enable inside a critical section")
	}
	trace.Record(trace.EvtEnable, 0, 0)
	enable()
}
