// Package trace is the firmware's logging layer: a pluggable line writer and
// a small ring of interrupt events kept for post-mortem dumps.
package trace

// Writer receives one line of debug output.
type Writer func(string)

// Event is one entry of the event ring.
type Event struct {
	Kind  uint8  // Event kind code
	Arg   uint8  // Vector number or nesting level
	Value uint16 // Context-dependent value
}

// Event kind codes
const (
	EvtUnmatchedExit = 1 // Exit with no open critical section
	EvtDispatch      = 2 // Handler dispatched
	EvtPending       = 3 // Line raised while delivery was masked
	EvtRegister      = 4 // Handler registered in a slot
	EvtEnable        = 5 // Global interrupt enable at start-up
)

// RingSize is the number of events kept.
const RingSize = 16

var (
	writer  Writer = func(string) {}
	enabled bool

	ring      [RingSize]Event
	ringHead  uint8
	recording = true
)

// SetWriter redirects debug output, typically to the UART.
func SetWriter(w Writer) {
	if w == nil {
		w = func(string) {}
	}
	writer = w
}

// SetEnabled switches Println output on or off.
func SetEnabled(on bool) {
	enabled = on
}

// Enabled reports whether Println output is active.
func Enabled() bool {
	return enabled
}

// SetRecording switches event capture on or off. Capture is on by default.
func SetRecording(on bool) {
	recording = on
}

// Println writes msg through the current writer when output is enabled.
func Println(msg string) {
	if enabled {
		writer(msg)
	}
}

// Record stores an event in the ring, overwriting the oldest one.
// It never blocks and never allocates, so handlers may call it.
func Record(kind, arg uint8, value uint16) {
	if !recording {
		return
	}
	idx := ringHead
	ring[idx] = Event{Kind: kind, Arg: arg, Value: value}
	ringHead = (idx + 1) % RingSize
}

// Events returns the recorded events from oldest to newest.
func Events() []Event {
	out := make([]Event, 0, RingSize)
	for i := uint8(0); i < RingSize; i++ {
		evt := ring[(ringHead+i)%RingSize]
		if evt.Kind == 0 {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// Dump writes the ring through the current writer, oldest first.
// It ignores the Enabled switch.
func Dump() {
	writer("[TRACE] === event ring ===")
	for _, evt := range Events() {
		writer("[TRACE] " + KindName(evt.Kind) +
			" arg=" + utoa(uint32(evt.Arg)) +
			" value=" + utoa(uint32(evt.Value)))
	}
	writer("[TRACE] === end ===")
}

// Clear empties the ring.
func Clear() {
	for i := range ring {
		ring[i] = Event{}
	}
	ringHead = 0
}

// KindName returns the printable name of an event kind.
func KindName(kind uint8) string {
	switch kind {
	case EvtUnmatchedExit:
		return "UNMATCHED_EXIT"
	case EvtDispatch:
		return "DISPATCH"
	case EvtPending:
		return "PENDING"
	case EvtRegister:
		return "REGISTER"
	case EvtEnable:
		return "ENABLE"
	default:
		return "UNKNOWN"
	}
}
