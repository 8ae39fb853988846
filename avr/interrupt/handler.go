package interrupt

import "rp6/trace"

// Every handler owns one slot of a fixed table. Its persistent state lives in
// the slot, is initialised once when the handler is registered, and is handed
// to the handler body by pointer on each dispatch. Nothing else can reach the
// state, and a handler cannot be re-entered while it runs, so the pointer is
// exclusive for the duration of the call.

type dispatcher interface {
	dispatch()
}

var slots [MaxVectors]dispatcher

// Slot describes one occupied entry of the handler table.
type Slot struct {
	Name   string
	Vector Vector
}

// Handler is a registered interrupt handler with persistent state S.
type Handler[S any] struct {
	vector Vector
	state  S
	body   func(*S)
	active bool
}

// Interrupt registers body as the handler of v. The handler's state starts
// as initial and persists across calls; declare each resource as a field of
// S. Register every handler during start-up: registering a second handler
// for v, registering on Reset or on a vector the device does not have
// panics.
func Interrupt[S any](v Vector, initial S, body func(*S)) *Handler[S] {
	if v == Reset {
		panic("interrupt: the reset slot belongs to Entry")
	}
	h := newHandler(v, initial, body)
	claim(v, h)
	return h
}

// Entry registers body as the program entry in the Reset slot and runs it
// with its persistent state. On the target the body is not expected to
// return. A second Entry panics.
func Entry[S any](initial S, body func(*S)) {
	h := newHandler(Reset, initial, body)
	claim(Reset, h)
	h.dispatch()
}

func newHandler[S any](v Vector, initial S, body func(*S)) *Handler[S] {
	if body == nil {
		panic("interrupt: nil handler body for " + vectorName(v))
	}
	return &Handler[S]{vector: v, state: initial, body: body}
}

func claim(v Vector, d dispatcher) {
	if v >= MaxVectors || (device != nil && !device.Contains(v)) {
		panic("interrupt: " + vectorName(v) + " is not a vector of this device")
	}
	if slots[v] != nil {
		panic("interrupt: " + vectorName(v) + " already has a handler")
	}
	slots[v] = d
	trace.Record(trace.EvtRegister, uint8(v), 0)
}

// Vector returns the slot the handler is registered in.
func (h *Handler[S]) Vector() Vector { return h.vector }

// Name returns the canonical name of the handler's slot.
func (h *Handler[S]) Name() string { return vectorName(h.vector) }

func (h *Handler[S]) dispatch() {
	if h.active {
		panic("interrupt: " + vectorName(h.vector) + " handler re-entered")
	}
	h.active = true
	h.body(&h.state)
	h.active = false
}

// Dispatch runs the handler registered for v. The target's vector
// trampolines call it; vectors without a handler are ignored.
func Dispatch(v Vector) {
	if v >= MaxVectors {
		return
	}
	if d := slots[v]; d != nil {
		trace.Record(trace.EvtDispatch, uint8(v), 0)
		d.dispatch()
	}
}

// Registered reports whether v has a handler.
func Registered(v Vector) bool {
	return v < MaxVectors && slots[v] != nil
}

// Slots lists the occupied slots in vector order.
func Slots() []Slot {
	var out []Slot
	for v, d := range slots {
		if d != nil {
			out = append(out, Slot{Name: vectorName(Vector(v)), Vector: Vector(v)})
		}
	}
	return out
}
