package interrupt

import "rp6/trace"

// Vector is a hardware interrupt vector slot number.
type Vector uint8

// Reset is slot 0, owned by the program entry.
const Reset Vector = 0

// MaxVectors bounds the vector number of any supported device.
const MaxVectors = 32

// Named pairs an interrupt's canonical name with its slot.
type Named struct {
	Name   string
	Vector Vector
}

// Table is a device's vector layout, ordered by slot.
type Table []Named

// Lookup returns the slot of the named interrupt.
func (t Table) Lookup(name string) (Vector, bool) {
	for _, n := range t {
		if n.Name == name {
			return n.Vector, true
		}
	}
	return 0, false
}

// Name returns the canonical name of v, or "" if the table has no such slot.
func (t Table) Name(v Vector) string {
	for _, n := range t {
		if n.Vector == v {
			return n.Name
		}
	}
	return ""
}

// Len returns the number of slots.
func (t Table) Len() int { return len(t) }

// Each calls fn for every slot in order until fn returns false.
func (t Table) Each(fn func(name string, v Vector) bool) {
	for _, n := range t {
		if !fn(n.Name, n.Vector) {
			return
		}
	}
}

// Contains reports whether v is a slot of the table.
func (t Table) Contains(v Vector) bool {
	return t.Name(v) != ""
}

var device Table

// SetTable installs the vector layout of the device the program runs on.
// Device packages call it from init.
func SetTable(t Table) {
	device = t
}

// Device returns the installed vector layout.
func Device() Table {
	return device
}

func vectorName(v Vector) string {
	if name := device.Name(v); name != "" {
		return name
	}
	return "vector_" + trace.Itoa(int(v))
}
