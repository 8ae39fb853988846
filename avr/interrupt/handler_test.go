package interrupt

import (
	"reflect"
	"testing"

	"rp6/trace"
)

type tickState struct {
	count uint8
}

func TestHandlerStatePersists(t *testing.T) {
	tests := []struct {
		name  string
		start uint8
		want  []uint8
	}{
		{"from zero", 0, []uint8{0, 1, 2, 3}},
		{"wraps", 254, []uint8{254, 255, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset(t)
			var seen []uint8
			h := Interrupt(5, tickState{count: tt.start}, func(s *tickState) {
				seen = append(seen, s.count)
				s.count++
			})
			if h.Vector() != 5 {
				t.Fatalf("Vector() = %d", h.Vector())
			}
			for range tt.want {
				Raise(5)
			}
			if !reflect.DeepEqual(seen, tt.want) {
				t.Fatalf("seen %v, want %v", seen, tt.want)
			}
		})
	}
}

func TestRegistrationConflicts(t *testing.T) {
	reset(t)
	SetTable(Table{{"RESET", 0}, {"INT0", 1}, {"INT1", 2}})
	noop := func(*struct{}) {}

	Interrupt(1, struct{}{}, noop)
	mustPanic(t, "second handler", func() { Interrupt(1, struct{}{}, noop) })
	mustPanic(t, "reset slot", func() { Interrupt(Reset, struct{}{}, noop) })
	mustPanic(t, "not in device table", func() { Interrupt(7, struct{}{}, noop) })
	mustPanic(t, "nil body", func() { Interrupt[struct{}](2, struct{}{}, nil) })

	SetTable(nil)
	mustPanic(t, "past MaxVectors", func() { Interrupt(MaxVectors, struct{}{}, noop) })
}

func TestEntry(t *testing.T) {
	reset(t)
	SetTable(Table{{"RESET", 0}, {"INT0", 1}})

	type mainState struct{ loops int }
	var final int
	Entry(mainState{loops: 1}, func(s *mainState) {
		s.loops++
		final = s.loops
	})
	if final != 2 {
		t.Fatalf("entry saw %d", final)
	}

	slots := Slots()
	if len(slots) != 1 || slots[0] != (Slot{Name: "RESET", Vector: Reset}) {
		t.Fatalf("Slots() = %+v", slots)
	}
	mustPanic(t, "second entry", func() { Entry(0, func(*int) {}) })
}

func TestReentryPanics(t *testing.T) {
	reset(t)
	Interrupt(2, struct{}{}, func(*struct{}) { Dispatch(2) })
	mustPanic(t, "re-entered handler", func() { Dispatch(2) })
}

func TestOwnLineMaskedOthersPreempt(t *testing.T) {
	reset(t)
	var order []string

	first := true
	Interrupt(4, struct{}{}, func(*struct{}) {
		order = append(order, "4 start")
		if first {
			first = false
			Raise(4)
			if !Pending(4) {
				t.Error("own line delivered while in service")
			}
			Raise(2)
		}
		order = append(order, "4 end")
	})
	Interrupt(2, struct{}{}, func(*struct{}) { order = append(order, "2") })

	Raise(4)

	want := []string{"4 start", "2", "4 end", "4 start", "4 end"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("order %v, want %v", order, want)
	}
}

func TestCriticalSectionInHandlerDefersPreemption(t *testing.T) {
	reset(t)
	var order []string

	Interrupt(4, struct{}{}, func(*struct{}) {
		cs := Enter()
		Raise(2)
		order = append(order, "inside")
		cs.Exit()
		order = append(order, "after")
	})
	Interrupt(2, struct{}{}, func(*struct{}) { order = append(order, "2") })

	Raise(4)

	want := []string{"inside", "2", "after"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("order %v, want %v", order, want)
	}
}

func TestPriorityOrder(t *testing.T) {
	reset(t)
	var order []Vector
	for _, v := range []Vector{9, 3, 6} {
		v := v
		Interrupt(v, struct{}{}, func(*struct{}) { order = append(order, v) })
	}

	Do(func(CriticalSection) {
		Raise(9)
		Raise(6)
		Raise(3)
	})

	if want := []Vector{3, 6, 9}; !reflect.DeepEqual(order, want) {
		t.Fatalf("order %v, want %v", order, want)
	}
}

func TestDispatchUnregistered(t *testing.T) {
	reset(t)
	Dispatch(6)
	Dispatch(MaxVectors + 1)
	Raise(6)
	if Registered(6) || Pending(6) {
		t.Fatal("unregistered vector left state behind")
	}
}

func TestSlotsAndTrace(t *testing.T) {
	reset(t)
	SetTable(Table{{"RESET", 0}, {"INT0", 1}, {"TIMER0_OVF", 11}})

	h := Interrupt(11, struct{}{}, func(*struct{}) {})
	Interrupt(1, struct{}{}, func(*struct{}) {})
	Raise(11)

	if h.Name() != "TIMER0_OVF" {
		t.Errorf("Name() = %q", h.Name())
	}
	want := []Slot{{"INT0", 1}, {"TIMER0_OVF", 11}}
	if got := Slots(); !reflect.DeepEqual(got, want) {
		t.Errorf("Slots() = %+v", got)
	}

	var kinds []uint8
	for _, evt := range trace.Events() {
		kinds = append(kinds, evt.Kind)
	}
	wantKinds := []uint8{trace.EvtRegister, trace.EvtRegister, trace.EvtDispatch}
	if !reflect.DeepEqual(kinds, wantKinds) {
		t.Errorf("trace kinds %v, want %v", kinds, wantKinds)
	}
}
