package interrupt

import "errors"

// ErrBorrowed is returned by TryModify when the value is already borrowed.
var ErrBorrowed = errors.New("interrupt: value already borrowed")

// DynamicMutex is a Mutex for structured values that are worked on in place.
// On top of the critical-section requirement it tracks borrows at run time:
// any number of shared borrows or one exclusive borrow. A conflicting borrow
// can only happen when code keeps a borrow across a handler that reaches the
// same value, and it panics.
type DynamicMutex[T any] struct {
	value  T
	borrow int8 // >0 shared borrows, -1 exclusive
}

func NewDynamicMutex[T any](v T) DynamicMutex[T] {
	return DynamicMutex[T]{value: v}
}

// Lock returns access to the value for the lifetime of cs.
func (m *DynamicMutex[T]) Lock(cs CriticalSection) DynamicRef[T] {
	cs.check()
	return DynamicRef[T]{m: m, cs: cs}
}

// DynamicRef is access to the value of a DynamicMutex.
type DynamicRef[T any] struct {
	m  *DynamicMutex[T]
	cs CriticalSection
}

func (r DynamicRef[T]) check() {
	if r.m == nil {
		panic("interrupt: DynamicRef not obtained from DynamicMutex.Lock")
	}
	r.cs.check()
}

// Borrow takes a shared borrow. Release it before the critical section ends.
func (r DynamicRef[T]) Borrow() Borrow[T] {
	r.check()
	if r.m.borrow < 0 {
		panic("interrupt: value already borrowed exclusively")
	}
	r.m.borrow++
	return Borrow[T]{ref: r, shared: true}
}

// BorrowMut takes the exclusive borrow. Release it before the critical
// section ends.
func (r DynamicRef[T]) BorrowMut() Borrow[T] {
	r.check()
	if r.m.borrow != 0 {
		panic("interrupt: value already borrowed")
	}
	r.m.borrow = -1
	return Borrow[T]{ref: r}
}

// Inspect runs f with a shared borrow of the value.
func (r DynamicRef[T]) Inspect(f func(v *T)) {
	b := r.Borrow()
	defer b.Release()
	f(b.Value())
}

// Modify runs f with the exclusive borrow of the value.
func (r DynamicRef[T]) Modify(f func(v *T)) {
	b := r.BorrowMut()
	defer b.Release()
	f(b.Value())
}

// TryModify is Modify that reports a conflicting borrow instead of
// panicking.
func (r DynamicRef[T]) TryModify(f func(v *T)) error {
	r.check()
	if r.m.borrow != 0 {
		return ErrBorrowed
	}
	r.Modify(f)
	return nil
}

// Borrow is one outstanding borrow of a DynamicMutex value.
type Borrow[T any] struct {
	ref      DynamicRef[T]
	shared   bool
	released bool
}

// Value returns the borrowed value. Shared borrows must not write through it.
func (b *Borrow[T]) Value() *T {
	if b.released {
		panic("interrupt: borrow used after Release")
	}
	b.ref.check()
	return &b.ref.m.value
}

// Release ends the borrow. Releasing twice panics.
func (b *Borrow[T]) Release() {
	if b.released || b.ref.m == nil {
		panic("interrupt: release of a borrow that is not held")
	}
	b.released = true
	if b.shared {
		b.ref.m.borrow--
		return
	}
	b.ref.m.borrow = 0
}
