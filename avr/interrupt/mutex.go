package interrupt

// Mutex holds a value shared with interrupt handlers. The value can only be
// reached through a Ref, and a Ref can only be obtained with a live
// CriticalSection. There is no blocking: masking interrupts is the lock.
type Mutex[T any] struct {
	value T
}

// NewMutex wraps v.
func NewMutex[T any](v T) Mutex[T] {
	return Mutex[T]{value: v}
}

// Lock returns access to the value for the lifetime of cs.
func (m *Mutex[T]) Lock(cs CriticalSection) Ref[T] {
	cs.check()
	return Ref[T]{m: m, cs: cs}
}

// Ref is access to the value of a Mutex. Every method checks that the
// critical section it was obtained with is still open.
type Ref[T any] struct {
	m  *Mutex[T]
	cs CriticalSection
}

func (r Ref[T]) check() {
	if r.m == nil {
		panic("interrupt: Ref not obtained from Mutex.Lock")
	}
	r.cs.check()
}

func (r Ref[T]) Get() T {
	r.check()
	return r.m.value
}

func (r Ref[T]) Set(v T) {
	r.check()
	r.m.value = v
}

// Replace stores v and returns the previous value.
func (r Ref[T]) Replace(v T) T {
	r.check()
	old := r.m.value
	r.m.value = v
	return old
}

// Update stores f(old) and returns the new value.
func (r Ref[T]) Update(f func(T) T) T {
	r.check()
	r.m.value = f(r.m.value)
	return r.m.value
}

// Take returns the value and leaves the zero value in its place.
func (r Ref[T]) Take() T {
	var zero T
	return r.Replace(zero)
}
