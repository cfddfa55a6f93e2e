// Package lazy provides memoized thunks and memoized lazy sequences.
//
// Values are computed at most once, the first time they are forced.
// Forcing is not synchronized: a Lazy or Seq must not be forced from multiple goroutines
// at the same time unless the caller adds its own synchronization.
package lazy

// A memoized thunk
type Lazy[A any] struct {
	f      func() A
	value  A
	forced bool
}

// Create a thunk that computes its value with f the first time it is forced.
func New[A any](f func() A) *Lazy[A] {
	return &Lazy[A]{f: f}
}

// Create an already forced thunk.
func Of[A any](value A) *Lazy[A] {
	return &Lazy[A]{value: value, forced: true}
}

// Force the thunk and return its value.
//
// Repeated calls return the same value without recomputing it.
func (l *Lazy[A]) Value() A {
	if !l.forced {
		l.value = l.f()
		l.forced = true
		// Release everything captured by the closure
		l.f = nil
	}
	return l.value
}

// Returns true if the value has been computed.
func (l *Lazy[A]) Forced() bool {
	return l.forced
}
