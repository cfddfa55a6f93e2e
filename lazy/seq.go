package lazy

// A memoized lazy sequence.
//
// Each cell of the sequence is computed on demand and cached,
// so traversing a prefix a second time does not recompute it.
// The zero value is the empty sequence.
type Seq[A any] struct {
	node *Lazy[*cell[A]]
}

type cell[A any] struct {
	head A
	tail Seq[A]
}

func (s Seq[A]) force() *cell[A] {
	if s.node == nil {
		return nil
	}
	return s.node.Value()
}

func Empty[A any]() Seq[A] {
	return Seq[A]{}
}

// Prepend head to tail.
func Cons[A any](head A, tail Seq[A]) Seq[A] {
	return Seq[A]{node: Of(&cell[A]{head: head, tail: tail})}
}

// Create a sequence whose structure is computed by f the first time it is inspected.
func Defer[A any](f func() Seq[A]) Seq[A] {
	return Seq[A]{node: New(func() *cell[A] {
		return f().force()
	})}
}

func Single[A any](x A) Seq[A] {
	return Cons(x, Empty[A]())
}

func FromSlice[A any](xs []A) Seq[A] {
	return fromSlice(xs, 0)
}

func fromSlice[A any](xs []A, i int) Seq[A] {
	if i >= len(xs) {
		return Empty[A]()
	}
	return Seq[A]{node: New(func() *cell[A] {
		return &cell[A]{head: xs[i], tail: fromSlice(xs, i+1)}
	})}
}

// The infinite sequence x, f(x), f(f(x)), ...
func Iterate[A any](x A, f func(A) A) Seq[A] {
	return Seq[A]{node: New(func() *cell[A] {
		return &cell[A]{head: x, tail: Iterate(f(x), f)}
	})}
}

// Build a sequence from a state. The sequence ends when step returns false.
func Unfold[S, A any](state S, step func(S) (A, S, bool)) Seq[A] {
	return Seq[A]{node: New(func() *cell[A] {
		x, next, ok := step(state)
		if !ok {
			return nil
		}
		return &cell[A]{head: x, tail: Unfold(next, step)}
	})}
}

// Returns the first element and the rest of the sequence. ok is false if the sequence is empty.
func (s Seq[A]) Uncons() (head A, tail Seq[A], ok bool) {
	c := s.force()
	if c == nil {
		return head, tail, false
	}
	return c.head, c.tail, true
}

func (s Seq[A]) IsEmpty() bool {
	return s.force() == nil
}

// Call f on each element in order until f returns false.
func (s Seq[A]) Each(f func(A) bool) {
	for c := s.force(); c != nil; c = c.tail.force() {
		if !f(c.head) {
			return
		}
	}
}

// Returns the first element satisfying p.
func (s Seq[A]) Find(p func(A) bool) (found A, ok bool) {
	s.Each(func(x A) bool {
		if p(x) {
			found, ok = x, true
			return false
		}
		return true
	})
	return found, ok
}

// Collect the sequence into a slice. The sequence must be finite.
// The empty sequence is collected into a nil slice.
func (s Seq[A]) ToSlice() []A {
	var out []A
	s.Each(func(x A) bool {
		out = append(out, x)
		return true
	})
	return out
}

// The first n elements of the sequence.
func (s Seq[A]) Take(n int) Seq[A] {
	if n <= 0 {
		return Empty[A]()
	}
	return Seq[A]{node: New(func() *cell[A] {
		c := s.force()
		if c == nil {
			return nil
		}
		return &cell[A]{head: c.head, tail: c.tail.Take(n - 1)}
	})}
}

// The longest prefix whose elements satisfy p.
func (s Seq[A]) TakeWhile(p func(A) bool) Seq[A] {
	return Seq[A]{node: New(func() *cell[A] {
		c := s.force()
		if c == nil || !p(c.head) {
			return nil
		}
		return &cell[A]{head: c.head, tail: c.tail.TakeWhile(p)}
	})}
}

// Keep the elements that satisfy p.
func (s Seq[A]) Filter(p func(A) bool) Seq[A] {
	return Seq[A]{node: New(func() *cell[A] {
		c := s.force()
		for c != nil && !p(c.head) {
			c = c.tail.force()
		}
		if c == nil {
			return nil
		}
		return &cell[A]{head: c.head, tail: c.tail.Filter(p)}
	})}
}

// The elements of s followed by the elements of other.
func (s Seq[A]) Concat(other Seq[A]) Seq[A] {
	return Seq[A]{node: New(func() *cell[A] {
		c := s.force()
		if c == nil {
			return other.force()
		}
		return &cell[A]{head: c.head, tail: c.tail.Concat(other)}
	})}
}

func Map[A, B any](s Seq[A], f func(A) B) Seq[B] {
	return Seq[B]{node: New(func() *cell[B] {
		c := s.force()
		if c == nil {
			return nil
		}
		return &cell[B]{head: f(c.head), tail: Map(c.tail, f)}
	})}
}

// Flatten a sequence of sequences.
func Flatten[A any](ss Seq[Seq[A]]) Seq[A] {
	return Seq[A]{node: New(func() *cell[A] {
		for c := ss.force(); c != nil; c = c.tail.force() {
			if inner := c.head.force(); inner != nil {
				return &cell[A]{head: inner.head, tail: inner.tail.Concat(Flatten(c.tail))}
			}
		}
		return nil
	})}
}

func FlatMap[A, B any](s Seq[A], f func(A) Seq[B]) Seq[B] {
	return Flatten(Map(s, f))
}

func Concat[A any](seqs ...Seq[A]) Seq[A] {
	return Flatten(FromSlice(seqs))
}
