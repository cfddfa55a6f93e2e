package gen

import (
	"fmt"

	"gopbt/ranges"
	"gopbt/seed"
	"gopbt/tree"
)

// The number of times Filter grows the size and starts over before it gives up
const FilterRetryLimit = 100

// An optional value
type Maybe[A any] struct {
	Value A
	Valid bool
}

func Some[A any](x A) Maybe[A] {
	return Maybe[A]{Value: x, Valid: true}
}

func None[A any]() Maybe[A] {
	return Maybe[A]{}
}

func (m Maybe[A]) String() string {
	if !m.Valid {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", m.Value)
}

// Sample g until the value satisfies p.
// Attempt k is made with size 2k+n where n is the number of remaining attempts.
// At most max(size, 1) attempts are made.
func tryN[A any](g Gen[A], p func(A) bool, s seed.Seed, size ranges.Size) (tree.Tree[A], bool) {
	n := max(size, 1)
	for k := ranges.Size(0); n > 0; k, n = k+1, n-1 {
		s1, s2 := seed.Split(s)
		t := Run(s1, 2*k+n, g)
		if p(t.Value()) {
			return tree.Filter(t, p), true
		}
		s = s2
	}
	return tree.Tree[A]{}, false
}

// Generate values that satisfy p. Shrinks that do not satisfy p are removed.
// Returns None when no value was found within the attempt budget.
func TryFilter[A any](g Gen[A], p func(A) bool) Gen[Maybe[A]] {
	return func(s seed.Seed, size ranges.Size) tree.Tree[Maybe[A]] {
		t, ok := tryN(g, p, s, size)
		if !ok {
			return tree.Singleton(None[A]())
		}
		return tree.Map(t, Some[A])
	}
}

// Generate values that satisfy p. Shrinks that do not satisfy p are removed.
//
// When a round of attempts fails the size is grown by one and a new round starts.
// Panics with ErrFilterExhausted after FilterRetryLimit additional rounds.
func Filter[A any](g Gen[A], p func(A) bool) Gen[A] {
	return func(s seed.Seed, size ranges.Size) tree.Tree[A] {
		for round := 0; round <= FilterRetryLimit; round++ {
			s1, s2 := seed.Split(s)
			if t, ok := tryN(g, p, s1, size); ok {
				return t
			}
			s, size = s2, max(size, 1)+1
		}
		panic(fmt.Errorf("%w: no value satisfied the predicate after %d rounds", ErrFilterExhausted, FilterRetryLimit+1))
	}
}

// Keep the present values. Discards the absent ones using Filter.
func SomeOf[A any](g Gen[Maybe[A]]) Gen[A] {
	valid := func(m Maybe[A]) bool { return m.Valid }
	return Map(Filter(g, valid), func(m Maybe[A]) A { return m.Value })
}

// Generate absent values with weight 2 and present values with weight 1 + size
func Option[A any](g Gen[A]) Gen[Maybe[A]] {
	return Sized(func(size ranges.Size) Gen[Maybe[A]] {
		return Frequency(
			Weighted[Maybe[A]]{2, Constant(None[A]())},
			Weighted[Maybe[A]]{1 + max(int(size), 0), Map(g, Some[A])},
		)
	})
}
