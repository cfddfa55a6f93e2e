// Package random contains the primitive sampling contract: a pure function from a seed and a size to a value.
package random

import (
	"golang.org/x/exp/constraints"

	"gopbt/ranges"
	"gopbt/seed"
)

// A Random is a pure function of a seed and a size.
// Running it twice with the same arguments returns the same value.
type Random[A any] func(seed.Seed, ranges.Size) A

// Run r with the size as given
func UnsafeRun[A any](s seed.Seed, size ranges.Size, r Random[A]) A {
	return r(s, size)
}

// Run r. Sizes below 1 are raised to 1.
func Run[A any](s seed.Seed, size ranges.Size, r Random[A]) A {
	return UnsafeRun(s, max(size, 1), r)
}

// Construct the Random when it is run, not when it is defined.
// Used to tie the knot in recursive definitions.
func Delay[A any](f func() Random[A]) Random[A] {
	return func(s seed.Seed, size ranges.Size) A {
		return UnsafeRun(s, size, f())
	}
}

func Constant[A any](x A) Random[A] {
	return func(seed.Seed, ranges.Size) A { return x }
}

func Map[A, B any](r Random[A], f func(A) B) Random[B] {
	return func(s seed.Seed, size ranges.Size) B {
		return f(UnsafeRun(s, size, r))
	}
}

// Sequence two Randoms. The seed is split so that r and the continuation draw from independent streams.
// r is run with the first half of the split.
func Bind[A, B any](r Random[A], k func(A) Random[B]) Random[B] {
	return func(s seed.Seed, size ranges.Size) B {
		s1, s2 := seed.Split(s)
		x := UnsafeRun(s1, size, r)
		return UnsafeRun(s2, size, k(x))
	}
}

// Dispatch on the ambient size
func Sized[A any](f func(ranges.Size) Random[A]) Random[A] {
	return func(s seed.Seed, size ranges.Size) A {
		return UnsafeRun(s, size, f(size))
	}
}

// Ignore the ambient size and run r with size instead
func Resize[A any](size ranges.Size, r Random[A]) Random[A] {
	return func(s seed.Seed, _ ranges.Size) A {
		return Run(s, size, r)
	}
}

// Sample an integer uniformly between the bounds of the range at the current size
func Integral[A constraints.Integer](r ranges.Range[A]) Random[A] {
	return func(s seed.Seed, size ranges.Size) A {
		lo, hi := r.Bounds(size)
		x, _ := seed.NextInteger(lo, hi, s)
		return x
	}
}

// Sample a floating point number uniformly between the bounds of the range at the current size
func Float[A constraints.Float](r ranges.Range[A]) Random[A] {
	return func(s seed.Seed, size ranges.Size) A {
		lo, hi := r.Bounds(size)
		x, _ := seed.NextFractional(lo, hi, s)
		return x
	}
}

func F64(r ranges.Range[float64]) Random[float64] {
	return Float(r)
}

func F32(r ranges.Range[float32]) Random[float32] {
	return Float(r)
}

// Run r times times. Every element gets its own split of the seed.
func Replicate[A any](times int, r Random[A]) Random[[]A] {
	return func(s seed.Seed, size ranges.Size) []A {
		acc := make([]A, 0, max(times, 0))
		for k := 0; k < times; k++ {
			s1, s2 := seed.Split(s)
			acc = append(acc, UnsafeRun(s1, size, r))
			s = s2
		}
		return acc
	}
}
