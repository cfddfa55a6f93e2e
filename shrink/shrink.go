// Package shrink contains the algorithms that propose smaller candidates for a failing value.
//
// Every function returns a lazy sequence. Candidates are only computed as the
// minimization search asks for them.
package shrink

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"gopbt/lazy"
)

// The sequence n, n/2, n/4, ... down to, but not including, zero.
func Halves[A constraints.Integer](n A) lazy.Seq[A] {
	return lazy.Iterate(n, func(x A) A { return x / 2 }).TakeWhile(func(x A) bool { return x != 0 })
}

// Shrink x towards destination.
//
// The destination is always the first candidate. The following candidates
// converge geometrically from the destination towards x.
// Returns an empty sequence if x equals destination.
func Towards[A constraints.Integer](destination, x A) lazy.Seq[A] {
	if destination == x {
		return lazy.Empty[A]()
	}
	var candidates lazy.Seq[A]
	// Halve before subtracting so that the difference can not overflow.
	// The direction is handled explicitly so that unsigned types never wrap around.
	if x > destination {
		diff := x/2 - destination/2
		candidates = lazy.Map(Halves(diff), func(h A) A { return x - h })
	} else {
		diff := destination/2 - x/2
		candidates = lazy.Map(Halves(diff), func(h A) A { return x + h })
	}
	return consNub(destination, candidates)
}

// Prepend x unless it already is the head of ys
func consNub[A comparable](x A, ys lazy.Seq[A]) lazy.Seq[A] {
	return lazy.Defer(func() lazy.Seq[A] {
		if y, _, ok := ys.Uncons(); ok && y == x {
			return ys
		}
		return lazy.Cons(x, ys)
	})
}

// Shrink a floating point number towards destination.
//
// The destination is always the first candidate. It is followed by x - diff/2, x - diff/4, ...
// until a candidate no longer differs from x.
// Returns an empty sequence if x equals destination or either of them is not finite.
func TowardsFloat[A constraints.Float](destination, x A) lazy.Seq[A] {
	if destination == x || !finite(destination) || !finite(x) {
		return lazy.Empty[A]()
	}
	// Halve before subtracting so that the difference can not overflow to infinity.
	half := x/2 - destination/2
	candidates := lazy.Map(lazy.Iterate(half, func(d A) A { return d / 2 }), func(d A) A { return x - d })
	return consNub(destination, candidates.TakeWhile(func(y A) bool {
		return y != x && finite(y)
	}))
}

func finite[A constraints.Float](x A) bool {
	f := float64(x)
	return f == f && f-f == 0
}

// All the ways of removing a chunk of k consecutive elements from xs.
//
// Chunks are aligned at multiples of k.
func Removes[A any](k int, xs []A) lazy.Seq[[]A] {
	return lazy.Defer(func() lazy.Seq[[]A] {
		if k <= 0 || k > len(xs) {
			return lazy.Empty[[]A]()
		}
		hd, tl := xs[:k], xs[k:]
		if len(tl) == 0 {
			return lazy.Single([]A{})
		}
		rest := lazy.Map(Removes(k, tl), func(ys []A) []A {
			return append(slices.Clone(hd), ys...)
		})
		return lazy.Cons(slices.Clone(tl), rest)
	})
}

// Shrink a slice by removing chunks of elements, the largest chunks first.
func List[A any](xs []A) lazy.Seq[[]A] {
	return lazy.FlatMap(Halves(len(xs)), func(k int) lazy.Seq[[]A] {
		return Removes(k, xs)
	})
}

// Shrink one element of the slice at a time while keeping its length fixed.
//
// The first element is shrunk before the rest of the slice.
func Elems[A any](shrink func(A) lazy.Seq[A], xs []A) lazy.Seq[[]A] {
	return lazy.Defer(func() lazy.Seq[[]A] {
		if len(xs) == 0 {
			return lazy.Empty[[]A]()
		}
		x0, rest := xs[0], xs[1:]
		heads := lazy.Map(shrink(x0), func(y A) []A {
			return append([]A{y}, rest...)
		})
		tails := lazy.Map(Elems(shrink, rest), func(ys []A) []A {
			return append([]A{x0}, ys...)
		})
		return heads.Concat(tails)
	})
}
