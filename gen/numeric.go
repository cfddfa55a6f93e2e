package gen

import (
	"golang.org/x/exp/constraints"

	"gopbt/lazy"
	"gopbt/random"
	"gopbt/ranges"
	"gopbt/shrink"
	"gopbt/tree"
)

// Generate integers within the range. Shrinks towards the origin of the range.
func Integral[A constraints.Integer](r ranges.Range[A]) Gen[A] {
	origin := r.Origin()
	return Create(func(x A) lazy.Seq[A] { return shrink.Towards(origin, x) }, random.Integral(r))
}

// Generate floating point numbers within the range. Shrinks towards the origin of the range.
func Float[A constraints.Float](r ranges.Range[A]) Gen[A] {
	origin := r.Origin()
	return Create(func(x A) lazy.Seq[A] { return shrink.TowardsFloat(origin, x) }, random.Float(r))
}

func F64(r ranges.Range[float64]) Gen[float64] {
	return Float(r)
}

func F32(r ranges.Range[float32]) Gen[float32] {
	return Float(r)
}

// Returns true if xs has at least n elements
func AtLeast[A any](n int, xs []A) bool {
	return len(xs) >= n
}

// Generate slices with a length within the range.
//
// The slices shrink both by dropping elements and by shrinking the elements.
// Shrinks shorter than the lower bound of the range at the current size are removed.
func Vec[A any](r ranges.Range[int], g Gen[A]) Gen[[]A] {
	return FromRandom(random.Sized(func(size ranges.Size) random.Random[tree.Tree[[]A]] {
		lower := ranges.LowerBound(size, r)
		long := func(xs []A) bool { return AtLeast(lower, xs) }
		return random.Bind(random.Integral(r), func(k int) random.Random[tree.Tree[[]A]] {
			return random.Map(random.Replicate(k, ToRandom(g)), func(ts []tree.Tree[A]) tree.Tree[[]A] {
				return tree.Filter(shrink.SequenceList(ts), long)
			})
		})
	}))
}

// Generate strings with a number of runes within the range
func String(r ranges.Range[int], g Gen[rune]) Gen[string] {
	return Map(Vec(r, g), func(rs []rune) string { return string(rs) })
}
