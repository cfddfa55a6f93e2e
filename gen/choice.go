package gen

import (
	"fmt"
	"log"

	"golang.org/x/exp/slices"

	"gopbt/ranges"
)

// A generator paired with its relative weight
type Weighted[A any] struct {
	Weight int
	Gen    Gen[A]
}

// Pick one of the generators with probability proportional to its weight.
// Returns ErrEmptyInput if gens is empty and ErrNoWeight if the weights do not add up to a positive number.
func TryFrequency[A any](gens ...Weighted[A]) (Gen[A], error) {
	if len(gens) == 0 {
		return nil, fmt.Errorf("%w: frequency needs at least one generator", ErrEmptyInput)
	}
	total := 0
	for _, w := range gens {
		if w.Weight < 0 {
			return nil, fmt.Errorf("%w: negative weight %d", ErrNoWeight, w.Weight)
		}
		total += w.Weight
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: the weights add up to %d", ErrNoWeight, total)
	}
	gens = slices.Clone(gens)
	pick := func(n int) Gen[A] {
		for _, w := range gens {
			if n <= w.Weight {
				return w.Gen
			}
			n -= w.Weight
		}
		log.Panicf("gen: frequency picked %d which exceeds the total weight %d", n, total)
		return nil
	}
	return Bind(Integral(ranges.Constant(1, total)), pick), nil
}

// Like TryFrequency, but panics if the input is malformed
func Frequency[A any](gens ...Weighted[A]) Gen[A] {
	return must(TryFrequency(gens...))
}

// Pick one of the generators with uniform probability.
// Returns ErrEmptyInput if gens is empty.
func TryChoice[A any](gens ...Gen[A]) (Gen[A], error) {
	if len(gens) == 0 {
		return nil, fmt.Errorf("%w: choice needs at least one generator", ErrEmptyInput)
	}
	gens = slices.Clone(gens)
	return Bind(Integral(ranges.Constant(0, len(gens)-1)), func(i int) Gen[A] {
		return gens[i]
	}), nil
}

func Choice[A any](gens ...Gen[A]) Gen[A] {
	return must(TryChoice(gens...))
}

// Pick one of the values with uniform probability. Shrinks towards the first value.
// Returns ErrEmptyInput if xs is empty.
func TryItem[A any](xs ...A) (Gen[A], error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: item needs at least one value", ErrEmptyInput)
	}
	xs = slices.Clone(xs)
	return Bind(Integral(ranges.Constant(0, len(xs)-1)), func(i int) Gen[A] {
		return Constant(xs[i])
	}), nil
}

func Item[A any](xs ...A) Gen[A] {
	return must(TryItem(xs...))
}

// Choose between non-recursive and recursive generators.
//
// Only the non-recursive generators are used at size 1 or below.
// Otherwise the recursive generators are included, each run at half the size,
// which makes generators of recursive structures terminate.
// Returns ErrEmptyInput if there are no non-recursive generators.
func TryChoiceRec[A any](nonrecs, recs []Gen[A]) (Gen[A], error) {
	if len(nonrecs) == 0 {
		return nil, fmt.Errorf("%w: choice rec needs at least one non-recursive generator", ErrEmptyInput)
	}
	nonrecs, recs = slices.Clone(nonrecs), slices.Clone(recs)
	halve := func(size ranges.Size) ranges.Size { return size / 2 }
	return Sized(func(size ranges.Size) Gen[A] {
		if size <= 1 {
			return Choice(nonrecs...)
		}
		gens := slices.Clone(nonrecs)
		for _, g := range recs {
			gens = append(gens, Scale(g, halve))
		}
		return Choice(gens...)
	}), nil
}

func ChoiceRec[A any](nonrecs, recs []Gen[A]) Gen[A] {
	return must(TryChoiceRec(nonrecs, recs))
}

func must[A any](g Gen[A], err error) Gen[A] {
	if err != nil {
		panic(err)
	}
	return g
}
