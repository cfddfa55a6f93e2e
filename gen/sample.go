package gen

import (
	"fmt"
	"io"

	"gopbt/random"
	"gopbt/ranges"
	"gopbt/seed"
	"gopbt/tree"
)

const (
	// The size used by the sampling functions
	SampleSize ranges.Size = 30
	// The number of values printed by PrintSample
	SampleCount = 5
)

// Sample count trees from g using the seed
func SampleTreeWith[A any](s seed.Seed, size ranges.Size, count int, g Gen[A]) []tree.Tree[A] {
	return random.Run(s, size, random.Replicate(count, ToRandom(g)))
}

// Sample count trees from g using a random seed
func SampleTree[A any](size ranges.Size, count int, g Gen[A]) []tree.Tree[A] {
	return SampleTreeWith(seed.Random(), size, count, g)
}

func SampleWith[A any](s seed.Seed, size ranges.Size, count int, g Gen[A]) []A {
	trees := SampleTreeWith(s, size, count, g)
	values := make([]A, len(trees))
	for i, t := range trees {
		values[i] = t.Value()
	}
	return values
}

// Sample count values from g using a random seed
func Sample[A any](size ranges.Size, count int, g Gen[A]) []A {
	return SampleWith(seed.Random(), size, count, g)
}

// Sample a single tree at SampleSize using a random seed
func GenerateTree[A any](g Gen[A]) tree.Tree[A] {
	return Run(seed.Random(), SampleSize, g)
}

// Sample a single value at SampleSize using a random seed
func Generate[A any](g Gen[A]) A {
	return GenerateTree(g).Value()
}

// Write SampleCount values and their immediate shrinks to w
func PrintSample[A any](w io.Writer, g Gen[A]) error {
	return PrintSampleWith(w, seed.Random(), g)
}

func PrintSampleWith[A any](w io.Writer, s seed.Seed, g Gen[A]) error {
	return WriteSample(w, s, SampleSize, SampleCount, g)
}

// Write count values sampled at size and their immediate shrinks to w
func WriteSample[A any](w io.Writer, s seed.Seed, size ranges.Size, count int, g Gen[A]) error {
	for _, t := range SampleTreeWith(s, size, count, g) {
		if _, err := fmt.Fprintf(w, "=== Outcome ===\n%v\n=== Shrinks ===\n", t.Value()); err != nil {
			return err
		}
		var err error
		t.Children().Each(func(child tree.Tree[A]) bool {
			_, err = fmt.Fprintf(w, "%v\n", child.Value())
			return err == nil
		})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "."); err != nil {
			return err
		}
	}
	return nil
}
