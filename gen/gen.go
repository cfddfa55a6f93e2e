// Package gen implements generators: random values paired with a lazily built tree of shrinks.
//
// A generator is sampled with a seed and a size. The root of the returned tree is the sampled value
// and the children of each node are progressively smaller values that are tried when a property fails.
package gen

import (
	"gopbt/lazy"
	"gopbt/random"
	"gopbt/ranges"
	"gopbt/seed"
	"gopbt/tree"
)

// Gen produces a shrink tree for a seed and a size
type Gen[A any] random.Random[tree.Tree[A]]

func FromRandom[A any](r random.Random[tree.Tree[A]]) Gen[A] {
	return Gen[A](r)
}

func ToRandom[A any](g Gen[A]) random.Random[tree.Tree[A]] {
	return random.Random[tree.Tree[A]](g)
}

// Sample g with the given seed. Sizes below 1 are raised to 1.
func Run[A any](s seed.Seed, size ranges.Size, g Gen[A]) tree.Tree[A] {
	return random.Run(s, size, ToRandom(g))
}

// Construct the generator when it is sampled.
// Needed for recursive generators.
func Delay[A any](f func() Gen[A]) Gen[A] {
	return FromRandom(random.Delay(func() random.Random[tree.Tree[A]] { return ToRandom(f()) }))
}

// Always generate x. The value does not shrink.
func Constant[A any](x A) Gen[A] {
	return FromRandom(random.Constant(tree.Singleton(x)))
}

func Pure[A any](x A) Gen[A] {
	return Constant(x)
}

// Create a generator from a random value and a function that proposes smaller values.
// The shrinks are shrunk recursively.
func Create[A any](shrink func(A) lazy.Seq[A], r random.Random[A]) Gen[A] {
	identity := func(x A) A { return x }
	return FromRandom(random.Map(r, func(x A) tree.Tree[A] {
		return tree.Unfold(identity, shrink, x)
	}))
}

// Apply f to the entire tree produced by g
func MapTree[A, B any](g Gen[A], f func(tree.Tree[A]) tree.Tree[B]) Gen[B] {
	return FromRandom(random.Map(ToRandom(g), f))
}

// Apply f to the value and to every shrink
func Map[A, B any](g Gen[A], f func(A) B) Gen[B] {
	return MapTree(g, func(t tree.Tree[A]) tree.Tree[B] { return tree.Map(t, f) })
}

// Sequence two generators.
//
// The seed is split. g is sampled with the first half and k with the second.
// The shrinks of g are tried before the shrinks of the generator returned by k.
func Bind[A, B any](g Gen[A], k func(A) Gen[B]) Gen[B] {
	return func(s seed.Seed, size ranges.Size) tree.Tree[B] {
		s1, s2 := seed.Split(s)
		t := Run(s1, size, g)
		return tree.Bind(t, func(x A) tree.Tree[B] {
			return Run(s2, size, k(x))
		})
	}
}

func Map2[A, B, C any](gx Gen[A], gy Gen[B], f func(A, B) C) Gen[C] {
	return Bind(gx, func(x A) Gen[C] {
		return Bind(gy, func(y B) Gen[C] {
			return Constant(f(x, y))
		})
	})
}

func Apply[A, B any](gf Gen[func(A) B], gx Gen[A]) Gen[B] {
	return Map2(gf, gx, func(f func(A) B, x A) B { return f(x) })
}

type Pair[A, B any] struct {
	First  A
	Second B
}

func Zip[A, B any](gx Gen[A], gy Gen[B]) Gen[Pair[A, B]] {
	return Map2(gx, gy, func(x A, y B) Pair[A, B] { return Pair[A, B]{x, y} })
}

// Two independent values from the same generator
func Tuple[A any](g Gen[A]) Gen[Pair[A, A]] {
	return Zip(g, g)
}

// Drop all shrinks
func NoShrink[A any](g Gen[A]) Gen[A] {
	return MapTree(g, func(t tree.Tree[A]) tree.Tree[A] {
		return tree.Delay(t.Value, lazy.Empty[tree.Tree[A]]())
	})
}

// Add the shrinks proposed by f to every node of the tree
func Shrink[A any](g Gen[A], f func(A) lazy.Seq[A]) Gen[A] {
	return MapTree(g, func(t tree.Tree[A]) tree.Tree[A] { return tree.Expand(t, f) })
}

// Construct the generator from the ambient size
func Sized[A any](f func(ranges.Size) Gen[A]) Gen[A] {
	return FromRandom(random.Sized(func(size ranges.Size) random.Random[tree.Tree[A]] {
		return ToRandom(f(size))
	}))
}

// Sample g with size instead of the ambient size
func Resize[A any](size ranges.Size, g Gen[A]) Gen[A] {
	return FromRandom(random.Resize(size, ToRandom(g)))
}

// Sample g with a size derived from the ambient size
func Scale[A any](g Gen[A], f func(ranges.Size) ranges.Size) Gen[A] {
	return Sized(func(size ranges.Size) Gen[A] { return Resize(f(size), g) })
}
