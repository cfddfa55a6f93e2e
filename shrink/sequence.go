package shrink

import (
	"gopbt/lazy"
	"gopbt/tree"
)

// Combine a slice of trees into a tree of slices.
//
// The slice shrinks both by removing elements and by shrinking the individual elements
// using their own shrink trees. The combined forest is built on demand.
func SequenceList[A any](trees []tree.Tree[A]) tree.Tree[[]A] {
	return tree.Delay(
		func() []A { return outcomes(trees) },
		lazy.Defer(func() lazy.Seq[tree.Tree[[]A]] {
			return dropSome(trees).Concat(shrinkOne(trees, SequenceList[A]))
		}),
	)
}

// Combine a slice of trees into a tree of slices of a fixed length.
//
// Only the individual elements shrink.
func SequenceElems[A any](trees []tree.Tree[A]) tree.Tree[[]A] {
	return tree.Delay(
		func() []A { return outcomes(trees) },
		lazy.Defer(func() lazy.Seq[tree.Tree[[]A]] {
			return shrinkOne(trees, SequenceElems[A])
		}),
	)
}

func outcomes[A any](trees []tree.Tree[A]) []A {
	out := make([]A, len(trees))
	for i, t := range trees {
		out[i] = t.Value()
	}
	return out
}

func dropSome[A any](trees []tree.Tree[A]) lazy.Seq[tree.Tree[[]A]] {
	return lazy.Map(List(trees), SequenceList[A])
}

func shrinkOne[A any](trees []tree.Tree[A], combine func([]tree.Tree[A]) tree.Tree[[]A]) lazy.Seq[tree.Tree[[]A]] {
	children := func(t tree.Tree[A]) lazy.Seq[tree.Tree[A]] { return t.Children() }
	return lazy.Map(Elems(children, trees), combine)
}
