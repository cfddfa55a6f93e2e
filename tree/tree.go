package tree

import (
	"fmt"
	"strings"

	"gopbt/lazy"
)

// A rose tree holding a lazily computed value and a lazy forest of children.
//
// In a generated tree the children of a node are the shrinks of its value.
// Node values are memoized, and children are only built when they are inspected,
// so a tree with a combinatorially large forest can be traversed one path at a time.
type Tree[T any] struct {
	thunk    *lazy.Lazy[T]
	children lazy.Seq[Tree[T]]
}

// A tree without children
func Singleton[T any](value T) Tree[T] {
	return Tree[T]{thunk: lazy.Of(value)}
}

// A tree with the provided value and children.
func New[T any](value T, children lazy.Seq[Tree[T]]) Tree[T] {
	return Tree[T]{thunk: lazy.Of(value), children: children}
}

// A tree whose value is computed by f when it is first forced.
func Delay[T any](f func() T, children lazy.Seq[Tree[T]]) Tree[T] {
	return Tree[T]{thunk: lazy.New(f), children: children}
}

// Force the value of the node
func (t Tree[T]) Value() T {
	return t.thunk.Value()
}

func (t Tree[T]) Children() lazy.Seq[Tree[T]] {
	return t.children
}

func (t Tree[T]) IsLeafNode() bool {
	return t.children.IsEmpty()
}

// Apply f to the value of every node in the tree.
func Map[T, U any](t Tree[T], f func(T) U) Tree[U] {
	return Tree[U]{
		thunk: lazy.New(func() U { return f(t.Value()) }),
		children: lazy.Map(t.children, func(child Tree[T]) Tree[U] {
			return Map(child, f)
		}),
	}
}

// Substitute the value of t through k.
//
// The shrinks of t, each bound through k, come before the shrinks of the tree returned by k.
// This makes the outer structure shrink before the substituted value.
func Bind[T, U any](t Tree[T], k func(T) Tree[U]) Tree[U] {
	inner := lazy.New(func() Tree[U] { return k(t.Value()) })
	return Tree[U]{
		thunk: lazy.New(func() U { return inner.Value().Value() }),
		children: lazy.Defer(func() lazy.Seq[Tree[U]] {
			outer := lazy.Map(t.children, func(child Tree[T]) Tree[U] {
				return Bind(child, k)
			})
			return outer.Concat(inner.Value().children)
		}),
	}
}

// Remove every subtree whose value does not satisfy p.
//
// The value of the root is never filtered.
func Filter[T any](t Tree[T], p func(T) bool) Tree[T] {
	return Tree[T]{
		thunk:    t.thunk,
		children: filterForest(t.children, p),
	}
}

func filterForest[T any](forest lazy.Seq[Tree[T]], p func(T) bool) lazy.Seq[Tree[T]] {
	kept := forest.Filter(func(child Tree[T]) bool { return p(child.Value()) })
	return lazy.Map(kept, func(child Tree[T]) Tree[T] { return Filter(child, p) })
}

// Retrofit a one step shrink function onto the tree.
//
// Every node gets the forest unfolded from f of its own value appended to its children.
func Expand[T any](t Tree[T], f func(T) lazy.Seq[T]) Tree[T] {
	return Tree[T]{
		thunk: t.thunk,
		children: lazy.Defer(func() lazy.Seq[Tree[T]] {
			expanded := lazy.Map(t.children, func(child Tree[T]) Tree[T] { return Expand(child, f) })
			return expanded.Concat(unfoldForest(func(x T) T { return x }, f, t.Value()))
		}),
	}
}

// Build a tree from a seed.
//
// The value of the root is value(seed) and its children are unfolded from shrink(seed).
func Unfold[S, T any](value func(S) T, shrink func(S) lazy.Seq[S], seed S) Tree[T] {
	return Tree[T]{
		thunk:    lazy.New(func() T { return value(seed) }),
		children: unfoldForest(value, shrink, seed),
	}
}

func unfoldForest[S, T any](value func(S) T, shrink func(S) lazy.Seq[S], seed S) lazy.Seq[Tree[T]] {
	return lazy.Defer(func() lazy.Seq[Tree[T]] {
		return lazy.Map(shrink(seed), func(s S) Tree[T] { return Unfold(value, shrink, s) })
	})
}

// Returns true if the roots are equal and the children of the roots are pairwise equal.
func Equal[T any](a, b Tree[T], eq func(T, T) bool) bool {
	if !eq(a.Value(), b.Value()) {
		return false
	}
	as, bs := a.children.ToSlice(), b.children.ToSlice()
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !eq(as[i].Value(), bs[i].Value()) {
			return false
		}
	}
	return true
}

// Structural equality of the first depth levels of the trees.
func EqualDepth[T any](a, b Tree[T], depth int, eq func(T, T) bool) bool {
	if !eq(a.Value(), b.Value()) {
		return false
	}
	if depth <= 0 {
		return true
	}
	as, bs := a.children, b.children
	for {
		x, xs, okA := as.Uncons()
		y, ys, okB := bs.Uncons()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if !EqualDepth(x, y, depth-1, eq) {
			return false
		}
		as, bs = xs, ys
	}
}

// Returns the number of nodes in the first depth levels of the tree
func Len[T any](t Tree[T], depth int) int {
	len := 1
	if depth <= 0 {
		return len
	}
	t.children.Each(func(child Tree[T]) bool {
		len += Len(child, depth-1)
		return true
	})
	return len
}

// Returns true if the search function is true for some node in the first depth levels.
// Performs a DFS to find the node
func DepthFirstSearch[T any](t Tree[T], depth int, search func(T) bool) bool {
	if search(t.Value()) {
		return true
	}
	if depth <= 0 {
		return false
	}
	_, found := t.children.Find(func(child Tree[T]) bool {
		return DepthFirstSearch(child, depth-1, search)
	})
	return found
}

// String representation of the first depth levels of the tree.
// One node per line, indented with one dash per level.
func Render[T any](t Tree[T], depth int) string {
	out := strings.Builder{}
	render(&out, t, 0, depth)
	return out.String()
}

func render[T any](out *strings.Builder, t Tree[T], level, depth int) {
	for i := 0; i < level; i++ {
		out.WriteString("-")
	}
	out.WriteString(fmt.Sprintf("%v\n", t.Value()))
	if level >= depth {
		return
	}
	t.children.Each(func(child Tree[T]) bool {
		render(out, child, level+1, depth)
		return true
	})
}

// Newick representation of the first depth levels of the tree
func Newick[T any](t Tree[T], depth int) string {
	return newick(t, depth) + ";"
}

func newick[T any](t Tree[T], depth int) string {
	out := strings.Builder{}
	if depth > 0 && !t.IsLeafNode() {
		out.WriteString("(")
		i := 0
		t.children.Each(func(child Tree[T]) bool {
			if i > 0 {
				out.WriteString(",")
			}
			out.WriteString(newick(child, depth-1))
			i++
			return true
		})
		out.WriteString(")")
	}
	out.WriteString(fmt.Sprintf("\"%v\"", t.Value()))
	return out.String()
}
