package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"gopbt/lazy"
)

func intEq(a, b int) bool { return a == b }

func values[T any](forest lazy.Seq[Tree[T]]) []T {
	return lazy.Map(forest, func(t Tree[T]) T { return t.Value() }).ToSlice()
}

// Shrinks a natural number towards zero by halving
func halving(n int) lazy.Seq[int] {
	if n <= 0 {
		return lazy.Empty[int]()
	}
	return lazy.Single(n / 2)
}

func identity[T any](x T) T { return x }

func TestSingleton(t *testing.T) {
	tree := Singleton(42)
	tree.Value()
	if tree.Value() != 42 || !tree.IsLeafNode() {
		t.Errorf("Unexpected singleton. Got %v", tree.Value())
	}
}

func TestUnfold(t *testing.T) {
	tree := Unfold(identity[int], halving, 8)
	expected := "8\n-4\n--2\n---1\n----0\n"
	if diff := cmp.Diff(expected, Render(tree, 10)); diff != "" {
		t.Errorf("Unexpected tree (-want +got):\n%s", diff)
	}
	if Len(tree, 10) != 5 || Len(tree, 1) != 2 {
		t.Errorf("Unexpected length. Got %v", Len(tree, 10))
	}
}

func TestValueIsMemoized(t *testing.T) {
	calls := 0
	tree := Unfold(func(n int) int {
		calls++
		return n
	}, halving, 4)
	tree.Value()
	tree.Value()
	if calls != 1 {
		t.Errorf("Expected the value to be computed once. Got %v calls", calls)
	}
	child, _, _ := tree.Children().Uncons()
	child.Value()
	again, _, _ := tree.Children().Uncons()
	again.Value()
	if calls != 2 {
		t.Errorf("Expected the child to be computed once. Got %v calls", calls)
	}
}

func TestMap(t *testing.T) {
	tree := Map(Unfold(identity[int], halving, 4), func(n int) int { return n * 10 })
	if tree.Value() != 40 {
		t.Errorf("Unexpected value. Got %v", tree.Value())
	}
	if diff := cmp.Diff("40\n-20\n--10\n---0\n", Render(tree, 5)); diff != "" {
		t.Errorf("Unexpected tree (-want +got):\n%s", diff)
	}
}

func TestBindOrdersOuterShrinksFirst(t *testing.T) {
	outer := New(2, lazy.FromSlice([]Tree[int]{Singleton(1), Singleton(0)}))
	k := func(x int) Tree[int] {
		return New(x*10, lazy.Single(Singleton(x)))
	}
	tree := Bind(outer, k)
	if tree.Value() != 20 {
		t.Errorf("Unexpected value. Got %v", tree.Value())
	}
	if diff := cmp.Diff([]int{10, 0, 2}, values(tree.Children())); diff != "" {
		t.Errorf("Unexpected children (-want +got):\n%s", diff)
	}
	first, _, _ := tree.Children().Uncons()
	if diff := cmp.Diff([]int{1}, values(first.Children())); diff != "" {
		t.Errorf("Unexpected grandchildren (-want +got):\n%s", diff)
	}
}

func TestBindIsLazy(t *testing.T) {
	calls := 0
	tree := Bind(Singleton(1), func(x int) Tree[int] {
		calls++
		return Singleton(x + 1)
	})
	if calls != 0 {
		t.Errorf("Expected the continuation to be deferred")
	}
	tree.Value()
	tree.Children().ToSlice()
	if calls != 1 || tree.Value() != 2 {
		t.Errorf("Expected the continuation to run once. Got %v calls", calls)
	}
}

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	tree := Filter(Unfold(identity[int], func(n int) lazy.Seq[int] {
		return lazy.FromSlice([]int{n - 1, n - 2})
	}, 3), func(n int) bool { return n >= 0 && even(n) })
	if tree.Value() != 3 {
		t.Errorf("The root must never be filtered. Got %v", tree.Value())
	}
	if diff := cmp.Diff("3\n-2\n--0\n", Render(tree, 5)); diff != "" {
		t.Errorf("Unexpected tree (-want +got):\n%s", diff)
	}
}

func TestExpand(t *testing.T) {
	tree := Expand(New(4, lazy.Single(Singleton(3))), halving)
	if diff := cmp.Diff([]int{3, 2}, values(tree.Children())); diff != "" {
		t.Errorf("Unexpected children (-want +got):\n%s", diff)
	}
	if !DepthFirstSearch(tree, 5, func(n int) bool { return n == 0 }) {
		t.Errorf("Expected the expanded tree to reach 0")
	}
	if DepthFirstSearch(tree, 5, func(n int) bool { return n == 7 }) {
		t.Errorf("Did not expect to find 7")
	}
}

func TestEqual(t *testing.T) {
	a := Unfold(identity[int], halving, 8)
	b := Unfold(identity[int], halving, 8)
	c := Unfold(identity[int], halving, 9)
	if !Equal(a, b, intEq) || !EqualDepth(a, b, 10, intEq) {
		t.Errorf("Expected structurally equal trees to be equal")
	}
	if Equal(a, c, intEq) || EqualDepth(a, c, 10, intEq) {
		t.Errorf("Expected different trees to differ")
	}
	d := New(8, lazy.Single(New(4, lazy.Single(Singleton(3)))))
	if !Equal(a, d, intEq) {
		t.Errorf("Expected Equal to only compare the roots and their children")
	}
	if EqualDepth(a, d, 5, intEq) {
		t.Errorf("Expected EqualDepth to compare the grandchildren")
	}
}

func TestNewick(t *testing.T) {
	tree := New(2, lazy.FromSlice([]Tree[int]{Singleton(1), Singleton(0)}))
	if out := Newick(tree, 3); out != `("1","0")"2";` {
		t.Errorf("Unexpected newick representation. Got %v", out)
	}
	if out := Newick(tree, 0); out != `"2";` {
		t.Errorf("Unexpected truncated newick representation. Got %v", out)
	}
}
