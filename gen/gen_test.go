package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
	"pgregory.net/rapid"

	"gopbt/lazy"
	"gopbt/random"
	"gopbt/ranges"
	"gopbt/seed"
	"gopbt/shrink"
	"gopbt/tree"
)

func intEq(a, b int) bool { return a == b }

func values[A any](forest lazy.Seq[tree.Tree[A]]) []A {
	return lazy.Map(forest, func(t tree.Tree[A]) A { return t.Value() }).ToSlice()
}

// Runs f and returns the error it panicked with
func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func TestCreate(t *testing.T) {
	three := func(seed.Seed, ranges.Size) int { return 3 }
	g := Create(func(x int) lazy.Seq[int] { return shrink.Towards(3, x) }, three)
	got := Run(seed.From(0), 1, g)
	assert.True(t, tree.Equal(tree.Singleton(3), got, intEq))
}

func TestIntegralShrinksTowardsOrigin(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := seed.From(rapid.Uint64().Draw(t, "seed"))
		size := ranges.Size(rapid.IntRange(1, 99).Draw(t, "size"))
		tr := Run(s, size, Integral(ranges.ConstantFrom(10, 0, 100)))
		if tr.Value() < 0 || tr.Value() > 100 {
			t.Fatalf("%v is outside of the range", tr.Value())
		}
		if tr.Value() == 10 {
			if !tr.IsLeafNode() {
				t.Fatalf("The origin should not shrink")
			}
			return
		}
		first, _, _ := tr.Children().Uncons()
		if first.Value() != 10 {
			t.Fatalf("Expected the origin as the first shrink of %v. Got %v", tr.Value(), first.Value())
		}
		outside := func(x int) bool { return x < 0 || x > 100 }
		if tree.DepthFirstSearch(tr, 3, outside) {
			t.Fatalf("Found a shrink outside of the range")
		}
	})
}

func TestDeterminism(t *testing.T) {
	g := Vec(ranges.Linear(0, 5), Integral(ranges.Linear(-50, 50)))
	eq := func(a, b []int) bool { return slices.Equal(a, b) }
	rapid.Check(t, func(t *rapid.T) {
		s := seed.From(rapid.Uint64().Draw(t, "seed"))
		size := ranges.Size(rapid.IntRange(0, 99).Draw(t, "size"))
		a, b := Run(s, size, g), Run(s, size, g)
		if !tree.EqualDepth(a, b, 2, eq) {
			t.Fatalf("Sampling twice with %v produced different trees: %v and %v", s, a.Value(), b.Value())
		}
	})
}

func TestMapConstant(t *testing.T) {
	got := Run(seed.From(1), 10, Map(Constant(2), func(x int) int { return x + 1 }))
	assert.Equal(t, 3, got.Value())
	assert.True(t, got.IsLeafNode())
}

func TestBindConstant(t *testing.T) {
	k := func(x int) Gen[int] { return Integral(ranges.Constant(x, 1000)) }
	rapid.Check(t, func(t *rapid.T) {
		s := seed.From(rapid.Uint64().Draw(t, "seed"))
		_, s2 := seed.Split(s)
		got := Run(s, 10, Bind(Constant(4), k))
		expected := Run(s2, 10, k(4))
		if !tree.EqualDepth(got, expected, 2, intEq) {
			t.Fatalf("Bind(Constant(4), k) is not k(4). Got %v. Expected: %v", got.Value(), expected.Value())
		}
	})
}

func TestBindUsesFirstHalfOfSplit(t *testing.T) {
	left := Integral(ranges.LinearBounded[int64]())
	rapid.Check(t, func(t *rapid.T) {
		s := seed.From(rapid.Uint64().Draw(t, "seed"))
		var inner int64
		Run(s, 50, Bind(left, func(x int64) Gen[int64] {
			inner = x
			return Constant(x)
		})).Value()
		s1, _ := seed.Split(s)
		if expected := Run(s1, 50, left).Value(); expected != inner {
			t.Fatalf("Got %v. Expected: %v", inner, expected)
		}
	})
}

func TestZipShrinksFirstComponentFirst(t *testing.T) {
	g := Zip(Integral(ranges.ConstantFrom(0, 0, 10)), Integral(ranges.ConstantFrom(0, 0, 10)))
	for i := uint64(0); i < 100; i++ {
		tr := Run(seed.From(i), 10, g)
		root := tr.Value()
		if root.First == 0 {
			continue
		}
		first, _, _ := tr.Children().Uncons()
		assert.Equal(t, Pair[int, int]{0, root.Second}, first.Value())
	}
}

func TestMap2AndApply(t *testing.T) {
	s := seed.From(7)
	sum := Map2(Constant(1), Constant(2), func(x, y int) int { return x + y })
	assert.Equal(t, 3, Run(s, 1, sum).Value())
	double := Apply(Constant(func(x int) int { return 2 * x }), Constant(21))
	assert.Equal(t, 42, Run(s, 1, double).Value())
	assert.Equal(t, Pair[int, int]{5, 5}, Run(s, 1, Tuple(Constant(5))).Value())
}

func TestNoShrink(t *testing.T) {
	g := NoShrink(Integral(ranges.Constant(1, 100)))
	for _, tr := range SampleTreeWith(seed.From(3), 50, 20, g) {
		assert.True(t, tr.IsLeafNode())
	}
}

func TestShrink(t *testing.T) {
	halving := func(n int) lazy.Seq[int] {
		if n == 0 {
			return lazy.Empty[int]()
		}
		return lazy.Single(n / 2)
	}
	tr := Run(seed.From(0), 1, Shrink(Constant(8), halving))
	assert.Equal(t, "8\n-4\n--2\n---1\n----0\n", tree.Render(tr, 10))
}

func TestSizeControl(t *testing.T) {
	size := Sized(func(n ranges.Size) Gen[ranges.Size] { return Constant(n) })
	s := seed.From(0)
	assert.Equal(t, ranges.Size(10), Run(s, 10, size).Value())
	assert.Equal(t, ranges.Size(1), Run(s, -3, size).Value())
	assert.Equal(t, ranges.Size(7), Run(s, 10, Resize(7, size)).Value())
	twice := Scale(size, func(n ranges.Size) ranges.Size { return 2 * n })
	assert.Equal(t, ranges.Size(20), Run(s, 10, twice).Value())
}

func TestDelay(t *testing.T) {
	built := false
	g := Delay(func() Gen[int] {
		built = true
		return Constant(1)
	})
	require.False(t, built)
	assert.Equal(t, 1, Run(seed.From(0), 1, g).Value())
	assert.True(t, built)
}

func TestFromRandom(t *testing.T) {
	r := random.Constant(tree.Singleton("x"))
	g := FromRandom(r)
	assert.Equal(t, "x", Run(seed.From(0), 1, g).Value())
	assert.Equal(t, "x", random.Run(seed.From(0), 1, ToRandom(g)).Value())
}
