package seed

import (
	"math"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Exposes a Seed as a rand.Source so that the standard uniform sampling algorithms can consume it.
// The seed is advanced every time a word is drawn.
type source struct {
	seed Seed
}

func (src *source) Uint64() uint64 {
	var v uint64
	v, src.seed = NextUint64(src.seed)
	return v
}

// Sample an integer uniformly from the closed interval between lo and hi.
//
// The bounds may be given in any order.
// Returns the sampled integer and the advanced seed.
func NextInteger[T constraints.Integer](lo, hi T, s Seed) (T, Seed) {
	if lo > hi {
		lo, hi = hi, lo
	}
	// The distance is computed modulo 2^64 which is exact for every integer type up to 64 bits
	span := uint64(hi) - uint64(lo)
	src := &source{seed: s}
	var offset uint64
	if span == math.MaxUint64 {
		offset = src.Uint64()
	} else {
		offset = rand.New(src).Uint64N(span + 1)
	}
	return lo + T(offset), src.seed
}

// Sample a floating point number uniformly from the closed interval between lo and hi.
func NextFractional[T constraints.Float](lo, hi T, s Seed) (T, Seed) {
	if lo > hi {
		lo, hi = hi, lo
	}
	src := &source{seed: s}
	u := rand.New(src).Float64()
	// Interpolate instead of computing hi-lo, which overflows for the widest ranges
	x := T(float64(lo)*(1-u) + float64(hi)*u)
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	return x, src.seed
}

func NextDouble(lo, hi float64, s Seed) (float64, Seed) {
	return NextFractional(lo, hi, s)
}

func NextFloat(lo, hi float32, s Seed) (float32, Seed) {
	return NextFractional(lo, hi, s)
}
