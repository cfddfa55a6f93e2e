// Package seed implements a splittable pseudo-random number generator.
//
// The generator is SplitMix64. A Seed is an immutable value: every operation
// returns the advanced Seed instead of mutating the receiver, so a Seed can be
// threaded through sampling functions and replayed.
package seed

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// GoldenGamma is the odd increment used to derive the gamma of a fresh Seed.
const GoldenGamma uint64 = 0x9e3779b97f4a7c15

var ErrInvalidSeed = errors.New("seed: invalid seed")

// A Seed is the state of a SplitMix64 generator.
//
// The gamma is always odd, which gives the additive recurrence on value a full period.
type Seed struct {
	value uint64
	gamma uint64
}

// Create a Seed from an integer.
func From(x uint64) Seed {
	return Seed{
		value: mix64(x),
		gamma: mixGamma(x + GoldenGamma),
	}
}

func (s Seed) Value() uint64 {
	return s.value
}

func (s Seed) Gamma() uint64 {
	return s.gamma
}

// Advance the seed once.
//
// Returns the raw new value and the advanced seed.
func Next(s Seed) (uint64, Seed) {
	v := s.value + s.gamma
	return v, Seed{value: v, gamma: s.gamma}
}

// Split the seed into two seeds whose streams are independent of each other and of the parent.
func Split(s Seed) (Seed, Seed) {
	v0, s1 := Next(s)
	g0, s2 := Next(s1)
	return s2, Seed{
		value: mix64(v0),
		gamma: mixGamma(g0),
	}
}

// Returns a mixed 64 bit word and the advanced seed.
func NextUint64(s Seed) (uint64, Seed) {
	v, s1 := Next(s)
	return mix64(v), s1
}

// Returns a mixed 32 bit word and the advanced seed.
func NextUint32(s Seed) (uint32, Seed) {
	v, s1 := NextUint64(s)
	return uint32(v), s1
}

// String representation of the seed. It can be read back with Parse.
func (s Seed) String() string {
	return fmt.Sprintf("%016x:%016x", s.value, s.gamma)
}

// Parse a seed.
//
// Accepts either the "value:gamma" hexadecimal form produced by String,
// which reproduces the seed exactly, or a decimal integer that is passed to From.
func Parse(text string) (Seed, error) {
	text = strings.TrimSpace(text)
	if value, gamma, ok := strings.Cut(text, ":"); ok {
		v, err := strconv.ParseUint(value, 16, 64)
		if err != nil {
			return Seed{}, fmt.Errorf("%w: %q: %v", ErrInvalidSeed, text, err)
		}
		g, err := strconv.ParseUint(gamma, 16, 64)
		if err != nil {
			return Seed{}, fmt.Errorf("%w: %q: %v", ErrInvalidSeed, text, err)
		}
		if g&1 == 0 {
			return Seed{}, fmt.Errorf("%w: %q: gamma must be odd", ErrInvalidSeed, text)
		}
		return Seed{value: v, gamma: g}, nil
	}
	x, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("%w: %q: %v", ErrInvalidSeed, text, err)
	}
	return From(x), nil
}

func mix64(x uint64) uint64 {
	y := (x ^ (x >> 33)) * 0xff51afd7ed558ccd
	z := (y ^ (y >> 33)) * 0xc4ceb9fe1a85ec53
	return z ^ (z >> 33)
}

func mix64Variant13(x uint64) uint64 {
	y := (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	z := (y ^ (y >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Gammas with too few bit transitions produce poor streams
func mixGamma(x uint64) uint64 {
	y := mix64Variant13(x) | 1
	if bits.OnesCount64(y^(y>>1)) < 24 {
		return y ^ 0xaaaaaaaaaaaaaaaa
	}
	return y
}
