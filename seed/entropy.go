package seed

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// Entropy provides the initial randomness used to create a Seed.
//
// Consulted only when a fresh seed is requested. Supply Fixed to replay a run deterministically.
type Entropy interface {
	Uint64() uint64
}

// Fixed entropy always returns the same value.
type Fixed uint64

func (f Fixed) Uint64() uint64 {
	return uint64(f)
}

// EntropyFunc adapts a function to the Entropy interface.
type EntropyFunc func() uint64

func (f EntropyFunc) Uint64() uint64 {
	return f()
}

type systemEntropy struct{}

// Reads from the operating system's random source.
// Falls back to the wall clock if the source is unavailable.
func (systemEntropy) Uint64() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Entropy backed by the operating system's random source.
var SystemEntropy Entropy = systemEntropy{}

// Create a seed from the provided entropy source.
func FromEntropy(e Entropy) Seed {
	return From(e.Uint64())
}

// Create a seed from the operating system's random source.
func Random() Seed {
	return FromEntropy(SystemEntropy)
}
