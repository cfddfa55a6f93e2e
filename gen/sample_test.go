package gen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopbt/ranges"
	"gopbt/seed"
)

func TestPrintSample(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintSampleWith(&out, seed.From(0), Item(1)))
	block := "=== Outcome ===\n1\n=== Shrinks ===\n.\n"
	assert.Equal(t, strings.Repeat(block, SampleCount), out.String())
}

func TestPrintSampleShrinks(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintSample(&out, Integral(ranges.Singleton(12))))
	assert.Equal(t, SampleCount, strings.Count(out.String(), "=== Outcome ===\n12\n"))
}

func TestSampleWith(t *testing.T) {
	g := Integral(ranges.Linear(0, 1_000_000))
	a := SampleWith(seed.From(99), 50, 10, g)
	assert.Len(t, a, 10)
	assert.Equal(t, a, SampleWith(seed.From(99), 50, 10, g))
	assert.Len(t, Sample(50, 3, g), 3)
	assert.Len(t, SampleTree(50, 3, g), 3)
}

func TestGenerate(t *testing.T) {
	size := Sized(func(n ranges.Size) Gen[ranges.Size] { return Constant(n) })
	assert.Equal(t, SampleSize, Generate(size))
	assert.Equal(t, SampleSize, GenerateTree(size).Value())
}
