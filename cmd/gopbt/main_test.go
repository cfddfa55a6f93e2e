package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerators(t *testing.T) {
	out, err := execute("generators")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(generators))
	assert.True(t, strings.HasPrefix(lines[0], "alpha"))
}

func TestSample(t *testing.T) {
	out, err := execute("sample", "int", "--seed", "1", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "=== Outcome ==="))

	again, err := execute("sample", "int", "--seed", "1", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestSampleNewick(t *testing.T) {
	out, err := execute("sample", "ints", "--seed", "2", "-n", "4", "--newick", "--depth", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, ";"), line)
	}
}

func TestSampleUnknown(t *testing.T) {
	_, err := execute("sample", "nope")
	assert.ErrorContains(t, err, "unknown generator")
	_, err = execute("sample", "int", "--seed", "x:y")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, err := execute("check", "reverse", "--tests", "20")
	require.NoError(t, err)
	assert.Equal(t, "+++ OK, passed 20 tests.\n", out)

	out, err = execute("check", "lt10", "--seed", "5")
	assert.ErrorIs(t, err, errNotOK)
	assert.Contains(t, out, "*** Failed! Falsifiable")
	assert.Contains(t, out, "\n10\n")

	out, err = execute("check", "discard")
	assert.ErrorIs(t, err, errNotOK)
	assert.Equal(t, "*** Gave up after 100 discards, passed 0 tests.\n", out)
}

func TestCheckTestsFromEnvironment(t *testing.T) {
	t.Setenv("GOPBT_TESTS", "7")
	out, err := execute("check", "reverse")
	require.NoError(t, err)
	assert.Equal(t, "+++ OK, passed 7 tests.\n", out)

	out, err = execute("check", "reverse", "--tests", "20")
	require.NoError(t, err)
	assert.Equal(t, "+++ OK, passed 20 tests.\n", out)
}

func TestCheckSortedShrinks(t *testing.T) {
	out, err := execute("check", "sorted", "--seed", "3")
	require.ErrorIs(t, err, errNotOK)
	// The smallest unsorted slice has two elements
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, `^\[-?\d+ -?\d+\]$`, lines[1])
}
