package gopbt_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopbt"
	"gopbt/gen"
	"gopbt/property"
	"gopbt/ranges"
	"gopbt/seed"
)

// Records failures instead of failing the test
type recordingT struct {
	testing.TB
	failed bool
	fatal  bool
	log    strings.Builder
}

func (r *recordingT) Helper() {}

func (r *recordingT) Errorf(format string, args ...any) {
	r.failed = true
	fmt.Fprintf(&r.log, format, args...)
}

func (r *recordingT) Fatalf(format string, args ...any) {
	r.fatal = true
	r.Errorf(format, args...)
}

func lessThan10() property.Property[property.Unit] {
	return property.ForAllBool(gen.Integral(ranges.Constant(0, 100)), func(x int) bool { return x < 10 })
}

func TestCheckPasses(t *testing.T) {
	p := property.ForAllTick(gen.Vec(ranges.Linear(0, 10), gen.Alpha()))
	report := gopbt.Check(t, p, gopbt.Tests(30))
	assert.Equal(t, 30, report.Tests)
}

func TestCheckFails(t *testing.T) {
	rec := &recordingT{TB: t}
	s := seed.From(123)
	report := gopbt.Check(rec, lessThan10(), gopbt.WithSeed(s))
	assert.True(t, rec.failed)
	assert.False(t, rec.fatal)
	assert.Equal(t, property.StatusFailed, report.Status.Kind)
	assert.Contains(t, rec.log.String(), "*** Failed! Falsifiable")
	assert.Contains(t, rec.log.String(), "GOPBT_SEED="+s.String())
}

func TestCheckInvalidEnvironment(t *testing.T) {
	t.Setenv("GOPBT_TESTS", "lots")
	rec := &recordingT{TB: t}
	gopbt.Check(rec, lessThan10())
	assert.True(t, rec.fatal)
}

func TestSeedReplaysRun(t *testing.T) {
	p := property.ForAllBool(gen.Vec(ranges.Linear(0, 20), gen.Integral(ranges.Linear(0, 50))), func(xs []int) bool {
		return len(xs) < 5
	})
	a := gopbt.NewRunner(gopbt.WithSeed(seed.From(9))).Run(p)
	b := gopbt.NewRunner(gopbt.WithEntropy(seed.Fixed(9))).Run(p)
	assert.Equal(t, a.String(), b.String())
}

func TestEnvironmentIsOverridden(t *testing.T) {
	t.Setenv("GOPBT_TESTS", "20")
	r, err := gopbt.PrepareRunner()
	require.NoError(t, err)
	assert.Equal(t, 20, r.Run(property.ForAllTick(gen.Bool())).Tests)

	r, err = gopbt.PrepareRunner(gopbt.Tests(5))
	require.NoError(t, err)
	assert.Equal(t, 5, r.Run(property.ForAllTick(gen.Bool())).Tests)
}

func TestOptions(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	r := gopbt.NewRunner(
		gopbt.WithSeed(seed.From(1)),
		gopbt.WithLogger(log),
		gopbt.DiscardLimit(3),
		gopbt.StartSize(50),
		gopbt.ShrinkLimit(0),
		gopbt.LogLevel(logrus.ErrorLevel),
	)
	discard := property.ForAll(gen.Bool(), func(bool) property.Property[property.Unit] {
		return property.Discard[property.Unit]()
	})
	report := r.Run(discard)
	assert.Equal(t, 3, report.Discards)
	assert.Equal(t, property.StatusGaveUp, report.Status.Kind)
	// The provided logger is used regardless of the level option
	assert.NotEmpty(t, hook.AllEntries())
}
