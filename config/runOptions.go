package config

import (
	"github.com/sirupsen/logrus"

	"gopbt/ranges"
	"gopbt/seed"
)

// Configures how a property is run
type RunOption interface {
	RunOpt()
}

// Configures the number of trials that must pass

// Default value is 100
type TestsOption struct {
	Tests int
}

func (to TestsOption) RunOpt() {}

// Configures how many trials can be discarded before the runner gives up

// Default value is 100
type DiscardLimitOption struct {
	Limit int
}

func (dlo DiscardLimitOption) RunOpt() {}

// Configures the maximum number of shrinks performed on a counterexample

// A negative limit means no limit.
// Default value is no limit.
type ShrinkLimitOption struct {
	Limit int
}

func (slo ShrinkLimitOption) RunOpt() {}

// Configures the seed of the first trial

// Used to replay a run.
// Default value is a seed drawn from the entropy source.
type SeedOption struct {
	Seed seed.Seed
}

func (so SeedOption) RunOpt() {}

// Configures the entropy source the starting seed is drawn from

// Ignored if a seed is provided.
// Default value is the system entropy.
type EntropyOption struct {
	Entropy seed.Entropy
}

func (eo EntropyOption) RunOpt() {}

// Configures the size of the first trial

// Default value is 1
type SizeOption struct {
	Size ranges.Size
}

func (so SizeOption) RunOpt() {}

// Configures the logger used by the runner

// Default value is a logger that writes warnings to stderr.
type LoggerOption struct {
	Log logrus.FieldLogger
}

func (lo LoggerOption) RunOpt() {}

// Configures the level of the default logger

// Ignored if a logger is provided.
type LogLevelOption struct {
	Level logrus.Level
}

func (llo LogLevelOption) RunOpt() {}
