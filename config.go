package gopbt

import (
	"github.com/sirupsen/logrus"

	"gopbt/config"
	"gopbt/property"
	"gopbt/ranges"
	"gopbt/seed"
)

type RunOption = config.RunOption

// Prepare a runner with initial configuration.
//
// Options are read from the environment first (see config.FromEnv),
// so options passed explicitly take precedence.
// Default values will be used if no value is provided.
func PrepareRunner(opts ...RunOption) (*property.Runner, error) {
	env, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return NewRunner(append(env, opts...)...), nil
}

// Create a runner from the options only, ignoring the environment
func NewRunner(opts ...RunOption) *property.Runner {
	var (
		// Number of trials that must pass
		tests = property.DefaultTests

		// Number of discarded trials before giving up
		discardLimit = property.DefaultDiscardLimit

		// Maximum number of shrinks of a counterexample
		shrinkLimit = property.NoShrinkLimit

		// Size of the first trial
		size ranges.Size = 1

		start   *seed.Seed
		entropy seed.Entropy = seed.SystemEntropy

		log   logrus.FieldLogger
		level = logrus.WarnLevel
	)

	for _, opt := range opts {
		switch t := opt.(type) {
		case config.TestsOption:
			tests = t.Tests
		case config.DiscardLimitOption:
			discardLimit = t.Limit
		case config.ShrinkLimitOption:
			shrinkLimit = t.Limit
		case config.SizeOption:
			size = t.Size
		case config.SeedOption:
			s := t.Seed
			start = &s
		case config.EntropyOption:
			entropy = t.Entropy
		case config.LoggerOption:
			log = t.Log
		case config.LogLevelOption:
			level = t.Level
		}
	}
	if start == nil {
		s := seed.FromEntropy(entropy)
		start = &s
	}
	if log == nil {
		l := property.DefaultLogger()
		l.SetLevel(level)
		log = l
	}
	return property.NewRunner(tests, discardLimit, shrinkLimit, *start, size, log)
}

// Configure the number of trials that must pass
//
// Default value is 100
func Tests(n int) RunOption {
	return config.TestsOption{Tests: n}
}

// Configure the number of discarded trials before the runner gives up
//
// Default value is 100
func DiscardLimit(n int) RunOption {
	return config.DiscardLimitOption{Limit: n}
}

// Configure the maximum number of shrinks of a counterexample.
//
// Default value is no limit. ShrinkLimit(0) reports the first counterexample as found.
func ShrinkLimit(n int) RunOption {
	return config.ShrinkLimitOption{Limit: n}
}

// Start from the provided seed.
//
// Used to replay a failing run. The seed of a run is included in the log of a failure.
func WithSeed(s seed.Seed) RunOption {
	return config.SeedOption{Seed: s}
}

// Draw the starting seed from the provided entropy source
func WithEntropy(e seed.Entropy) RunOption {
	return config.EntropyOption{Entropy: e}
}

// Configure the size of the first trial
//
// Default value is 1
func StartSize(size ranges.Size) RunOption {
	return config.SizeOption{Size: size}
}

// Use the provided logger
func WithLogger(log logrus.FieldLogger) RunOption {
	return config.LoggerOption{Log: log}
}

// Configure the level of the default logger
//
// Default value is warn
func LogLevel(level logrus.Level) RunOption {
	return config.LogLevelOption{Level: level}
}
