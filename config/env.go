package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"gopbt/ranges"
	"gopbt/seed"
)

// Prefix of the environment variables read by FromEnv
const EnvPrefix = "GOPBT"

const (
	EnvTests        = "tests"
	EnvDiscardLimit = "discard_limit"
	EnvShrinkLimit  = "shrink_limit"
	EnvSeed         = "seed"
	EnvSize         = "size"
	EnvLogLevel     = "log_level"
)

var ErrInvalidEnv = errors.New("config: invalid environment variable")

// Read run options from the environment.
//
// GOPBT_TESTS, GOPBT_DISCARD_LIMIT, GOPBT_SHRINK_LIMIT and GOPBT_SIZE are integers.
// GOPBT_SEED is either an integer or a seed in the value:gamma form printed by a failing run.
// GOPBT_LOG_LEVEL is a logrus level.
// Unset variables produce no options.
func FromEnv() ([]RunOption, error) {
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	for _, key := range []string{EnvTests, EnvDiscardLimit, EnvShrinkLimit, EnvSeed, EnvSize, EnvLogLevel} {
		// BindEnv only fails without a key
		_ = v.BindEnv(key)
	}
	return v
}

func fromViper(v *viper.Viper) ([]RunOption, error) {
	opts := []RunOption{}

	ints := []struct {
		key  string
		min  int
		wrap func(int) RunOption
	}{
		{EnvTests, 0, func(n int) RunOption { return TestsOption{Tests: n} }},
		{EnvDiscardLimit, 0, func(n int) RunOption { return DiscardLimitOption{Limit: n} }},
		{EnvShrinkLimit, -1, func(n int) RunOption { return ShrinkLimitOption{Limit: n} }},
		{EnvSize, 0, func(n int) RunOption { return SizeOption{Size: ranges.Size(n)} }},
	}
	for _, opt := range ints {
		if !v.IsSet(opt.key) {
			continue
		}
		n, err := cast.ToIntE(v.GetString(opt.key))
		if err != nil {
			return nil, fmt.Errorf("%w: %v: %v", ErrInvalidEnv, envName(opt.key), err)
		}
		if n < opt.min {
			return nil, fmt.Errorf("%w: %v must be at least %d. Got %d", ErrInvalidEnv, envName(opt.key), opt.min, n)
		}
		opts = append(opts, opt.wrap(n))
	}

	if v.IsSet(EnvSeed) {
		s, err := seed.Parse(v.GetString(EnvSeed))
		if err != nil {
			return nil, fmt.Errorf("%w: %v: %w", ErrInvalidEnv, envName(EnvSeed), err)
		}
		opts = append(opts, SeedOption{Seed: s})
	}

	if v.IsSet(EnvLogLevel) {
		level, err := logrus.ParseLevel(v.GetString(EnvLogLevel))
		if err != nil {
			return nil, fmt.Errorf("%w: %v: %v", ErrInvalidEnv, envName(EnvLogLevel), err)
		}
		opts = append(opts, LogLevelOption{Level: level})
	}
	return opts, nil
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}
