package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gopbt"
	"gopbt/gen"
	"gopbt/property"
	"gopbt/ranges"
)

type demo struct {
	description string
	property    property.Testable
}

func reversed[A any](xs []A) []A {
	ys := slices.Clone(xs)
	for i, j := 0, len(ys)-1; i < j; i, j = i+1, j-1 {
		ys[i], ys[j] = ys[j], ys[i]
	}
	return ys
}

var ints = gen.Vec(ranges.Linear(0, 50), gen.Integral(ranges.Linear(-100, 100)))

var demos = map[string]demo{
	"lt10": {
		"every integer in [0, 100] is below 10",
		property.ForAllBool(gen.Integral(ranges.Constant(0, 100)), func(x int) bool { return x < 10 }),
	},
	"reverse": {
		"reversing a slice twice returns the slice",
		property.ForAllBool(ints, func(xs []int) bool { return slices.Equal(reversed(reversed(xs)), xs) }),
	},
	"discard": {
		"a property that discards every trial",
		property.ForAll(ints, func([]int) property.Property[property.Unit] { return property.Discard[property.Unit]() }),
	},
	"sorted": {
		"every slice is sorted",
		property.ForAllBool(ints, func(xs []int) bool { return slices.IsSorted(xs) }),
	},
}

var errNotOK = errors.New("property did not pass")

func newCheckCommand(out io.Writer) *cobra.Command {
	var (
		seedText string
		tests    int
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "check DEMO",
		Short: "Run one of the demo properties and print the report",
		Long:  "Run one of the demo properties and print the report.\n\nDemos: " + strings.Join(demoNames(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := demos[args[0]]
			if !ok {
				return fmt.Errorf("unknown demo %q. Available: %s", args[0], strings.Join(demoNames(), ", "))
			}
			var opts []gopbt.RunOption
			if cmd.Flags().Changed("tests") {
				opts = append(opts, gopbt.Tests(tests))
			}
			if seedText != "" {
				s, err := parseSeed(seedText)
				if err != nil {
					return err
				}
				opts = append(opts, gopbt.WithSeed(s))
			}
			if verbose {
				opts = append(opts, gopbt.LogLevel(logrus.DebugLevel))
			}
			r, err := gopbt.PrepareRunner(opts...)
			if err != nil {
				return err
			}
			report := r.Run(d.property)
			fmt.Fprintln(out, report)
			if !report.OK() {
				return fmt.Errorf("%w. Replay with --seed %v", errNotOK, r.Seed())
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&seedText, "seed", "", "Seed as value:gamma or an integer (default random)")
	flags.IntVar(&tests, "tests", property.DefaultTests, "Number of trials that must pass")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log every trial and shrink")

	return cmd
}

func demoNames() []string {
	names := maps.Keys(demos)
	slices.Sort(names)
	return names
}
