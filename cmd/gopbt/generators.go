package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gopbt/gen"
	"gopbt/ranges"
	"gopbt/seed"
	"gopbt/tree"
)

type sampleOptions struct {
	seed   seed.Seed
	size   ranges.Size
	count  int
	newick bool
	depth  int
}

type generator struct {
	description string
	write       func(w io.Writer, opts sampleOptions) error
}

func register[A any](description string, g gen.Gen[A]) generator {
	return generator{
		description: description,
		write: func(w io.Writer, opts sampleOptions) error {
			if !opts.newick {
				return gen.WriteSample(w, opts.seed, opts.size, opts.count, g)
			}
			for _, t := range gen.SampleTreeWith(opts.seed, opts.size, opts.count, g) {
				if _, err := fmt.Fprintln(w, tree.Newick(t, opts.depth)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

var generators = map[string]generator{
	"int":      register("integers in [-1000, 1000] growing linearly with the size", gen.Integral(ranges.Linear(-1000, 1000))),
	"int8":     register("any int8", gen.Integral(ranges.LinearBounded[int8]())),
	"uint64":   register("any uint64, growing exponentially with the size", gen.Integral(ranges.ExponentialBounded[uint64]())),
	"float64":  register("floats in [-1e6, 1e6]", gen.F64(ranges.LinearFrom[float64](0, -1e6, 1e6))),
	"bool":     register("booleans", gen.Bool()),
	"digit":    register("ASCII digits", gen.Digit()),
	"alpha":    register("ASCII letters", gen.Alpha()),
	"alphanum": register("ASCII letters and digits", gen.AlphaNum()),
	"unicode":  register("valid unicode code points", gen.Unicode()),
	"string":   register("alphanumeric strings of up to 20 runes", gen.String(ranges.Linear(0, 20), gen.AlphaNum())),
	"ints":     register("slices of up to 10 integers in [0, 100]", gen.Vec(ranges.Linear(0, 10), gen.Integral(ranges.Linear(0, 100)))),
	"option":   register("optional integers", gen.Option(gen.Integral(ranges.Linear(0, 100)))),
	"pair":     register("pairs of digits", gen.Tuple(gen.Integral(ranges.Constant(0, 9)))),
	"even":     register("even integers in [0, 1000]", gen.Filter(gen.Integral(ranges.Linear(0, 1000)), func(x int) bool { return x%2 == 0 })),
}

func generatorNames() []string {
	names := maps.Keys(generators)
	slices.Sort(names)
	return names
}

func newGeneratorsCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "generators",
		Short: "List the generators that can be sampled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range generatorNames() {
				if _, err := fmt.Fprintf(out, "%-10s%s\n", name, generators[name].description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
