package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"gopbt/gen"
	"gopbt/ranges"
)

func newSampleCommand(out io.Writer) *cobra.Command {
	var (
		opts     sampleOptions
		seedText string
		size     int
	)

	cmd := &cobra.Command{
		Use:   "sample GENERATOR",
		Short: "Print sampled values and their shrinks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ok := generators[args[0]]
			if !ok {
				return fmt.Errorf("unknown generator %q. Available: %s", args[0], strings.Join(generatorNames(), ", "))
			}
			s, err := parseSeed(seedText)
			if err != nil {
				return err
			}
			opts.seed = s
			opts.size = ranges.Size(size)
			return g.write(out, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&seedText, "seed", "", "Seed as value:gamma or an integer (default random)")
	flags.IntVar(&size, "size", int(gen.SampleSize), "Size the values are sampled at")
	flags.IntVarP(&opts.count, "count", "n", gen.SampleCount, "Number of values")
	flags.BoolVar(&opts.newick, "newick", false, "Print the shrink tree of each value in Newick format")
	flags.IntVar(&opts.depth, "depth", 2, "Depth of the printed shrink trees")

	return cmd
}
