package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gopbt/seed"
)

// newRootCommand returns the `gopbt` command with its subcommands
func newRootCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gopbt",
		Short:        "Sample generators and run example properties",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(out, cmd.UsageString())
		},
	}
	cmd.SetOut(out)
	cmd.AddCommand(
		newSampleCommand(out),
		newCheckCommand(out),
		newGeneratorsCommand(out),
	)
	return cmd
}

// Parse the seed flag. An empty flag draws a random seed.
func parseSeed(text string) (seed.Seed, error) {
	if text == "" {
		return seed.Random(), nil
	}
	return seed.Parse(text)
}
