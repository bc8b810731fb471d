package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/cppi"
	"github.com/etnz/cppi/renderer"
	"github.com/google/subcommands"
)

// sweepCmd holds the flags for the 'sweep' subcommand.
type sweepCmd struct {
	simParams
	losses string
}

func (*sweepCmd) Name() string { return "sweep" }
func (*sweepCmd) Synopsis() string {
	return "compare max-loss assumptions over the same price series"
}
func (*sweepCmd) Usage() string {
	return `cps sweep -i <file> | -symbol <symbol> [-losses <fractions>]

  Runs one simulation per max-loss fraction, all other parameters held
  equal, and compares the outcomes. A max loss of 1 is buy-and-hold.

Usage Examples:
$ cps sweep -i GSPC.csv -losses 0.1,0.2,0.5,1

`
}

func (c *sweepCmd) SetFlags(f *flag.FlagSet) {
	c.simParams.SetFlags(f)
	f.StringVar(&c.losses, "losses", "0.1,0.2,0.5,1", "comma-separated max-loss fractions to compare")
}

func (c *sweepCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fractions, err := parseFractions(c.losses)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -losses: %v\n", err)
		return subcommands.ExitUsageError
	}

	series, err := c.series()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}

	var results []*cppi.Result
	for _, maxLoss := range fractions {
		params := c.parameters()
		params.MaxLoss = cppi.Q(maxLoss)
		results = append(results, cppi.Simulate(series, params))
	}

	printMarkdown(renderer.SweepMarkdown(results))
	return subcommands.ExitSuccess
}

// parseFractions parses a comma-separated list of max-loss fractions.
func parseFractions(s string) ([]float64, error) {
	var fractions []float64
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid fraction %q: %w", part, err)
		}
		fractions = append(fractions, v)
	}
	if len(fractions) == 0 {
		return nil, fmt.Errorf("no fractions in %q", s)
	}
	return fractions, nil
}
