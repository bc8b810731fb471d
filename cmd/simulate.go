package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cppi"
	"github.com/etnz/cppi/renderer"
	"github.com/google/subcommands"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	simParams
	verbose bool
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "run a CPPI simulation over a daily price series" }
func (*simulateCmd) Usage() string {
	return `cps simulate -i <file> | -symbol <symbol> [-portfolio <value>] [-floor <value>] [-maxloss <fraction>] [-rate <rate>] [-v]

  Runs the CPPI strategy over the price series and reports the outcome.

Usage Examples:
# Simulate over a downloaded S&P 500 history with the defaults.
$ cps simulate -i GSPC.csv

# Protect 90% of the portfolio assuming at worst a 10% crash.
$ cps simulate -symbol ^GSPC -floor 90000 -maxloss 0.1

`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	c.simParams.SetFlags(f)
	f.BoolVar(&c.verbose, "v", false, "list every tick of the equity curve")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := c.series()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}

	result := cppi.Simulate(series, c.parameters())

	printMarkdown(renderer.SimulationMarkdown(result, c.verbose))
	return subcommands.ExitSuccess
}
