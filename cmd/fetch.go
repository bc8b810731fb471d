package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cppi"
	"github.com/google/subcommands"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	symbol string
	years  int
	output string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download daily closing prices to a CSV file" }
func (*fetchCmd) Usage() string {
	return `cps fetch -symbol <symbol> [-years <n>] [-o <file>]

  Downloads the symbol's daily closing prices and writes them as a CSV
  file that 'simulate -i' reads back.

Usage Examples:
$ cps fetch -symbol ^GSPC -years 5 -o GSPC.csv

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "symbol to fetch")
	f.IntVar(&c.years, "years", 5, "years of history to fetch")
	f.StringVar(&c.output, "o", "", "output file (defaults to stdout)")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "-symbol argument is required")
		return subcommands.ExitUsageError
	}

	series, err := cppi.FetchDailyCloses(c.symbol, c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching %q: %v\n", c.symbol, err)
		return subcommands.ExitFailure
	}

	w := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := cppi.ExportDailyCloses(w, series); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing prices: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Fetched %d daily closes for %q into %s\n", series.Len(), c.symbol, c.output)
	}
	return subcommands.ExitSuccess
}
