package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cppi"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	simParams
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "run a simulation and export the full run" }
func (*exportCmd) Usage() string {
	return `cps export -i <file> | -symbol <symbol> [-format csv|jsonl] [-o <file>]

  Runs the simulation and exports it: "csv" writes the equity curve,
  "jsonl" writes the whole run (parameters and ticks) in a
  human-readable, git-friendly form.

Usage Examples:
$ cps export -i GSPC.csv -format jsonl -o run.jsonl

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.simParams.SetFlags(f)
	f.StringVar(&c.format, "format", "csv", "output format (csv, jsonl)")
	f.StringVar(&c.output, "o", "", "output file (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format != "csv" && c.format != "jsonl" {
		fmt.Fprintf(os.Stderr, "unknown format %q, want csv or jsonl\n", c.format)
		return subcommands.ExitUsageError
	}

	series, err := c.series()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}

	result := cppi.Simulate(series, c.parameters())

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

	switch c.format {
	case "csv":
		err = cppi.ExportCurve(w, result)
	case "jsonl":
		err = cppi.EncodeResult(w, result)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting run: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
