package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cppi"
	"github.com/etnz/cppi/agent"
	"github.com/etnz/cppi/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI analyst.
type assistCmd struct {
	simParams
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI analyst about a run"
}
func (*assistCmd) Usage() string {
	return `cps assist -i <file> | -symbol <symbol> [question]

  Runs the simulation and starts an interactive session with an AI
  analyst that answers questions about the outcome. Requires a Gemini
  API key in the environment.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) { c.simParams.SetFlags(f) }

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	series, err := c.series()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}
	result := cppi.Simulate(series, c.parameters())
	report := renderer.SimulationMarkdown(result, true)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(report))
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
