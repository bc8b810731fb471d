// Package cmd implements the CLI application to run CPPI simulations.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cppi"
)

// as a CLI application, it has a very short lived lifecycle, so flag
// values live directly on the command structs.

// simParams holds the flags shared by every command that runs a
// simulation. Defaults match a 100k portfolio protected at 80k with a
// 20%-crash assumption and a 2% savings account.
type simParams struct {
	file      string
	symbol    string
	years     int
	portfolio float64
	floor     float64
	maxLoss   float64
	rate      float64
	currency  string
}

// SetFlags declares the shared simulation flags on f.
func (p *simParams) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "i", "", "input daily-history CSV file (Yahoo Finance format)")
	f.StringVar(&p.symbol, "symbol", "", "fetch daily closes for this symbol instead of reading a file")
	f.IntVar(&p.years, "years", 5, "years of history to fetch with -symbol")
	f.Float64Var(&p.portfolio, "portfolio", 100000, "starting portfolio value")
	f.Float64Var(&p.floor, "floor", 80000, "minimum acceptable portfolio value")
	f.Float64Var(&p.maxLoss, "maxloss", 0.2, "worst crash assumption, as a fraction (0.2 = 20%)")
	f.Float64Var(&p.rate, "rate", 0.02, "annual interest rate of the safe account")
	f.StringVar(&p.currency, "c", "USD", "portfolio currency")
}

// parameters builds the engine parameters from the flags.
func (p *simParams) parameters() cppi.Parameters {
	return cppi.Parameters{
		Initial: cppi.M(p.portfolio, p.currency),
		Floor:   cppi.M(p.floor, p.currency),
		MaxLoss: cppi.Q(p.maxLoss),
		Rate:    cppi.Q(p.rate),
	}
}

// series loads the price series from the -i file or the -symbol fetch.
func (p *simParams) series() (*cppi.PriceSeries, error) {
	switch {
	case p.file != "" && p.symbol != "":
		return nil, fmt.Errorf("-i and -symbol flags cannot be used together")
	case p.file != "":
		return cppi.LoadDailyCloses(p.file)
	case p.symbol != "":
		return cppi.FetchDailyCloses(p.symbol, p.years)
	default:
		return nil, fmt.Errorf("either -i or -symbol is required")
	}
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
