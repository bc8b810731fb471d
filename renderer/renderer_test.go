package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/cppi"
	"github.com/etnz/cppi/date"
	"github.com/shopspring/decimal"
)

func run(t *testing.T, floor float64) *cppi.Result {
	t.Helper()
	s := &cppi.PriceSeries{}
	day := date.MustParse("2020-01-01")
	for i, c := range []float64{100, 110, 120} {
		s.Append(day.Add(i), decimal.NewFromFloat(c))
	}
	p := cppi.Parameters{
		Initial: cppi.M(1000.0, "USD"),
		Floor:   cppi.M(floor, "USD"),
		MaxLoss: cppi.Q(0.5),
		Rate:    cppi.Q(0.0),
	}
	return cppi.Simulate(s, p)
}

func TestSimulationMarkdown(t *testing.T) {
	md := SimulationMarkdown(run(t, 800), true)

	for _, want := range []string{
		"# CPPI Simulation",
		"| Multiplier | 2 |",
		"## Equity Curve",
		"2020-01-02",
		"## Summary",
		"Price history exhausted after 2 ticks.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("SimulationMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestSimulationMarkdown_breach(t *testing.T) {
	md := SimulationMarkdown(run(t, 1000), false)

	if !strings.Contains(md, "Floor reached, exiting position on 2020-01-02.") {
		t.Errorf("SimulationMarkdown() missing breach notice in:\n%s", md)
	}
	if strings.Contains(md, "## Equity Curve") {
		t.Errorf("SimulationMarkdown() renders ticks without ShowTicks in:\n%s", md)
	}
}

func TestSweepMarkdown(t *testing.T) {
	md := SweepMarkdown([]*cppi.Result{run(t, 800), run(t, 1000)})

	for _, want := range []string{
		"# Max-Loss Sweep",
		"| 0.5 | 2 | 2 | no |",
		"| 0.5 | 2 | 1 | yes |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("SweepMarkdown() missing %q in:\n%s", want, md)
		}
	}
}
