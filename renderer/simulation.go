package renderer

import (
	"github.com/etnz/cppi"
)

// Simulation is the view model for a single run report.
type Simulation struct {
	Initial    string
	Floor      string
	MaxLoss    string
	Multiplier string
	Rate       string

	ShowTicks bool
	Ticks     []TickRow

	Days       int // number of simulated ticks
	Breached   bool
	BreachedOn string
	Final      string
	Return     string
}

// TickRow is one line of the equity curve table.
type TickRow struct {
	Day       string
	Units     string
	Risky     string
	Safe      string
	Portfolio string
}

// NewSimulation builds the view model from a simulation result.
func NewSimulation(r *cppi.Result, showTicks bool) *Simulation {
	s := &Simulation{
		Initial:   r.Params.Initial.String(),
		Floor:     r.Params.Floor.String(),
		MaxLoss:   r.Params.MaxLoss.String(),
		Rate:      r.Params.Rate.String(),
		ShowTicks: showTicks,
		Days:      len(r.Ticks),
		Breached:  r.Breached,
		Final:     r.Final.String(),
		Return:    r.Return.SignedString(),
	}
	if m, finite := r.Params.Multiplier(); finite {
		s.Multiplier = m.String()
	} else {
		s.Multiplier = "∞"
	}
	if r.Breached {
		s.BreachedOn = r.Ticks[len(r.Ticks)-1].Day.String()
	}
	if showTicks {
		for _, tick := range r.Ticks {
			s.Ticks = append(s.Ticks, TickRow{
				Day:       tick.Day.String(),
				Units:     tick.Units.String(),
				Risky:     tick.Risky.String(),
				Safe:      tick.Safe.String(),
				Portfolio: tick.Portfolio.String(),
			})
		}
	}
	return s
}

// SimulationMarkdown renders a single run to a markdown string.
func SimulationMarkdown(r *cppi.Result, showTicks bool) string {
	partials := map[string]string{
		"simulation_title":   "simulation_title.md",
		"simulation_params":  "simulation_params.md",
		"simulation_curve":   "simulation_curve.md",
		"simulation_summary": "simulation_summary.md",
	}
	return renderTemplate("simulation", "simulation.md", partials, NewSimulation(r, showTicks))
}

// Sweep is the view model comparing runs over the same price series.
type Sweep struct {
	Initial string
	Floor   string
	Rate    string
	Rows    []SweepRow
}

// SweepRow is the outcome of one max-loss assumption.
type SweepRow struct {
	MaxLoss    string
	Multiplier string
	Days       int
	Breached   bool
	Final      string
	Return     string
}

// NewSweep builds the view model from several results over the same
// series and shared parameters except the max loss.
func NewSweep(results []*cppi.Result) *Sweep {
	s := &Sweep{}
	for _, r := range results {
		if s.Initial == "" {
			s.Initial = r.Params.Initial.String()
			s.Floor = r.Params.Floor.String()
			s.Rate = r.Params.Rate.String()
		}
		row := SweepRow{
			MaxLoss:  r.Params.MaxLoss.String(),
			Days:     len(r.Ticks),
			Breached: r.Breached,
			Final:    r.Final.String(),
			Return:   r.Return.SignedString(),
		}
		if m, finite := r.Params.Multiplier(); finite {
			row.Multiplier = m.String()
		} else {
			row.Multiplier = "∞"
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

// SweepMarkdown renders a max-loss sweep to a markdown table.
func SweepMarkdown(results []*cppi.Result) string {
	return renderTemplate("sweep", "sweep.md", nil, NewSweep(results))
}
