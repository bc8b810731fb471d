package cppi

import "github.com/etnz/cppi/date"

// This file implements the CPPI rebalancing recurrence.
//
// Every tick the cushion (portfolio value above the floor) is
// multiplied by the CPPI multiplier and invested in the risky asset,
// in whole units only. The rest sits on the safe account and earns one
// day of interest. Dollar values are always truncated at the cent,
// toward negative infinity, after each step.

// Parameters holds the immutable configuration of a simulation.
type Parameters struct {
	// Initial is the starting portfolio value.
	Initial Money
	// Floor is the minimum portfolio value we are willing to accept.
	// Reaching it exits the position.
	Floor Money
	// MaxLoss is the worst crash we predict could occur, as a fraction.
	// For example expecting the S&P 500 to crash 20% at most gives 0.2.
	MaxLoss Quantity
	// Rate is the annual interest rate of the safe account. An online
	// high-yield savings account is usually around 0.02.
	Rate Quantity
}

// Multiplier returns the CPPI multiplier, the inverse of the max loss
// assumption, and whether it is finite.
//
// A zero max loss means infinite leverage: the whole portfolio goes to
// the risky asset as soon as the cushion is positive.
func (p Parameters) Multiplier() (m Quantity, finite bool) {
	if p.MaxLoss.IsZero() {
		return Quantity{}, false
	}
	return Q(1).Div(p.MaxLoss), true
}

// dailyFactor returns the growth factor of the safe account over one day.
func (p Parameters) dailyFactor() Quantity { return Q(1).Add(p.Rate.Div(Q(365))) }

// Tick is the state of the portfolio at the end of one simulated day.
type Tick struct {
	Day       date.Date
	Units     Quantity // whole risky-asset units held during the day
	Risky     Money    // risky leg, marked to the day's closing price
	Safe      Money    // safe leg, after one day of interest
	Portfolio Money    // Risky + Safe
}

// Result is the outcome of one simulation run.
type Result struct {
	Params Parameters
	Ticks  []Tick
	// Breached is true when the portfolio value reached the floor and
	// the position was exited before the end of the price series.
	Breached bool
	// BreachedAt is the price index at which the floor was reached.
	BreachedAt int
	Final      Money
	Return     Percent
}

// Simulate runs the CPPI recurrence over the price series and returns
// the resulting per-tick portfolio values.
//
// A series with fewer than two prices performs zero ticks and returns
// the starting portfolio unchanged. No parameter combination is
// rejected: degenerate configurations (floor above the portfolio,
// negative rates, max loss outside (0,1]) flow through the arithmetic.
func Simulate(series *PriceSeries, p Parameters) *Result {
	r := &Result{Params: p, Final: p.Initial}
	if series.Len() < 2 {
		return r
	}

	m, finite := p.Multiplier()
	factor := p.dailyFactor()
	currency := p.Initial.Currency()

	portfolio := p.Initial
	for i := 1; i < series.Len(); i++ {
		currPrice := M(series.Close(i-1), currency)
		nextPrice := M(series.Close(i), currency)

		// How much to allocate into the risky asset: a multiple of the
		// cushion, never more than the whole portfolio. There is no
		// lower clamp: a negative cushion propagates unchanged.
		cushion := portfolio.Sub(p.Floor)
		var allocated Money
		switch {
		case finite:
			allocated = cushion.Mul(m)
		case cushion.IsPositive():
			allocated = portfolio
		default:
			allocated = M(0, currency)
		}
		if portfolio.LessThan(allocated) {
			allocated = portfolio
		}

		// Only whole units are purchasable.
		units := allocated.DivPrice(currPrice).Floor()
		allocated = currPrice.Mul(units).FloorCents()

		// The rest goes to the safe account and earns one day of interest.
		remaining := portfolio.Sub(allocated).Mul(factor).FloorCents()

		// Mark the risky asset to the next day's close.
		allocated = nextPrice.Mul(units).FloorCents()

		portfolio = allocated.Add(remaining).FloorCents()
		r.Ticks = append(r.Ticks, Tick{
			Day:       series.Day(i),
			Units:     units,
			Risky:     allocated,
			Safe:      remaining,
			Portfolio: portfolio,
		})

		if portfolio.LessThanOrEqual(p.Floor) {
			// Floor reached, exit the position.
			r.Breached = true
			r.BreachedAt = i
			break
		}
	}

	r.Final = portfolio
	if !p.Initial.IsZero() {
		ratio := r.Final.DivPrice(p.Initial)
		r.Return = Percent(ratio.Sub(Q(1)).Mul(Q(100)).value.InexactFloat64())
	}
	return r
}
