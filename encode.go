package cppi

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/cppi/date"
	"github.com/shopspring/decimal"
)

// This file contains code to persist a simulation run in JSONL, in a
// way that is human-readable and git-friendly.
//
// The first line holds the parameters and the termination state, then
// each following line is one tick with an "on" date attribute.

// jrun is the header object read from and written to the first line.
type jrun struct {
	Initial    decimal.Decimal `json:"initial"`
	Floor      decimal.Decimal `json:"floor"`
	MaxLoss    decimal.Decimal `json:"maxLoss"`
	Rate       decimal.Decimal `json:"rate"`
	Currency   string          `json:"currency"`
	BreachedAt int             `json:"breachedAt,omitempty"`
}

// jtick is the object read from and written to every other line.
type jtick struct {
	On        string          `json:"on"`
	Units     decimal.Decimal `json:"units"`
	Risky     decimal.Decimal `json:"risky"`
	Safe      decimal.Decimal `json:"safe"`
	Portfolio decimal.Decimal `json:"portfolio"`
}

// EncodeResult persists a simulation run to w in JSONL format.
func EncodeResult(w io.Writer, r *Result) error {
	jr := jrun{
		Initial:    r.Params.Initial.Amount(),
		Floor:      r.Params.Floor.Amount(),
		MaxLoss:    r.Params.MaxLoss.value,
		Rate:       r.Params.Rate.value,
		Currency:   r.Params.Initial.Currency(),
		BreachedAt: r.BreachedAt,
	}
	data, err := json.Marshal(jr)
	if err != nil {
		return fmt.Errorf("cannot marshal run parameters: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write run: %w", err)
	}

	for _, tick := range r.Ticks {
		jt := jtick{
			On:        tick.Day.String(),
			Units:     tick.Units.value,
			Risky:     tick.Risky.Amount(),
			Safe:      tick.Safe.Amount(),
			Portfolio: tick.Portfolio.Amount(),
		}
		data, err := json.Marshal(jt)
		if err != nil {
			return fmt.Errorf("cannot marshal tick %s: %w", tick.Day, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write run: %w", err)
		}
	}
	return nil
}

// DecodeResult reads a simulation run previously written by
// EncodeResult.
func DecodeResult(r io.Reader) (*Result, error) {
	scanner := bufio.NewScanner(r)

	var res *Result
	line := 0
	for scanner.Scan() {
		line++
		txt := scanner.Text()
		if strings.TrimSpace(txt) == "" {
			continue
		}

		if res == nil {
			// First non-empty line is the run header.
			var jr jrun
			if err := json.Unmarshal([]byte(txt), &jr); err != nil {
				return nil, fmt.Errorf("format error on line %d: not a run header: %w", line, err)
			}
			res = &Result{
				Params: Parameters{
					Initial: M(jr.Initial, jr.Currency),
					Floor:   M(jr.Floor, jr.Currency),
					MaxLoss: Q(jr.MaxLoss),
					Rate:    Q(jr.Rate),
				},
				Breached:   jr.BreachedAt > 0,
				BreachedAt: jr.BreachedAt,
			}
			continue
		}

		var jt jtick
		if err := json.Unmarshal([]byte(txt), &jt); err != nil {
			return nil, fmt.Errorf("format error on line %d: not a tick: %w", line, err)
		}
		on, err := date.Parse(jt.On)
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		currency := res.Params.Initial.Currency()
		res.Ticks = append(res.Ticks, Tick{
			Day:       on,
			Units:     Q(jt.Units),
			Risky:     M(jt.Risky, currency),
			Safe:      M(jt.Safe, currency),
			Portfolio: M(jt.Portfolio, currency),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading run: %w", err)
	}
	if res == nil {
		return nil, fmt.Errorf("format error: empty run")
	}

	// Rebuild the derived fields from the recorded ticks.
	res.Final = res.Params.Initial
	if n := len(res.Ticks); n > 0 {
		res.Final = res.Ticks[n-1].Portfolio
	}
	if !res.Params.Initial.IsZero() {
		ratio := res.Final.DivPrice(res.Params.Initial)
		res.Return = Percent(ratio.Sub(Q(1)).Mul(Q(100)).value.InexactFloat64())
	}
	return res, nil
}
