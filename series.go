package cppi

import (
	"iter"
	"slices"
	"sort"

	"github.com/etnz/cppi/date"
	"github.com/shopspring/decimal"
)

// PriceSeries stores the chronological series of daily closing prices
// of the risky asset. It ensures that dates are unique and the series
// is always sorted. Each entry is one tick of the simulation.
type PriceSeries struct {
	days   []date.Date
	closes []decimal.Decimal
}

// Len returns the number of ticks in the series.
func (s *PriceSeries) Len() int { return len(s.days) }

// Day returns the date of tick i.
func (s *PriceSeries) Day(i int) date.Date { return s.days[i] }

// Close returns the closing price of tick i.
func (s *PriceSeries) Close(i int) decimal.Decimal { return s.closes[i] }

// chronological is a private implementation to make this series chronologically sorted.
type chronological struct{ *PriceSeries }

func (s chronological) Len() int           { return len(s.days) }
func (s chronological) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }
func (s chronological) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.closes[i], s.closes[j] = s.closes[j], s.closes[i]
}

// Append adds a closing price to the series.
//
// Existing value at that date is overwritten.
func (s *PriceSeries) Append(on date.Date, close decimal.Decimal) *PriceSeries {
	if i := slices.Index(s.days, on); i >= 0 {
		// Found a point at that exact same day.
		// We choose to replace, because it gives higher priority to the last data.
		s.closes[i] = close
		return s
	}
	s.days, s.closes = append(s.days, on), append(s.closes, close)
	sort.Sort(chronological{s})
	return s
}

// Values returns an iterator over all date/close pairs in the series, in chronological order.
func (s *PriceSeries) Values() iter.Seq2[date.Date, decimal.Decimal] {
	return func(yield func(date.Date, decimal.Decimal) bool) {
		for i, on := range s.days {
			if !yield(on, s.closes[i]) {
				return
			}
		}
	}
}
