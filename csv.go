package cppi

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/etnz/cppi/date"
	"github.com/shopspring/decimal"
)

// This file handles the tabular formats: Yahoo Finance daily-history
// CSV in, equity curve CSV out.

// ImportDailyCloses parses a Yahoo Finance historical-data CSV and
// returns the series of daily closing prices.
//
// The expected header is "Date,Open,High,Low,Close,Adj Close,Volume";
// the Date and Close columns are located by name so column reordering
// is harmless. Rows with a "null" close (days Yahoo has no quote for)
// are skipped; any other unparseable row fails the import.
func ImportDailyCloses(r io.Reader) (*PriceSeries, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate trailing short rows

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read csv header: %w", err)
	}
	dateCol, closeCol := -1, -1
	for i, name := range header {
		switch name {
		case "Date":
			dateCol = i
		case "Close":
			closeCol = i
		}
	}
	if dateCol < 0 || closeCol < 0 {
		return nil, fmt.Errorf("invalid csv header %q: want %q and %q columns", header, "Date", "Close")
	}

	series := &PriceSeries{}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		if closeCol >= len(record) {
			return nil, fmt.Errorf("format error on line %d: missing %q column", line, "Close")
		}

		if record[closeCol] == "null" {
			continue // Yahoo emits null rows for days without a quote.
		}

		on, err := date.Parse(record[dateCol])
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		close, err := decimal.NewFromString(record[closeCol])
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: invalid close %q: %w", line, record[closeCol], err)
		}
		series.Append(on, close)
	}
	return series, nil
}

// LoadDailyCloses reads a Yahoo Finance historical-data CSV file.
//
// A missing source file is reported distinctly (the underlying fs
// error is wrapped) from a malformed one.
func LoadDailyCloses(filename string) (*PriceSeries, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open price file %q: %w", filename, err)
	}
	defer f.Close()

	series, err := ImportDailyCloses(f)
	if err != nil {
		return nil, fmt.Errorf("cannot parse price file %q: %w", filename, err)
	}
	return series, nil
}

// ExportDailyCloses writes a price series as CSV with Date and Close
// columns, a format ImportDailyCloses reads back.
func ExportDailyCloses(w io.Writer, series *PriceSeries) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"Date", "Close"}); err != nil {
		return fmt.Errorf("cannot write price header: %w", err)
	}
	for on, close := range series.Values() {
		if err := cw.Write([]string{on.String(), close.String()}); err != nil {
			return fmt.Errorf("cannot write price row for %s: %w", on, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCurve writes the simulation's equity curve as CSV, one row per
// tick.
func ExportCurve(w io.Writer, r *Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"date", "units", "risky", "safe", "portfolio"}); err != nil {
		return fmt.Errorf("cannot write curve header: %w", err)
	}
	for _, tick := range r.Ticks {
		row := []string{
			tick.Day.String(),
			tick.Units.String(),
			tick.Risky.Amount().StringFixed(2),
			tick.Safe.Amount().StringFixed(2),
			tick.Portfolio.Amount().StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write curve row for %s: %w", tick.Day, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
