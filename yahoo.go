package cppi

import (
	"fmt"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cppi/date"
	"github.com/shopspring/decimal"
)

// FetchDailyCloses downloads the daily closing prices of a symbol for
// the last 'years' years from the Yahoo Finance chart endpoint.
//
// Responses go through a disk cache with daily expiry, so repeated
// simulations on the same day do not hit the service again.
func FetchDailyCloses(symbol string, years int) (*PriceSeries, error) {
	addr := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?range=%dy&interval=1d",
		url.PathEscape(symbol), years)
	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", symbol, err)
	}
	series, err := chartSeries(jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing chart for %q: %w", symbol, err)
	}
	return series, nil
}

// chartSeries extracts the (timestamp, close) arrays from a chart
// endpoint response.
func chartSeries(jobj any) (*PriceSeries, error) {
	jts, err := jsonpath.Get("$.chart.result[0].timestamp", jobj)
	if err != nil {
		return nil, fmt.Errorf("missing timestamps: %w", err)
	}
	jcloses, err := jsonpath.Get("$.chart.result[0].indicators.quote[0].close", jobj)
	if err != nil {
		return nil, fmt.Errorf("missing closes: %w", err)
	}

	timestamps, ok := jts.([]any)
	if !ok {
		return nil, fmt.Errorf("timestamps are not a list: %v", jts)
	}
	closes, ok := jcloses.([]any)
	if !ok {
		return nil, fmt.Errorf("closes are not a list: %v", jcloses)
	}
	if len(timestamps) != len(closes) {
		return nil, fmt.Errorf("got %d timestamps for %d closes", len(timestamps), len(closes))
	}

	series := &PriceSeries{}
	for i, jt := range timestamps {
		ts, ok := jt.(float64)
		if !ok {
			return nil, fmt.Errorf("timestamp %d is not a number: %v", i, jt)
		}
		// Days without a quote come back as null, skip them.
		close, ok := closes[i].(float64)
		if !ok {
			continue
		}
		on := date.FromTime(time.Unix(int64(ts), 0))
		series.Append(on, decimal.NewFromFloat(close))
	}
	return series, nil
}
