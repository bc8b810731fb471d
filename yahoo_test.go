package cppi

import (
	"encoding/json"
	"testing"
)

const chartSample = `{
  "chart": {
    "result": [
      {
        "meta": {"symbol": "^GSPC", "currency": "USD"},
        "timestamp": [1577975400, 1578061800, 1578320400],
        "indicators": {
          "quote": [
            {"close": [3257.85, 3234.85, null]}
          ]
        }
      }
    ],
    "error": null
  }
}`

func TestChartSeries(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(chartSample), &jobj); err != nil {
		t.Fatalf("invalid sample: %v", err)
	}

	series, err := chartSeries(jobj)
	if err != nil {
		t.Fatalf("chartSeries() error = %v", err)
	}
	// The null close is skipped.
	if got, want := series.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got, want := series.Close(0).String(), "3257.85"; got != want {
		t.Errorf("Close(0) = %s, want %s", got, want)
	}
}

func TestChartSeries_malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"no result", `{"chart":{"result":[],"error":null}}`},
		{"no closes", `{"chart":{"result":[{"timestamp":[1577975400]}]}}`},
		{"length mismatch", `{"chart":{"result":[{"timestamp":[1,2],"indicators":{"quote":[{"close":[100.0]}]}}]}}`},
	}
	for _, tt := range tests {
		var jobj any
		if err := json.Unmarshal([]byte(tt.in), &jobj); err != nil {
			t.Fatalf("%s: invalid sample: %v", tt.name, err)
		}
		if _, err := chartSeries(jobj); err == nil {
			t.Errorf("%s: chartSeries() error = nil, want error", tt.name)
		}
	}
}
