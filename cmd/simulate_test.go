package cmd

import (
	"flag"
	"testing"

	"github.com/etnz/cppi"
)

func TestSimParams_parameters(t *testing.T) {
	var p simParams
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	p.SetFlags(f)
	if err := f.Parse([]string{"-portfolio", "1000", "-floor", "800", "-maxloss", "0.5", "-rate", "0", "-c", "EUR"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	params := p.parameters()
	if !params.Initial.Equal(cppi.M(1000.0, "EUR")) {
		t.Errorf("Initial = %v, want 1000 EUR", params.Initial)
	}
	if !params.Floor.Equal(cppi.M(800.0, "EUR")) {
		t.Errorf("Floor = %v, want 800 EUR", params.Floor)
	}
	m, finite := params.Multiplier()
	if !finite || !m.Equal(cppi.Q(2)) {
		t.Errorf("Multiplier() = %v, %v, want 2, true", m, finite)
	}
}

func TestSimParams_series_flagErrors(t *testing.T) {
	// Neither -i nor -symbol.
	var p simParams
	if _, err := p.series(); err == nil {
		t.Error("series() error = nil, want error without -i or -symbol")
	}

	// Both at once.
	p = simParams{file: "prices.csv", symbol: "^GSPC"}
	if _, err := p.series(); err == nil {
		t.Error("series() error = nil, want error with both -i and -symbol")
	}
}

func TestParseFractions(t *testing.T) {
	got, err := parseFractions("0.1, 0.2,1")
	if err != nil {
		t.Fatalf("parseFractions() error = %v", err)
	}
	want := []float64{0.1, 0.2, 1}
	if len(got) != len(want) {
		t.Fatalf("parseFractions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parseFractions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := parseFractions("0.1,oops"); err == nil {
		t.Error("parseFractions(0.1,oops) error = nil, want error")
	}
	if _, err := parseFractions(""); err == nil {
		t.Error("parseFractions(empty) error = nil, want error")
	}
}
