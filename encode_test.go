package cppi

import (
	"strings"
	"testing"
)

func TestEncodeDecodeResult(t *testing.T) {
	p := Parameters{Initial: USD(1000), Floor: USD(1000), MaxLoss: Q(0.5), Rate: Q(0)}
	r := Simulate(series(100, 110, 120), p)

	var b strings.Builder
	if err := EncodeResult(&b, r); err != nil {
		t.Fatalf("EncodeResult() error = %v", err)
	}

	got, err := DecodeResult(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeResult() error = %v", err)
	}
	if !got.Breached || got.BreachedAt != r.BreachedAt {
		t.Errorf("Breached = %v at %d, want %v at %d", got.Breached, got.BreachedAt, r.Breached, r.BreachedAt)
	}
	if len(got.Ticks) != len(r.Ticks) {
		t.Fatalf("len(Ticks) = %d, want %d", len(got.Ticks), len(r.Ticks))
	}
	for i := range r.Ticks {
		if !got.Ticks[i].Portfolio.Equal(r.Ticks[i].Portfolio) {
			t.Errorf("tick %d: Portfolio = %v, want %v", i, got.Ticks[i].Portfolio, r.Ticks[i].Portfolio)
		}
	}
	if !got.Final.Equal(r.Final) {
		t.Errorf("Final = %v, want %v", got.Final, r.Final)
	}
	if !got.Return.Equal(r.Return) {
		t.Errorf("Return = %v, want %v", got.Return, r.Return)
	}
}

func TestDecodeResult_errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"bad header", "not json\n"},
		{"bad tick", `{"initial":"1000","floor":"800","maxLoss":"0.5","rate":"0","currency":"USD"}` + "\nnot json\n"},
		{"bad tick date", `{"initial":"1000","floor":"800","maxLoss":"0.5","rate":"0","currency":"USD"}` + "\n" + `{"on":"someday","units":"4","risky":"440","safe":"600","portfolio":"1040"}` + "\n"},
	}
	for _, tt := range tests {
		if _, err := DecodeResult(strings.NewReader(tt.in)); err == nil {
			t.Errorf("%s: DecodeResult() error = nil, want error", tt.name)
		}
	}
}
