package cppi

import (
	"strings"
	"testing"

	"github.com/etnz/cppi/date"
)

const yahooSample = `Date,Open,High,Low,Close,Adj Close,Volume
2020-01-02,3244.67,3258.14,3235.53,3257.85,3257.85,3458250000
2020-01-03,3226.36,3246.15,3222.34,3234.85,3234.85,3461290000
2020-01-06,3217.55,3246.84,3214.64,3246.28,3246.28,3674070000
`

func TestImportDailyCloses(t *testing.T) {
	series, err := ImportDailyCloses(strings.NewReader(yahooSample))
	if err != nil {
		t.Fatalf("ImportDailyCloses() error = %v", err)
	}
	if got, want := series.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got, want := series.Day(0), date.MustParse("2020-01-02"); got != want {
		t.Errorf("Day(0) = %v, want %v", got, want)
	}
	if got, want := series.Close(1).String(), "3234.85"; got != want {
		t.Errorf("Close(1) = %s, want %s", got, want)
	}
}

func TestImportDailyCloses_nullRows(t *testing.T) {
	in := `Date,Open,High,Low,Close,Adj Close,Volume
2020-01-02,100,100,100,100,100,0
2020-01-03,null,null,null,null,null,null
2020-01-06,102,102,102,102,102,0
`
	series, err := ImportDailyCloses(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportDailyCloses() error = %v", err)
	}
	if got, want := series.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d: null rows are skipped", got, want)
	}
}

func TestImportDailyCloses_malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"bad header", "Day,Last\n2020-01-02,100\n"},
		{"bad close", "Date,Close\n2020-01-02,not-a-number\n"},
		{"bad date", "Date,Close\nyesterday,100\n"},
	}
	for _, tt := range tests {
		if _, err := ImportDailyCloses(strings.NewReader(tt.in)); err == nil {
			t.Errorf("%s: ImportDailyCloses() error = nil, want error", tt.name)
		}
	}
}

func TestLoadDailyCloses_missingFile(t *testing.T) {
	_, err := LoadDailyCloses("does/not/exist.csv")
	if err == nil {
		t.Fatal("LoadDailyCloses() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "cannot open") {
		t.Errorf("error = %q, want an open error, not a parse error", err)
	}
}

func TestExportDailyCloses_roundTrip(t *testing.T) {
	s := series(100, 110.5, 120)

	var b strings.Builder
	if err := ExportDailyCloses(&b, s); err != nil {
		t.Fatalf("ExportDailyCloses() error = %v", err)
	}
	got, err := ImportDailyCloses(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ImportDailyCloses() error = %v", err)
	}
	if got.Len() != s.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		if got.Day(i) != s.Day(i) || !got.Close(i).Equal(s.Close(i)) {
			t.Errorf("tick %d: (%v, %v), want (%v, %v)", i, got.Day(i), got.Close(i), s.Day(i), s.Close(i))
		}
	}
}

func TestExportCurve(t *testing.T) {
	p := Parameters{Initial: USD(1000), Floor: USD(800), MaxLoss: Q(0.5), Rate: Q(0)}
	r := Simulate(series(100, 110), p)

	var b strings.Builder
	if err := ExportCurve(&b, r); err != nil {
		t.Fatalf("ExportCurve() error = %v", err)
	}
	want := "date,units,risky,safe,portfolio\n2020-01-02,4,440.00,600.00,1040.00\n"
	if b.String() != want {
		t.Errorf("ExportCurve() = %q, want %q", b.String(), want)
	}
}
