package format

import (
	"strings"
	"testing"
	"time"
)

func TestRoundCurrency(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{in: 3800, want: 3800},
		{in: 10.005, want: 10.01},
		{in: 1.234, want: 1.23},
		{in: 0, want: 0},
	}
	for _, tc := range cases {
		if got := RoundCurrency(tc.in); got != tc.want {
			t.Fatalf("RoundCurrency(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if got := Cents(47.5); got != 4750 {
		t.Fatalf("expected 4750 cents, got %d", got)
	}
}

func TestBRL(t *testing.T) {
	got := BRL(3800)
	if !strings.HasPrefix(got, "R$") || !strings.Contains(got, "3.800,00") {
		t.Fatalf("unexpected BRL rendering: %q", got)
	}
	if got := BRL(0.5); !strings.Contains(got, "0,50") {
		t.Fatalf("unexpected BRL rendering: %q", got)
	}
}

func TestDate(t *testing.T) {
	if Date(nil) != "" {
		t.Fatalf("nil date should render empty")
	}
	d := time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)
	if got := Date(&d); got != "20/02/2025" {
		t.Fatalf("unexpected date: %q", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-10")
	if err != nil || !d.Equal(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected parse result d=%v err=%v", d, err)
	}

	d, err = ParseDate("2025-01-10T12:00:00-03:00")
	if err != nil || d.Hour() != 15 || d.Location() != time.UTC {
		t.Fatalf("unexpected parse result d=%v err=%v", d, err)
	}

	if _, err := ParseDate("10/01/2025"); err == nil {
		t.Fatalf("expected error for unsupported layout")
	}
}
