package convert_test

import (
	"testing"
	"time"

	"arg-binder/convert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		token string
		want  time.Duration
	}{
		// Standard notation is tried first
		{"2h45m", 2*time.Hour + 45*time.Minute},
		{"150ms", 150 * time.Millisecond},
		{"1.5h", 90 * time.Minute},

		// Number plus single-letter unit suffix
		{"5S", 5 * time.Second},
		{"5s", 5 * time.Second},
		{"250F", 250 * time.Millisecond},
		{"250f", 250 * time.Millisecond},
		{"3M", 3 * time.Minute},
		{"2H", 2 * time.Hour},
		{"1D", 24 * time.Hour},
		{"1.5D", 36 * time.Hour},
		{"0.5m", 30 * time.Second},

		// Unresolvable input yields the zero duration
		{"", 0},
		{"x", 0},
		{"5", 0},    // bare number has no unit
		{"abcS", 0}, // suffix resolves, prefix is not a number
		{"Read", 0},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := convert.ParseDuration(tt.token); got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		unit convert.Unit
		want string
	}{
		{5 * time.Second, convert.Seconds, "5S"},
		{250 * time.Millisecond, convert.Milliseconds, "250F"},
		{90 * time.Second, convert.Minutes, "1.5M"},
		{36 * time.Hour, convert.Days, "1.5D"},
		{2 * time.Hour, convert.Hours, "2H"},
		{time.Second, convert.Unit(42), ""}, // out-of-range unit
		{time.Second, convert.Unit(-1), ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := convert.FormatDuration(tt.d, tt.unit); got != tt.want {
				t.Errorf("FormatDuration(%v, %v) = %q, want %q", tt.d, tt.unit, got, tt.want)
			}
		})
	}
}

func TestFormatDurationDefaultsToMilliseconds(t *testing.T) {
	// The zero Unit is milliseconds, so an unspecified unit renders in F.
	var unit convert.Unit
	if got := convert.FormatDuration(time.Second, unit); got != "1000F" {
		t.Errorf("FormatDuration(1s, zero unit) = %q, want %q", got, "1000F")
	}
}

func TestDurationRoundTrip(t *testing.T) {
	d := convert.ParseDuration("5S")
	if got := convert.FormatDuration(d, convert.Seconds); got != "5S" {
		t.Errorf("round trip = %q, want %q", got, "5S")
	}
}
