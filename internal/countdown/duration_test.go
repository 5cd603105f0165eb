package countdown

import (
	"errors"
	"testing"
	"time"
)

func TestParseDuration_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"00:00:01", time.Second},
		{"00:15:00", 15 * time.Minute},
		{"01:30:00", 90 * time.Minute},
		{"0:5:7", 5*time.Minute + 7*time.Second},
		{"99:59:59", 99*time.Hour + 59*time.Minute + 59*time.Second},
		{"00:00:00", 0},
		{"  00:30:00  ", 30 * time.Minute},
	}

	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		if err != nil {
			t.Errorf("ParseDuration(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"banana",
		"00:00",
		"00:00:00:00",
		"00:60:00",
		"00:00:60",
		"-1:00:00",
		"+1:00:00",
		"1.5:00:00",
		"100:00:00",
		"00 : 15 : 00",
		"aa:bb:cc",
	}

	for _, in := range inputs {
		if _, err := ParseDuration(in); !errors.Is(err, ErrBadDuration) {
			t.Errorf("ParseDuration(%q) error = %v, want ErrBadDuration", in, err)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{time.Second, "00:00:01"},
		{61 * time.Second, "00:01:01"},
		{90 * time.Minute, "01:30:00"},
		{time.Hour + time.Minute + time.Second, "01:01:01"},
		{-5 * time.Second, "00:00:00"},
		{100 * time.Hour, "100:00:00"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDuration_RoundTrips(t *testing.T) {
	durations := []time.Duration{
		time.Second,
		15 * time.Minute,
		30 * time.Minute,
		time.Hour,
		2*time.Hour + 45*time.Minute + 30*time.Second,
	}

	for _, d := range durations {
		s := FormatDuration(d)
		back, err := ParseDuration(s)
		if err != nil {
			t.Errorf("ParseDuration(%q) returned error: %v", s, err)
			continue
		}
		if back != d {
			t.Errorf("round trip changed %v to %v via %q", d, back, s)
		}
	}
}
