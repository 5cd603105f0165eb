package countdown

import (
	"errors"
	"testing"
	"time"
)

// FuzzParseDuration checks that arbitrary input never panics the parser
// and that anything it accepts survives a format/parse round trip.
func FuzzParseDuration(f *testing.F) {
	seeds := []string{
		"00:15:00",
		"0:0:0",
		"99:59:59",
		"",
		"::",
		"1:2:3",
		"00:60:00",
		"banana",
		"-1:00:00",
		"00:00:00:00",
		" 01:00:00 ",
		"\x00:\x00:\x00",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		d, err := ParseDuration(s)
		if err != nil {
			if !errors.Is(err, ErrBadDuration) {
				t.Errorf("ParseDuration(%q) error = %v, want ErrBadDuration", s, err)
			}
			return
		}

		if d < 0 || d >= 100*time.Hour {
			t.Errorf("ParseDuration(%q) = %v, outside the clock range", s, d)
		}

		formatted := FormatDuration(d)
		back, err := ParseDuration(formatted)
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v", formatted, err)
		}
		if back != d {
			t.Errorf("round trip changed %v to %v via %q", d, back, formatted)
		}
	})
}
