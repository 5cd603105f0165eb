package countdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrBadDuration is returned when a duration string is not a valid
// hh:mm:ss clock value.
var ErrBadDuration = errors.New("duration must be hh:mm:ss")

// ParseDuration parses a clock-style duration such as "00:15:00".
// Components may be one or two digits; minutes and seconds must stay
// below 60 and hours below 100. "00:00:00" parses to zero, which Start
// later rejects, so the zero preset slots stay representable.
func ParseDuration(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrBadDuration, s)
	}

	h, err := parseClockPart(parts[0], 99)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadDuration, s)
	}
	m, err := parseClockPart(parts[1], 59)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadDuration, s)
	}
	sec, err := parseClockPart(parts[2], 59)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadDuration, s)
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second, nil
}

// FormatDuration renders d as a zero-padded hh:mm:ss clock string,
// clamping negative values to "00:00:00". The hour field widens past
// two digits rather than wrapping.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// parseClockPart parses a 1-2 digit component. Signs, spaces, and
// anything non-numeric are rejected here rather than left to Atoi.
func parseClockPart(p string, max int) (int, error) {
	if len(p) == 0 || len(p) > 2 {
		return 0, ErrBadDuration
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return 0, ErrBadDuration
		}
	}
	n, err := strconv.Atoi(p)
	if err != nil || n > max {
		return 0, ErrBadDuration
	}
	return n, nil
}
