package bench

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrNoDuration reports bench output with no parsable timing value.
var ErrNoDuration = errors.New("no duration found in bench output")

// The bench binary prints a free-form line such as "elapsed: 3.21s";
// the timing is the first decimal number in the output.
var durationRe = regexp.MustCompile(`\d+\.\d+`)

// ParseDuration extracts the first decimal number from raw bench output
// as a float64. Output without one is an error, never a silent zero.
func ParseDuration(raw string) (float64, error) {
	m := durationRe.FindString(raw)
	if m == "" {
		return 0, fmt.Errorf("%w: %q", ErrNoDuration, snippet(raw))
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing duration %q: %w", m, err)
	}
	return v, nil
}

func snippet(s string) string {
	const max = 120
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
