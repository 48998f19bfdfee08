// Package duration parses the timeout values accepted in config.
//
// A timeout is either a bare number of seconds ("30") or a Go duration
// ("1m30s", "500ms"). Zero disables the timeout.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var seconds = regexp.MustCompile(`^\d+$`)

// Parse parses a timeout. Negative values are rejected.
func Parse(s string) (time.Duration, error) {
	if seconds.MatchString(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid number: %w", err)
		}
		return time.Duration(n) * time.Second, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s (use 30, 30s, 1m30s or 500ms)", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid duration: %s must not be negative", s)
	}
	return d, nil
}

// Format renders d the way Parse accepts it.
func Format(d time.Duration) string {
	if d%time.Second == 0 {
		return strconv.FormatInt(int64(d/time.Second), 10) + "s"
	}
	return d.String()
}
