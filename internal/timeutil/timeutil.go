package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Clock returns the current time. Tests swap it for a fixed instant.
type Clock func() time.Time

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the local calendar date reported by clock as YYYY-MM-DD.
// A nil clock falls back to time.Now.
func Today(clock Clock) string {
	if clock == nil {
		clock = time.Now
	}
	return FormatDate(clock().Local())
}
