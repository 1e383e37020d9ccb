package testutil

import (
	"time"

	"nba-player-ids/internal/timeutil"
)

// NowAt returns a clock fixed at the provided time.
func NowAt(t time.Time) timeutil.Clock {
	return func() time.Time { return t }
}

// MustLocalDate returns local noon on a YYYY-MM-DD date or panics; intended for tests.
// Noon keeps the calendar date stable whatever the test machine's zone.
func MustLocalDate(v string) time.Time {
	t, err := time.ParseInLocation(timeutil.DateLayout, v, time.Local)
	if err != nil {
		panic(err)
	}
	return t.Add(12 * time.Hour)
}
