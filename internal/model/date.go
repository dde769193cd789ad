package model

import "time"

const dayLayout = "02/01/2006"

// Day truncates a timestamp to its calendar date in UTC. All window
// comparisons are done on dates, never on full timestamps.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses an operator-supplied DD/MM/YYYY date.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(dayLayout, s)
}
