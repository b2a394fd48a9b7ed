// Package clock abstracts the wall clock so attendance rules that read
// "now" at the moment of the operation stay deterministic under test.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

// At builds a Fixed clock from a date and an "HH:MM" time of day.
func At(date, hhmm string) Fixed {
	t, _ := time.Parse("2006-01-02 15:04", date+" "+hhmm)
	return Fixed{T: t}
}
