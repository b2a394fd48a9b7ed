// Package workdays provides the Monday-Friday working day calendar used by
// monthly reports.
package workdays

import (
	"fmt"
	"time"
)

// MonthBounds returns the first and last day of a month.
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ForMonth returns every Monday-Friday date of the month, in order.
func ForMonth(year, month int) []time.Time {
	start, end := MonthBounds(year, month)
	days := []time.Time{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			days = append(days, d)
		}
	}
	return days
}

// CountForMonth returns the number of working days in the month.
func CountForMonth(year, month int) int {
	return len(ForMonth(year, month))
}

// ParseMonth parses a "yyyy-MM" month selector.
func ParseMonth(s string) (int, int, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return t.Year(), int(t.Month()), nil
}
