package workdays_test

import (
	"testing"
	"time"

	"asistencia/pkg/workdays"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForMonth(t *testing.T) {
	// September 2025 starts on a Monday: 22 working days
	days := workdays.ForMonth(2025, 9)
	assert.Len(t, days, 22)
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, 1, days[0].Day())
	assert.Equal(t, 30, days[len(days)-1].Day())

	for _, day := range days {
		assert.False(t, workdays.IsWeekend(day))
	}

	// February 2026 starts on a Sunday: 20 working days
	assert.Equal(t, 20, workdays.CountForMonth(2026, 2))
}

func TestMonthBounds(t *testing.T) {
	start, end := workdays.MonthBounds(2025, 9)
	assert.Equal(t, "2025-09-01", start.Format("2006-01-02"))
	assert.Equal(t, "2025-09-30", end.Format("2006-01-02"))

	start, end = workdays.MonthBounds(2024, 2)
	assert.Equal(t, "2024-02-29", end.Format("2006-01-02"), "leap year february")
	_ = start
}

func TestParseMonth(t *testing.T) {
	year, month, err := workdays.ParseMonth("2025-09")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 9, month)

	_, _, err = workdays.ParseMonth("septiembre")
	assert.Error(t, err)

	_, _, err = workdays.ParseMonth("")
	assert.Error(t, err)
}
