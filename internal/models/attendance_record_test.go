package models_test

import (
	"testing"

	"asistencia/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, models.StatusLate, models.DeriveStatus("09:05", "09:00"))
	assert.Equal(t, models.StatusPresent, models.DeriveStatus("09:00", "09:00"))
	assert.Equal(t, models.StatusPresent, models.DeriveStatus("08:59", "09:00"))
	// works across the hour boundary because both sides are zero-padded
	assert.Equal(t, models.StatusLate, models.DeriveStatus("10:00", "09:59"))
	assert.Equal(t, models.StatusPresent, models.DeriveStatus("09:59", "10:00"))
}

func TestAttendanceRecord_ComputeHours(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     float64
	}{
		{"full day", "08:30", "17:30", 9.00},
		{"repeating third rounds down", "09:00", "17:20", 8.33},
		{"two thirds rounds up", "09:00", "17:40", 8.67},
		{"no check-out", "09:00", "", 0},
		{"no check-in", "", "17:00", 0},
		{"check-out before check-in goes negative", "10:00", "09:00", -1.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := models.AttendanceRecord{
				Date:     "2025-09-01",
				CheckIn:  tt.checkIn,
				CheckOut: tt.checkOut,
			}
			assert.Equal(t, tt.want, record.ComputeHours())
		})
	}
}

func TestAttendanceRecord_IsCountedPresent(t *testing.T) {
	assert.True(t, (&models.AttendanceRecord{Status: models.StatusPresent}).IsCountedPresent())
	assert.True(t, (&models.AttendanceRecord{Status: models.StatusLate}).IsCountedPresent())
	assert.False(t, (&models.AttendanceRecord{Status: models.StatusAbsent}).IsCountedPresent())
	assert.False(t, (&models.AttendanceRecord{Status: models.StatusEarlyDeparture}).IsCountedPresent())
}

func TestAttendanceRecord_IsValid(t *testing.T) {
	record := models.AttendanceRecord{
		EmployeeID: 1,
		Date:       "2025-09-01",
		Status:     models.StatusPresent,
	}
	assert.True(t, record.IsValid())

	bad := record
	bad.Date = "01/09/2025"
	assert.False(t, bad.IsValid())

	bad = record
	bad.Status = "vacaciones"
	assert.False(t, bad.IsValid())

	bad = record
	bad.EmployeeID = 0
	assert.False(t, bad.IsValid())
}
