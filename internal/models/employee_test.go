package models_test

import (
	"testing"

	"asistencia/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkDays_RoundTrip(t *testing.T) {
	days := models.WorkDays{"monday", "tuesday", "friday"}

	value, err := days.Value()
	require.NoError(t, err)
	assert.Equal(t, "monday,tuesday,friday", value)

	var scanned models.WorkDays
	require.NoError(t, scanned.Scan("monday,tuesday,friday"))
	assert.Equal(t, days, scanned)

	require.NoError(t, scanned.Scan(""))
	assert.Empty(t, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)
}

func TestEmployeeUpdate_ApplyMergesOnlySetFields(t *testing.T) {
	employee := models.Employee{
		Name:       "Ana García",
		Department: "Recursos Humanos",
		Code:       "EMP001",
		Schedule:   models.WorkSchedule{StartTime: "09:00", EndTime: "18:00"},
	}

	department := "Finanzas"
	end := "17:00"
	update := models.EmployeeUpdate{
		Department: &department,
		EndTime:    &end,
	}
	update.Apply(&employee)

	assert.Equal(t, "Finanzas", employee.Department)
	assert.Equal(t, "17:00", employee.Schedule.EndTime)
	assert.Equal(t, "Ana García", employee.Name)
	assert.Equal(t, "09:00", employee.Schedule.StartTime)
}

func TestEmployee_IsValid(t *testing.T) {
	employee := models.Employee{
		Name:     "Ana García",
		Code:     "EMP001",
		Status:   models.EmployeeActive,
		Schedule: models.WorkSchedule{StartTime: "09:00", EndTime: "18:00"},
	}
	assert.True(t, employee.IsValid())

	bad := employee
	bad.Code = ""
	assert.False(t, bad.IsValid())

	bad = employee
	bad.Status = "retired"
	assert.False(t, bad.IsValid())

	bad = employee
	bad.Schedule.StartTime = "9:00"
	assert.False(t, bad.IsValid(), "times must be zero-padded HH:MM")
}
