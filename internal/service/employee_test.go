package service_test

import (
	"testing"

	"asistencia/internal/models"
	"asistencia/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_Add_AssignsID(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewEmployeeService(env.employeeRepo, env.attendanceRepo)

	created, err := svc.Add(&models.Employee{
		Name:       "Ana García",
		Department: "Recursos Humanos",
		Code:       "EMP001",
		Schedule:   models.WorkSchedule{StartTime: "09:00", EndTime: "18:00"},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.EmployeeActive, created.Status, "status defaults to active")
}

func TestEmployeeService_Update_PartialMerge(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewEmployeeService(env.employeeRepo, env.attendanceRepo)

	employee := env.addEmployee(t, "EMP001", "Ventas", "09:00")

	position := "Gerente de Ventas"
	start := "08:00"
	updated, err := svc.Update(employee.ID, &models.EmployeeUpdate{
		Position:  &position,
		StartTime: &start,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Gerente de Ventas", updated.Position)
	assert.Equal(t, "08:00", updated.Schedule.StartTime)
	assert.Equal(t, employee.Name, updated.Name, "untouched fields are preserved")
	assert.Equal(t, "Ventas", updated.Department)
}

func TestEmployeeService_Update_UnknownIDIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewEmployeeService(env.employeeRepo, env.attendanceRepo)

	name := "Nadie"
	updated, err := svc.Update(999, &models.EmployeeUpdate{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestEmployeeService_Delete_CascadesAttendance(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewEmployeeService(env.employeeRepo, env.attendanceRepo)

	gone := env.addEmployee(t, "EMP001", "Ventas", "09:00")
	keep := env.addEmployee(t, "EMP002", "Ventas", "09:00")

	for _, date := range []string{"2025-09-01", "2025-09-02"} {
		for _, employee := range []*models.Employee{gone, keep} {
			require.NoError(t, env.attendanceRepo.Create(&models.AttendanceRecord{
				EmployeeID: employee.ID,
				Date:       date,
				CheckIn:    "09:00",
				Status:     models.StatusPresent,
			}))
		}
	}

	deleted, err := svc.Delete(gone.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	for _, date := range []string{"2025-09-01", "2025-09-02"} {
		records, err := env.attendanceRepo.GetByDate(date)
		require.NoError(t, err)
		require.Len(t, records, 1, "only the deleted employee's records are removed")
		assert.Equal(t, keep.ID, records[0].EmployeeID)
	}
}

func TestEmployeeService_Delete_UnknownIDIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewEmployeeService(env.employeeRepo, env.attendanceRepo)

	deleted, err := svc.Delete(999)
	require.NoError(t, err)
	assert.False(t, deleted)
}
