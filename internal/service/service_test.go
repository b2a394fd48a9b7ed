package service_test

import (
	"fmt"
	"testing"
	"time"

	"asistencia/internal/models"
	"asistencia/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeClock is a settable clock so check-in and check-out can happen at
// chosen instants within one test.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) set(date, hhmm string) {
	t, err := time.Parse("2006-01-02 15:04", date+" "+hhmm)
	if err != nil {
		panic(err)
	}
	c.t = t
}

type testEnv struct {
	employeeRepo   *repository.GormEmployeeRepository
	attendanceRepo *repository.GormAttendanceRepository
	clock          *fakeClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	employeeRepo, err := repository.NewGormEmployeeRepository(db)
	require.NoError(t, err)
	attendanceRepo, err := repository.NewGormAttendanceRepository(db)
	require.NoError(t, err)

	clk := &fakeClock{}
	clk.set("2025-09-01", "08:00")

	return &testEnv{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		clock:          clk,
	}
}

func (e *testEnv) addEmployee(t *testing.T, code, department, startTime string) *models.Employee {
	t.Helper()

	employee := &models.Employee{
		Name:       "Empleado " + code,
		Email:      code + "@empresa.com",
		Department: department,
		Position:   "Analista",
		Code:       code,
		Status:     models.EmployeeActive,
		Schedule: models.WorkSchedule{
			StartTime: startTime,
			EndTime:   "18:00",
			WorkDays:  models.WorkDays{"monday", "tuesday", "wednesday", "thursday", "friday"},
		},
	}
	require.NoError(t, e.employeeRepo.Create(employee))
	return employee
}
