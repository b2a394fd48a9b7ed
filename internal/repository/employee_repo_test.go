package repository_test

import (
	"testing"

	"asistencia/internal/models"
	"asistencia/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEmployee(code string) *models.Employee {
	return &models.Employee{
		Name:       "Ana García",
		Email:      "ana.garcia@empresa.com",
		Department: "Recursos Humanos",
		Position:   "Gerente de RRHH",
		Code:       code,
		Status:     models.EmployeeActive,
		Schedule: models.WorkSchedule{
			StartTime: "09:00",
			EndTime:   "18:00",
			WorkDays:  models.WorkDays{"monday", "tuesday", "wednesday", "thursday", "friday"},
		},
	}
}

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo, err := repository.NewGormEmployeeRepository(db)
	require.NoError(t, err)

	employee := sampleEmployee("EMP001")
	require.NoError(t, repo.Create(employee))
	assert.NotZero(t, employee.ID, "store assigns the identifier")

	got, err := repo.GetByID(employee.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "EMP001", got.Code)
	assert.Equal(t, "09:00", got.Schedule.StartTime)
	assert.Equal(t, models.WorkDays{"monday", "tuesday", "wednesday", "thursday", "friday"}, got.Schedule.WorkDays)
}

func TestEmployeeRepository_DuplicateCodeRejected(t *testing.T) {
	db := newTestDB(t)
	repo, err := repository.NewGormEmployeeRepository(db)
	require.NoError(t, err)

	require.NoError(t, repo.Create(sampleEmployee("EMP001")))

	err = repo.Create(sampleEmployee("EMP001"))
	assert.Error(t, err, "employee codes are unique within the store")
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo, err := repository.NewGormEmployeeRepository(db)
	require.NoError(t, err)

	got, err := repo.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEmployeeRepository_DeleteByID(t *testing.T) {
	db := newTestDB(t)
	repo, err := repository.NewGormEmployeeRepository(db)
	require.NoError(t, err)

	employee := sampleEmployee("EMP001")
	require.NoError(t, repo.Create(employee))

	deleted, err := repo.DeleteByID(employee.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByID(employee.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "repeated delete is a no-op")

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestEmployeeRepository_GetByDepartment(t *testing.T) {
	db := newTestDB(t)
	repo, err := repository.NewGormEmployeeRepository(db)
	require.NoError(t, err)

	hr := sampleEmployee("EMP001")
	require.NoError(t, repo.Create(hr))

	tech := sampleEmployee("EMP002")
	tech.Department = "Tecnología"
	require.NoError(t, repo.Create(tech))

	got, err := repo.GetByDepartment("Tecnología")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "EMP002", got[0].Code)
}
