package service

import (
	"asistencia/internal/models"
	"asistencia/internal/repository"
	"asistencia/pkg/clock"

	"github.com/sirupsen/logrus"
)

// ReferenceDepartments is the static department list the dashboard ships
// with. Seeded once at startup, read-only after.
func ReferenceDepartments() []models.Department {
	return []models.Department{
		{Name: "Recursos Humanos", Description: "Gestión del personal"},
		{Name: "Tecnología", Description: "Desarrollo y sistemas"},
		{Name: "Ventas", Description: "Comercialización"},
		{Name: "Marketing", Description: "Promoción y publicidad"},
		{Name: "Finanzas", Description: "Contabilidad y finanzas"},
	}
}

// SeedDemoData loads the sample roster and the matching attendance records
// for the current day. Intended for demos; skipped when the roster already
// has employees.
func SeedDemoData(
	employeeRepo repository.EmployeeRepository,
	attendanceRepo repository.AttendanceRepository,
	clk clock.Clock,
) error {
	count, err := employeeRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	weekdays := models.WorkDays{"monday", "tuesday", "wednesday", "thursday", "friday"}

	employees := []*models.Employee{
		{
			Name:       "Ana García",
			Email:      "ana.garcia@empresa.com",
			Department: "Recursos Humanos",
			Position:   "Gerente de RRHH",
			Code:       "EMP001",
			Phone:      "+1234567890",
			HireDate:   "2023-01-15",
			Status:     models.EmployeeActive,
			Schedule:   models.WorkSchedule{StartTime: "09:00", EndTime: "18:00", WorkDays: weekdays},
		},
		{
			Name:       "Carlos Rodríguez",
			Email:      "carlos.rodriguez@empresa.com",
			Department: "Tecnología",
			Position:   "Desarrollador Senior",
			Code:       "EMP002",
			Phone:      "+1234567891",
			HireDate:   "2023-02-01",
			Status:     models.EmployeeActive,
			Schedule:   models.WorkSchedule{StartTime: "08:30", EndTime: "17:30", WorkDays: weekdays},
		},
		{
			Name:       "María López",
			Email:      "maria.lopez@empresa.com",
			Department: "Ventas",
			Position:   "Ejecutiva de Ventas",
			Code:       "EMP003",
			Phone:      "+1234567892",
			HireDate:   "2023-03-10",
			Status:     models.EmployeeActive,
			Schedule:   models.WorkSchedule{StartTime: "09:00", EndTime: "18:00", WorkDays: weekdays},
		},
	}

	for _, e := range employees {
		if err := employeeRepo.Create(e); err != nil {
			return err
		}
	}

	today := clk.Now().Format(models.DateLayout)

	records := []*models.AttendanceRecord{
		{
			EmployeeID:  employees[0].ID,
			Date:        today,
			CheckIn:     "09:05",
			Status:      models.StatusLate,
			HoursWorked: 0,
		},
		{
			EmployeeID:  employees[1].ID,
			Date:        today,
			CheckIn:     "08:30",
			CheckOut:    "17:30",
			Status:      models.StatusPresent,
			HoursWorked: 9,
		},
	}

	for _, r := range records {
		if err := attendanceRepo.Create(r); err != nil {
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"employees": len(employees),
		"records":   len(records),
	}).Info("Demo data seeded")

	return nil
}
