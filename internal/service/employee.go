package service

import (
	"asistencia/internal/models"
	"asistencia/internal/repository"

	"github.com/sirupsen/logrus"
)

type EmployeeService struct {
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
	logger         *logrus.Logger
}

func NewEmployeeService(
	employeeRepo repository.EmployeeRepository,
	attendanceRepo repository.AttendanceRepository,
) *EmployeeService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &EmployeeService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// Add puts a new employee on the roster. The store assigns the id.
func (s *EmployeeService) Add(employee *models.Employee) (*models.Employee, error) {
	if employee.Status == "" {
		employee.Status = models.EmployeeActive
	}
	employee.ID = 0

	if err := s.employeeRepo.Create(employee); err != nil {
		s.logger.WithError(err).Error("Failed to add employee")
		return nil, err
	}

	return employee, nil
}

// Update merges the partial fields into the matching employee. An unknown
// id is a silent no-op and returns (nil, nil).
func (s *EmployeeService) Update(id uint, update *models.EmployeeUpdate) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		s.logger.WithField("id", id).Debug("Employee not found for update")
		return nil, nil
	}

	update.Apply(employee)

	if err := s.employeeRepo.Save(employee); err != nil {
		s.logger.WithError(err).Error("Failed to update employee")
		return nil, err
	}

	s.logger.WithField("id", id).Info("Employee updated")
	return employee, nil
}

// Delete removes the employee and cascades to every attendance record
// referencing it. An unknown id is a silent no-op (returns false).
func (s *EmployeeService) Delete(id uint) (bool, error) {
	deleted, err := s.employeeRepo.DeleteByID(id)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, nil
	}

	removed, err := s.attendanceRepo.DeleteByEmployeeID(id)
	if err != nil {
		s.logger.WithError(err).Error("Failed to cascade attendance deletion")
		return true, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":              id,
		"records_removed": removed,
	}).Info("Employee deleted with attendance cascade")

	return true, nil
}

func (s *EmployeeService) Get(id uint) (*models.Employee, error) {
	return s.employeeRepo.GetByID(id)
}

func (s *EmployeeService) List() ([]*models.Employee, error) {
	return s.employeeRepo.GetAll()
}
