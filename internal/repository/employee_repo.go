package repository

import (
	"errors"

	"asistencia/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *models.Employee) error
	Save(employee *models.Employee) error
	GetByID(id uint) (*models.Employee, error)
	GetByCode(code string) (*models.Employee, error)
	GetAll() ([]*models.Employee, error)
	GetByDepartment(department string) ([]*models.Employee, error)
	DeleteByID(id uint) (bool, error)
	Count() (int, error)
}

type GormEmployeeRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormEmployeeRepository(db *gorm.DB) (*GormEmployeeRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.Employee{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate employees table")
		return nil, err
	}

	logger.Info("Employee repository initialized")

	return &GormEmployeeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	r.logger.WithFields(logrus.Fields{
		"name": employee.Name,
		"code": employee.Code,
	}).Info("Creating employee")

	if !employee.IsValid() {
		r.logger.WithField("code", employee.Code).Warn("Invalid employee data")
		return errors.New("invalid employee data")
	}

	// Employee codes are unique on the roster
	existing, err := r.GetByCode(employee.Code)
	if err != nil {
		return err
	}
	if existing != nil {
		r.logger.WithField("code", employee.Code).Warn("Employee code already taken")
		return errors.New("employee code already exists")
	}

	result := r.db.Create(employee)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create employee")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":   employee.ID,
		"code": employee.Code,
	}).Info("Employee created successfully")

	return nil
}

func (r *GormEmployeeRepository) Save(employee *models.Employee) error {
	result := r.db.Save(employee)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to save employee")
		return result.Error
	}
	return nil
}

func (r *GormEmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	result := r.db.First(&employee, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("id", id).Debug("Employee not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get employee by ID")
		return nil, result.Error
	}

	return &employee, nil
}

func (r *GormEmployeeRepository) GetByCode(code string) (*models.Employee, error) {
	var employee models.Employee
	result := r.db.Where("code = ?", code).First(&employee)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get employee by code")
		return nil, result.Error
	}

	return &employee, nil
}

func (r *GormEmployeeRepository) GetAll() ([]*models.Employee, error) {
	var employees []*models.Employee
	result := r.db.Order("id").Find(&employees)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to list employees")
		return nil, result.Error
	}

	return employees, nil
}

func (r *GormEmployeeRepository) GetByDepartment(department string) ([]*models.Employee, error) {
	var employees []*models.Employee
	result := r.db.Where("department = ?", department).Order("id").Find(&employees)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to list employees by department")
		return nil, result.Error
	}

	return employees, nil
}

// DeleteByID removes the employee row. It reports whether a row was
// actually deleted; an unknown id is not an error.
func (r *GormEmployeeRepository) DeleteByID(id uint) (bool, error) {
	r.logger.WithField("id", id).Info("Deleting employee")

	result := r.db.Delete(&models.Employee{}, id)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete employee")
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.WithField("id", id).Debug("Employee not found for deletion")
		return false, nil
	}

	r.logger.WithField("id", id).Info("Employee deleted successfully")
	return true, nil
}

func (r *GormEmployeeRepository) Count() (int, error) {
	var count int64
	result := r.db.Model(&models.Employee{}).Count(&count)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to count employees")
		return 0, result.Error
	}

	return int(count), nil
}
