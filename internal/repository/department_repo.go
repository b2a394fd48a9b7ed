package repository

import (
	"errors"

	"asistencia/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Seed(departments []models.Department) error
	GetAll() ([]*models.Department, error)
	GetByName(name string) (*models.Department, error)
}

type GormDepartmentRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormDepartmentRepository(db *gorm.DB) (*GormDepartmentRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.Department{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate departments table")
		return nil, err
	}

	logger.Info("Department repository initialized")

	return &GormDepartmentRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Seed loads the reference departments once. Rows already present are
// left untouched; departments are read-only after initialization.
func (r *GormDepartmentRepository) Seed(departments []models.Department) error {
	for i := range departments {
		dept := departments[i]

		existing, err := r.GetByName(dept.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		if result := r.db.Create(&dept); result.Error != nil {
			r.logger.WithError(result.Error).Error("Failed to seed department")
			return result.Error
		}
	}

	r.logger.WithField("count", len(departments)).Info("Departments seeded")
	return nil
}

func (r *GormDepartmentRepository) GetAll() ([]*models.Department, error) {
	var departments []*models.Department
	result := r.db.Order("id").Find(&departments)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to list departments")
		return nil, result.Error
	}

	return departments, nil
}

func (r *GormDepartmentRepository) GetByName(name string) (*models.Department, error) {
	var department models.Department
	result := r.db.Where("name = ?", name).First(&department)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get department by name")
		return nil, result.Error
	}

	return &department, nil
}
