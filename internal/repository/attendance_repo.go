package repository

import (
	"errors"
	"fmt"

	"asistencia/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(record *models.AttendanceRecord) error
	Save(record *models.AttendanceRecord) error
	GetByID(id uint) (*models.AttendanceRecord, error)
	GetByEmployeeAndDate(employeeID uint, date string) (*models.AttendanceRecord, error)
	GetByDate(date string) ([]*models.AttendanceRecord, error)
	GetByMonth(year, month int) ([]*models.AttendanceRecord, error)
	DeleteByEmployeeID(employeeID uint) (int64, error)
}

type GormAttendanceRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormAttendanceRepository(db *gorm.DB) (*GormAttendanceRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.AttendanceRecord{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate attendance_records table")
		return nil, err
	}

	logger.Info("Attendance repository initialized")

	return &GormAttendanceRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormAttendanceRepository) Create(record *models.AttendanceRecord) error {
	r.logger.WithFields(logrus.Fields{
		"employee_id": record.EmployeeID,
		"date":        record.Date,
		"status":      record.Status,
	}).Info("Creating attendance record")

	if !record.IsValid() {
		r.logger.WithFields(logrus.Fields{
			"employee_id": record.EmployeeID,
			"date":        record.Date,
		}).Warn("Invalid attendance record data")
		return errors.New("invalid attendance record data")
	}

	result := r.db.Create(record)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create attendance record")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":          record.ID,
		"employee_id": record.EmployeeID,
		"status":      record.Status,
	}).Info("Attendance record created successfully")

	return nil
}

func (r *GormAttendanceRepository) Save(record *models.AttendanceRecord) error {
	if !record.IsValid() {
		r.logger.WithField("id", record.ID).Warn("Invalid attendance record data for save")
		return errors.New("invalid attendance record data")
	}

	result := r.db.Save(record)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to save attendance record")
		return result.Error
	}

	return nil
}

func (r *GormAttendanceRepository) GetByID(id uint) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	result := r.db.First(&record, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("id", id).Debug("Attendance record not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get attendance record by ID")
		return nil, result.Error
	}

	return &record, nil
}

func (r *GormAttendanceRepository) GetByEmployeeAndDate(employeeID uint, date string) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	result := r.db.Where("employee_id = ? AND date = ?", employeeID, date).First(&record)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithFields(logrus.Fields{
			"employee_id": employeeID,
			"date":        date,
		}).Debug("Attendance record not found for employee/date")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get attendance record by employee and date")
		return nil, result.Error
	}

	return &record, nil
}

// GetByDate returns the day's records in insertion order.
func (r *GormAttendanceRepository) GetByDate(date string) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord
	result := r.db.Where("date = ?", date).Order("id").Find(&records)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get attendance records by date")
		return nil, result.Error
	}

	return records, nil
}

func (r *GormAttendanceRepository) GetByMonth(year, month int) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord

	startDate := fmt.Sprintf("%04d-%02d-01", year, month)
	endDate := fmt.Sprintf("%04d-%02d-31", year, month)

	result := r.db.Where("date BETWEEN ? AND ?", startDate, endDate).
		Order("date, id").
		Find(&records)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get attendance records by month")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"year":  year,
		"month": month,
		"count": len(records),
	}).Debug("Retrieved attendance records by month")

	return records, nil
}

// DeleteByEmployeeID removes every record referencing the employee. Used
// by the cascade on employee deletion.
func (r *GormAttendanceRepository) DeleteByEmployeeID(employeeID uint) (int64, error) {
	r.logger.WithField("employee_id", employeeID).Info("Deleting all attendance records for employee")

	result := r.db.Where("employee_id = ?", employeeID).Delete(&models.AttendanceRecord{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete employee attendance records")
		return 0, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"employee_id":   employeeID,
		"rows_affected": result.RowsAffected,
	}).Info("Employee attendance records deleted successfully")

	return result.RowsAffected, nil
}
