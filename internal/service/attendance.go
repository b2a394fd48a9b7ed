package service

import (
	"asistencia/internal/models"
	"asistencia/internal/repository"
	"asistencia/pkg/clock"

	"github.com/sirupsen/logrus"
)

type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
	clock          clock.Clock
	logger         *logrus.Logger
}

func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	employeeRepo repository.EmployeeRepository,
	clk clock.Clock,
) *AttendanceService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
		logger:         logger,
	}
}

// CheckIn punches the employee in for today. A repeated check-in
// overwrites the previous punch and re-derives the status on the same
// record. An unknown employee is a silent no-op and returns (nil, nil).
func (s *AttendanceService) CheckIn(employeeID uint) (*models.AttendanceRecord, error) {
	now := s.clock.Now()
	today := now.Format(models.DateLayout)
	timeOfDay := now.Format(models.TimeLayout)

	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"date":        today,
		"time":        timeOfDay,
	}).Info("Employee checking in")

	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		s.logger.WithField("employee_id", employeeID).Debug("Unknown employee, check-in ignored")
		return nil, nil
	}

	status := models.DeriveStatus(timeOfDay, employee.Schedule.StartTime)

	record, err := s.attendanceRepo.GetByEmployeeAndDate(employeeID, today)
	if err != nil {
		return nil, err
	}

	if record != nil {
		record.CheckIn = timeOfDay
		record.Status = status
		if err := s.attendanceRepo.Save(record); err != nil {
			return nil, err
		}
	} else {
		record = &models.AttendanceRecord{
			EmployeeID:  employeeID,
			Date:        today,
			CheckIn:     timeOfDay,
			Status:      status,
			HoursWorked: 0,
		}
		if err := s.attendanceRepo.Create(record); err != nil {
			return nil, err
		}
	}

	s.logger.WithFields(logrus.Fields{
		"id":          record.ID,
		"employee_id": employeeID,
		"status":      record.Status,
	}).Info("Employee checked in")

	return record, nil
}

// CheckOut punches the employee out and computes the hours worked for the
// day. Without a prior check-in today this is a silent no-op and returns
// (nil, nil). A repeated check-out overwrites the previous one and
// recomputes hours from the current check-in. The status set at check-in
// is never recomputed here.
func (s *AttendanceService) CheckOut(employeeID uint) (*models.AttendanceRecord, error) {
	now := s.clock.Now()
	today := now.Format(models.DateLayout)
	timeOfDay := now.Format(models.TimeLayout)

	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"date":        today,
		"time":        timeOfDay,
	}).Info("Employee checking out")

	record, err := s.attendanceRepo.GetByEmployeeAndDate(employeeID, today)
	if err != nil {
		return nil, err
	}
	if record == nil || !record.HasCheckIn() {
		s.logger.WithField("employee_id", employeeID).Debug("No check-in today, check-out ignored")
		return nil, nil
	}

	record.CheckOut = timeOfDay
	record.HoursWorked = record.ComputeHours()

	if err := s.attendanceRepo.Save(record); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":           record.ID,
		"employee_id":  employeeID,
		"hours_worked": record.HoursWorked,
	}).Info("Employee checked out")

	return record, nil
}

// AddRecord inserts a manual or backfilled record. A record already
// present for the same (employee, date) is updated in place instead of
// duplicated, keeping the one-record-per-day invariant.
func (s *AttendanceService) AddRecord(record *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	existing, err := s.attendanceRepo.GetByEmployeeAndDate(record.EmployeeID, record.Date)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.CheckIn = record.CheckIn
		existing.CheckOut = record.CheckOut
		existing.Status = record.Status
		existing.Notes = record.Notes
		existing.HoursWorked = record.HoursWorked
		if err := s.attendanceRepo.Save(existing); err != nil {
			return nil, err
		}
		s.logger.WithFields(logrus.Fields{
			"id":          existing.ID,
			"employee_id": existing.EmployeeID,
			"date":        existing.Date,
		}).Info("Attendance record updated in place of duplicate insert")
		return existing, nil
	}

	record.ID = 0
	if err := s.attendanceRepo.Create(record); err != nil {
		return nil, err
	}

	return record, nil
}

// GetEmployeeAttendance returns the single record for (employee, date).
// An empty date means today. Returns (nil, nil) when there is none.
func (s *AttendanceService) GetEmployeeAttendance(employeeID uint, date string) (*models.AttendanceRecord, error) {
	if date == "" {
		date = s.clock.Now().Format(models.DateLayout)
	}
	return s.attendanceRepo.GetByEmployeeAndDate(employeeID, date)
}

// GetTodayAttendance returns today's records in insertion order.
func (s *AttendanceService) GetTodayAttendance() ([]*models.AttendanceRecord, error) {
	today := s.clock.Now().Format(models.DateLayout)
	return s.attendanceRepo.GetByDate(today)
}
