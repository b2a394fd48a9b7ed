package service

import (
	"asistencia/internal/models"
	"asistencia/internal/repository"
	"asistencia/pkg/clock"

	"github.com/sirupsen/logrus"
)

type StatsService struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
	clock          clock.Clock
	logger         *logrus.Logger
}

func NewStatsService(
	attendanceRepo repository.AttendanceRepository,
	employeeRepo repository.EmployeeRepository,
	clk clock.Clock,
) *StatsService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &StatsService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
		logger:         logger,
	}
}

// Today computes the dashboard summary for the current day.
func (s *StatsService) Today() (*models.AttendanceStats, error) {
	return s.ForDate(s.clock.Now().Format(models.DateLayout))
}

// ForDate computes the daily summary. Present counts records with status
// present or late; absent is the complement against the roster size, so an
// employee with no record for the day is implicitly absent.
func (s *StatsService) ForDate(date string) (*models.AttendanceStats, error) {
	total, err := s.employeeRepo.Count()
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.GetByDate(date)
	if err != nil {
		return nil, err
	}

	present := 0
	late := 0
	totalHours := 0.0
	for _, record := range records {
		if record.IsCountedPresent() {
			present++
			totalHours += record.HoursWorked
		}
		if record.Status == models.StatusLate {
			late++
		}
	}

	averageHours := 0.0
	if present > 0 {
		averageHours = totalHours / float64(present)
	}

	stats := &models.AttendanceStats{
		TotalEmployees: total,
		PresentToday:   present,
		AbsentToday:    total - present,
		LateToday:      late,
		AverageHours:   averageHours,
	}

	s.logger.WithFields(logrus.Fields{
		"date":    date,
		"present": present,
		"absent":  stats.AbsentToday,
		"late":    late,
	}).Debug("Computed daily stats")

	return stats, nil
}
