package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"

	"asistencia/internal/models"
	"asistencia/internal/repository"
	"asistencia/pkg/workdays"

	"github.com/sirupsen/logrus"
)

// csvHeader is the de facto interchange format of the exported report.
// Column order and header text must not change.
var csvHeader = []string{"Fecha", "Presentes", "Ausentes", "Tarde", "Total"}

type ReportService struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
	logger         *logrus.Logger
}

func NewReportService(
	attendanceRepo repository.AttendanceRepository,
	employeeRepo repository.EmployeeRepository,
) *ReportService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &ReportService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		logger:         logger,
	}
}

// MonthlySeries computes present/absent/late counts for every working day
// (Mon-Fri) of the month, optionally restricted to one department. Absent
// is the complement against the filtered roster, as in the daily stats.
func (s *ReportService) MonthlySeries(year, month int, department string) ([]models.DayAttendance, error) {
	employees, err := s.filteredEmployees(department)
	if err != nil {
		return nil, err
	}

	ids := make(map[uint]bool, len(employees))
	for _, e := range employees {
		ids[e.ID] = true
	}

	records, err := s.attendanceRepo.GetByMonth(year, month)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]*models.AttendanceRecord)
	for _, r := range records {
		if ids[r.EmployeeID] {
			byDate[r.Date] = append(byDate[r.Date], r)
		}
	}

	series := []models.DayAttendance{}
	for _, day := range workdays.ForMonth(year, month) {
		dayStr := day.Format(models.DateLayout)

		present := 0
		late := 0
		for _, r := range byDate[dayStr] {
			if r.IsCountedPresent() {
				present++
			}
			if r.Status == models.StatusLate {
				late++
			}
		}

		series = append(series, models.DayAttendance{
			Date:    day.Format("02/01"),
			Present: present,
			Absent:  len(employees) - present,
			Late:    late,
			Total:   len(employees),
		})
	}

	s.logger.WithFields(logrus.Fields{
		"year":       year,
		"month":      month,
		"department": department,
		"days":       len(series),
	}).Debug("Computed monthly series")

	return series, nil
}

// DepartmentStats computes the attendance rate per department for a month.
// Rate is presence punches over (headcount x working days), as a rounded
// percentage. A department with no employees, or a month with no working
// days, rates 0.
func (s *ReportService) DepartmentStats(year, month int) ([]models.DepartmentStats, error) {
	employees, err := s.employeeRepo.GetAll()
	if err != nil {
		return nil, err
	}

	byDept := make(map[string][]*models.Employee)
	order := []string{}
	for _, e := range employees {
		if _, seen := byDept[e.Department]; !seen {
			order = append(order, e.Department)
		}
		byDept[e.Department] = append(byDept[e.Department], e)
	}

	records, err := s.attendanceRepo.GetByMonth(year, month)
	if err != nil {
		return nil, err
	}

	workingDays := workdays.CountForMonth(year, month)

	stats := []models.DepartmentStats{}
	for _, dept := range order {
		deptEmployees := byDept[dept]

		ids := make(map[uint]bool, len(deptEmployees))
		for _, e := range deptEmployees {
			ids[e.ID] = true
		}

		presentDays := 0
		for _, r := range records {
			if ids[r.EmployeeID] && r.IsCountedPresent() {
				presentDays++
			}
		}

		totalDays := len(deptEmployees) * workingDays
		rate := 0
		if totalDays > 0 {
			rate = int(math.Round(float64(presentDays) / float64(totalDays) * 100))
		}

		stats = append(stats, models.DepartmentStats{
			Name:           dept,
			Employees:      len(deptEmployees),
			AttendanceRate: rate,
			TotalDays:      totalDays,
			PresentDays:    presentDays,
		})
	}

	return stats, nil
}

// MonthlySummary counts the month's records by exact status value.
// Statuses with zero records are omitted.
func (s *ReportService) MonthlySummary(year, month int) ([]models.StatusCount, error) {
	records, err := s.attendanceRepo.GetByMonth(year, month)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Status]++
	}

	summary := []models.StatusCount{}
	for _, status := range []string{
		models.StatusPresent,
		models.StatusLate,
		models.StatusAbsent,
		models.StatusEarlyDeparture,
	} {
		if counts[status] > 0 {
			summary = append(summary, models.StatusCount{
				Status: status,
				Count:  counts[status],
			})
		}
	}

	return summary, nil
}

// ExportCSV renders the monthly series as the attendance report CSV and
// returns its contents with the conventional file name.
func (s *ReportService) ExportCSV(year, month int, department string) ([]byte, string, error) {
	series, err := s.MonthlySeries(year, month, department)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, "", err
	}
	for _, day := range series {
		row := []string{
			day.Date,
			strconv.Itoa(day.Present),
			strconv.Itoa(day.Absent),
			strconv.Itoa(day.Late),
			strconv.Itoa(day.Total),
		}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("reporte-asistencia-%04d-%02d.csv", year, month)

	s.logger.WithFields(logrus.Fields{
		"filename": filename,
		"rows":     len(series),
	}).Info("Monthly report exported")

	return buf.Bytes(), filename, nil
}

func (s *ReportService) filteredEmployees(department string) ([]*models.Employee, error) {
	if department == "" || department == "all" {
		return s.employeeRepo.GetAll()
	}
	return s.employeeRepo.GetByDepartment(department)
}
