package handler

import (
	"errors"
	"fmt"
	"net/http"

	"asistencia/internal/service"
	"asistencia/pkg/workdays"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc      *service.ReportService
	settings *service.SettingsService
	mailer   *service.ReportMailer
}

func NewReportHandler(
	svc *service.ReportService,
	settings *service.SettingsService,
	mailer *service.ReportMailer,
) *ReportHandler {
	return &ReportHandler{svc: svc, settings: settings, mailer: mailer}
}

// GET /api/reports/monthly?month=yyyy-MM&department=
func (h *ReportHandler) Monthly(c *gin.Context) {
	year, month, ok := queryMonth(c)
	if !ok {
		return
	}

	series, err := h.svc.MonthlySeries(year, month, c.Query("department"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, series)
}

// GET /api/reports/departments?month=yyyy-MM
func (h *ReportHandler) Departments(c *gin.Context) {
	year, month, ok := queryMonth(c)
	if !ok {
		return
	}

	stats, err := h.svc.DepartmentStats(year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/reports/summary?month=yyyy-MM
func (h *ReportHandler) Summary(c *gin.Context) {
	year, month, ok := queryMonth(c)
	if !ok {
		return
	}

	summary, err := h.svc.MonthlySummary(year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /api/reports/export?month=yyyy-MM&department=
func (h *ReportHandler) Export(c *gin.Context) {
	year, month, ok := queryMonth(c)
	if !ok {
		return
	}

	data, filename, err := h.svc.ExportCSV(year, month, c.Query("department"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

// POST /api/reports/email?month=yyyy-MM
func (h *ReportHandler) Email(c *gin.Context) {
	if !h.settings.EmailReportsEnabled() {
		c.JSON(http.StatusConflict, gin.H{"error": "email reports are disabled in settings"})
		return
	}

	year, month, ok := queryMonth(c)
	if !ok {
		return
	}

	data, filename, err := h.svc.ExportCSV(year, month, c.Query("department"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	monthLabel := fmt.Sprintf("%04d-%02d", year, month)
	if err := h.mailer.SendMonthlyReport(monthLabel, filename, data); err != nil {
		if errors.Is(err, service.ErrMailDisabled) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func queryMonth(c *gin.Context) (int, int, bool) {
	year, month, err := workdays.ParseMonth(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, expected yyyy-MM"})
		return 0, 0, false
	}
	return year, month, true
}
