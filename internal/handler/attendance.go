package handler

import (
	"net/http"
	"strconv"

	"asistencia/internal/models"
	"asistencia/internal/service"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	svc   *service.AttendanceService
	stats *service.StatsService
}

func NewAttendanceHandler(svc *service.AttendanceService, stats *service.StatsService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, stats: stats}
}

// POST /api/employees/:id/check-in
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	record, err := h.svc.CheckIn(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// POST /api/employees/:id/check-out
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	record, err := h.svc.CheckOut(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no check-in today"})
		return
	}
	c.JSON(http.StatusOK, record)
}

type attendanceRequest struct {
	EmployeeID  uint    `json:"employeeId" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	Status      string  `json:"status" binding:"required"`
	Notes       string  `json:"notes"`
	HoursWorked float64 `json:"hoursWorked"`
}

// POST /api/attendance  (manual or backfilled record)
func (h *AttendanceHandler) AddRecord(c *gin.Context) {
	var req attendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	record, err := h.svc.AddRecord(&models.AttendanceRecord{
		EmployeeID:  req.EmployeeID,
		Date:        req.Date,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Status:      req.Status,
		Notes:       req.Notes,
		HoursWorked: req.HoursWorked,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// GET /api/attendance  (today's records, insertion order)
func (h *AttendanceHandler) Today(c *gin.Context) {
	records, err := h.svc.GetTodayAttendance()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if records == nil {
		records = []*models.AttendanceRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/attendance/:employeeId?date=yyyy-MM-dd
func (h *AttendanceHandler) ForEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("employeeId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	record, err := h.svc.GetEmployeeAttendance(uint(id), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no attendance record"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// GET /api/stats
func (h *AttendanceHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Today()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
