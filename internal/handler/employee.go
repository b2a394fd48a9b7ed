package handler

import (
	"net/http"
	"strconv"

	"asistencia/internal/models"
	"asistencia/internal/service"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	svc *service.EmployeeService
}

func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

type employeeRequest struct {
	Name       string              `json:"name" binding:"required"`
	Email      string              `json:"email"`
	Department string              `json:"department" binding:"required"`
	Position   string              `json:"position"`
	Code       string              `json:"employeeId" binding:"required"`
	Phone      string              `json:"phone"`
	HireDate   string              `json:"hireDate"`
	Status     string              `json:"status"`
	Schedule   models.WorkSchedule `json:"workSchedule"`
}

// GET /api/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if employees == nil {
		employees = []*models.Employee{}
	}
	c.JSON(http.StatusOK, employees)
}

// GET /api/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	employee, err := h.svc.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if employee == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	c.JSON(http.StatusOK, employee)
}

// POST /api/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	if req.Schedule.StartTime == "" {
		req.Schedule.StartTime = "09:00"
	}
	if req.Schedule.EndTime == "" {
		req.Schedule.EndTime = "18:00"
	}

	employee := &models.Employee{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Position:   req.Position,
		Code:       req.Code,
		Phone:      req.Phone,
		HireDate:   req.HireDate,
		Status:     req.Status,
		Schedule:   req.Schedule,
	}

	created, err := h.svc.Add(employee)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var update models.EmployeeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	employee, err := h.svc.Update(id, &update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if employee == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DELETE /api/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
