package handler

import (
	"net/http"

	"asistencia/internal/models"
	"asistencia/internal/repository"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	repo repository.DepartmentRepository
}

func NewDepartmentHandler(repo repository.DepartmentRepository) *DepartmentHandler {
	return &DepartmentHandler{repo: repo}
}

// GET /api/departments
func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if departments == nil {
		departments = []*models.Department{}
	}
	c.JSON(http.StatusOK, departments)
}
