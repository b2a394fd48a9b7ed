package handler

import (
	"net/http"

	"asistencia/internal/models"
	"asistencia/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	svc *service.SettingsService
}

func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GET /api/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Get())
}

// PUT /api/settings
// Saving always acknowledges success; the document lives in memory only.
func (h *SettingsHandler) Save(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.svc.Save(settings)
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Configuración guardada exitosamente"})
}
