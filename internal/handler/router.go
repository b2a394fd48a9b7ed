package handler

import (
	"asistencia/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every handler behind the JWT middleware; only login is
// open.
func NewRouter(
	jwtSecret string,
	authH *AuthHandler,
	employeeH *EmployeeHandler,
	attendanceH *AttendanceHandler,
	reportH *ReportHandler,
	settingsH *SettingsHandler,
	departmentH *DepartmentHandler,
) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/login", authH.Login)

	api := r.Group("/api", middleware.JWTAuth(jwtSecret))
	{
		api.GET("/stats", attendanceH.Stats)

		api.GET("/employees", employeeH.List)
		api.POST("/employees", employeeH.Create)
		api.GET("/employees/:id", employeeH.Get)
		api.PUT("/employees/:id", employeeH.Update)
		api.DELETE("/employees/:id", employeeH.Delete)
		api.POST("/employees/:id/check-in", attendanceH.CheckIn)
		api.POST("/employees/:id/check-out", attendanceH.CheckOut)

		api.GET("/attendance", attendanceH.Today)
		api.GET("/attendance/:employeeId", attendanceH.ForEmployee)
		api.POST("/attendance", attendanceH.AddRecord)

		api.GET("/departments", departmentH.List)

		api.GET("/reports/monthly", reportH.Monthly)
		api.GET("/reports/departments", reportH.Departments)
		api.GET("/reports/summary", reportH.Summary)
		api.GET("/reports/export", reportH.Export)
		api.POST("/reports/email", reportH.Email)

		api.GET("/settings", settingsH.Get)
		api.PUT("/settings", settingsH.Save)
	}

	return r
}
