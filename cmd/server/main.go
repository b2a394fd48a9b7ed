package main

import (
	"fmt"

	"asistencia/internal/config"
	"asistencia/internal/handler"
	"asistencia/internal/repository"
	"asistencia/internal/service"
	"asistencia/pkg/clock"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetServerConfig()
	logrus.Info("Config initialized...")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite limitation
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// Foreign key enforcement must be switched on per connection in SQLite
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	employeeRepo, err := repository.NewGormEmployeeRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create employee repository")
	}

	attendanceRepo, err := repository.NewGormAttendanceRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create attendance repository")
	}

	departmentRepo, err := repository.NewGormDepartmentRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create department repository")
	}

	if err := departmentRepo.Seed(service.ReferenceDepartments()); err != nil {
		logrus.WithError(err).Fatal("Failed to seed departments")
	}

	clk := clock.System{}

	if cfg.SeedDemoData {
		if err := service.SeedDemoData(employeeRepo, attendanceRepo, clk); err != nil {
			logrus.Infof("Warning: Failed to seed demo data: %v", err)
		}
	}

	employeeService := service.NewEmployeeService(employeeRepo, attendanceRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, employeeRepo, clk)
	statsService := service.NewStatsService(attendanceRepo, employeeRepo, clk)
	reportService := service.NewReportService(attendanceRepo, employeeRepo)
	settingsService := service.NewSettingsService()
	authService := service.NewAuthService(cfg)
	mailer := service.NewReportMailer(cfg)

	r := handler.NewRouter(
		cfg.JWTSecret,
		handler.NewAuthHandler(authService),
		handler.NewEmployeeHandler(employeeService),
		handler.NewAttendanceHandler(attendanceService, statsService),
		handler.NewReportHandler(reportService, settingsService, mailer),
		handler.NewSettingsHandler(settingsService),
		handler.NewDepartmentHandler(departmentRepo),
	)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logrus.Infof("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatal("Server failed:", err)
	}
}
