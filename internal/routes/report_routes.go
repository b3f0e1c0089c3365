package routes

import (
	"fieldops-backend/internal/clock"
	"fieldops-backend/internal/handler"
	"fieldops-backend/internal/middleware"
	"fieldops-backend/internal/model"
	"fieldops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB, clk *clock.Clock) {
	hdl := handler.NewReportHandler(
		repository.NewTimesheetRepository(db),
		repository.NewAttendanceRepository(db),
		repository.NewWorkerRepository(db),
		clk,
	)

	api := app.Group("/api/reports", middleware.Auth, middleware.RequireRole(model.RoleForeman, model.RoleSupervisor))

	api.Get("/weekly", hdl.WeeklySummary)
	api.Get("/daily", hdl.DailyStats)
}
