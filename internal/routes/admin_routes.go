package routes

import (
	"fieldops-backend/internal/clock"
	"fieldops-backend/internal/handler"
	"fieldops-backend/internal/middleware"
	"fieldops-backend/internal/model"
	"fieldops-backend/internal/repository"
	"fieldops-backend/internal/sweep"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAdminRoutes(app *fiber.App, db *gorm.DB, clk *clock.Clock) {
	sweeper := sweep.New(
		repository.NewSignInRepository(db),
		repository.NewAttendanceRepository(db),
		clk,
	)
	hdl := handler.NewSweepHandler(sweeper, clk)

	api := app.Group("/api/admin", middleware.Auth, middleware.RequireRole(model.RoleSupervisor))

	api.Post("/sweep", hdl.Run)
}
