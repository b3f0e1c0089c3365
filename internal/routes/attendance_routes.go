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

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, clk *clock.Clock) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	sessionRepo := repository.NewSignInRepository(db)
	hdl := handler.NewAttendanceHandler(newReconciler(db, clk), attendanceRepo, sessionRepo, clk)

	api := app.Group("/api/attendance", middleware.Auth)

	api.Post("/signin", hdl.SignIn)
	api.Post("/signout", hdl.SignOut)
	api.Get("/status", hdl.Status)
	api.Get("/roster", hdl.Roster)

	// Backfill/admin paths take an explicit date and are gated.
	api.Post("/toggle", middleware.RequireRole(model.RoleForeman, model.RoleSupervisor), hdl.Toggle)
	api.Post("/vacation", middleware.RequireRole(model.RoleForeman, model.RoleSupervisor), hdl.MarkVacation)
}
