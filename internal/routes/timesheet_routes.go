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

func SetupTimesheetRoutes(app *fiber.App, db *gorm.DB, clk *clock.Clock) {
	timesheetRepo := repository.NewTimesheetRepository(db)
	hdl := handler.NewTimesheetHandler(timesheetRepo, newReconciler(db, clk), clk)

	api := app.Group("/api/timesheets", middleware.Auth)

	api.Post("/", hdl.Submit)
	api.Get("/", hdl.List)
	api.Put("/:id/approve", middleware.RequireRole(model.RoleForeman, model.RoleSupervisor), hdl.Approve)
	api.Put("/:id/reject", middleware.RequireRole(model.RoleForeman, model.RoleSupervisor), hdl.Reject)
	api.Put("/:id", hdl.Edit)
	api.Delete("/:id", hdl.Delete)
}
