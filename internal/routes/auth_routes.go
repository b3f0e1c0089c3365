package routes

import (
	"fieldops-backend/internal/clock"
	"fieldops-backend/internal/handler"
	"fieldops-backend/internal/middleware"
	"fieldops-backend/internal/model"
	"fieldops-backend/internal/reconcile"
	"fieldops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, clk *clock.Clock) {
	workerRepo := repository.NewWorkerRepository(db)
	reconciler := newReconciler(db, clk)
	hdl := handler.NewAuthHandler(workerRepo, reconciler)

	api := app.Group("/api/auth")

	api.Post("/login", hdl.Login)
	api.Post("/workers", middleware.Auth, middleware.RequireRole(model.RoleSupervisor), hdl.CreateWorker)
	api.Get("/workers", middleware.Auth, hdl.ListWorkers)
	api.Put("/pin", middleware.Auth, hdl.ChangePIN)
}

// newReconciler wires the shared core for every route group that emits
// attendance events.
func newReconciler(db *gorm.DB, clk *clock.Clock) *reconcile.Reconciler {
	return reconcile.New(
		repository.NewAttendanceRepository(db),
		repository.NewSignInRepository(db),
		repository.NewVacationRepository(db),
		clk,
	)
}
