package routes

import (
	"fieldops-backend/internal/clock"
	"fieldops-backend/internal/handler"
	"fieldops-backend/internal/middleware"
	"fieldops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPhotoRoutes(app *fiber.App, db *gorm.DB, clk *clock.Clock) {
	photoRepo := repository.NewPhotoRepository(db)
	hdl := handler.NewPhotoHandler(photoRepo, clk)

	api := app.Group("/api/photos", middleware.Auth)

	api.Post("/", hdl.Upload)
	api.Get("/", hdl.List)
}
