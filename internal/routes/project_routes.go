package routes

import (
	"fieldops-backend/internal/handler"
	"fieldops-backend/internal/middleware"
	"fieldops-backend/internal/model"
	"fieldops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProjectRoutes(app *fiber.App, db *gorm.DB) {
	projectRepo := repository.NewProjectRepository(db)
	hdl := handler.NewProjectHandler(projectRepo)

	api := app.Group("/api/projects", middleware.Auth)

	api.Get("/", hdl.List)
	api.Get("/:id/areas", hdl.ListWorkAreas)

	admin := api.Group("", middleware.RequireRole(model.RoleForeman, model.RoleSupervisor))
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.Delete)
	admin.Post("/:id/areas", hdl.AddWorkArea)
}
