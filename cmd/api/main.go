package main

import (
	"log"

	"fieldops-backend/config"
	"fieldops-backend/internal/clock"
	"fieldops-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment variables")
	}

	config.ConnectDB()
	clk := clock.MustNew(config.SiteTimezone())

	app := fiber.New()

	app.Use(cors.New())
	app.Use(logger.New())

	// Uploaded photos/documents are served straight from disk; the API
	// only hands out the URL.
	app.Static("/uploads", "./uploads")

	routes.SetupAuthRoutes(app, config.DB, clk)
	routes.SetupAttendanceRoutes(app, config.DB, clk)
	routes.SetupTimesheetRoutes(app, config.DB, clk)
	routes.SetupProjectRoutes(app, config.DB)
	routes.SetupPhotoRoutes(app, config.DB, clk)
	routes.SetupReportRoutes(app, config.DB, clk)
	routes.SetupAdminRoutes(app, config.DB, clk)

	port := config.GetEnv("PORT", "3000")
	log.Printf("Server ready on :%s (site timezone %s)", port, config.SiteTimezone())
	app.Listen(":" + port)
}
