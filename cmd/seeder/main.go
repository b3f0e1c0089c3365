package main

import (
	"fmt"
	"log"

	"fieldops-backend/config"
	"fieldops-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Seeding database...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment variables")
	}

	config.ConnectDB()
	database.SeedAll(config.DB)

	fmt.Println("Seeding done!")
}
