package config

import (
	"fmt"
	"log"

	"fieldops-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=UTC
	// loc=UTC on purpose: the site timezone is applied by the clock resolver,
	// never by the driver.
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "fieldops_db"),
	)

	// TranslateError so duplicate-key violations come back as
	// gorm.ErrDuplicatedKey; the reconciler relies on that to turn a
	// double sign-in into a domain error instead of a raw SQL error.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect to database!")
	}

	log.Println("Database connection established")

	// All schema evolution happens here, once at startup. Handlers never
	// touch the schema.
	db.AutoMigrate(&model.Worker{})
	db.AutoMigrate(&model.Project{})
	db.AutoMigrate(&model.WorkArea{})
	db.AutoMigrate(&model.AttendanceRecord{})
	db.AutoMigrate(&model.SignInSession{})
	db.AutoMigrate(&model.TimesheetEntry{})
	db.AutoMigrate(&model.VacationPeriod{})
	db.AutoMigrate(&model.SitePhoto{})

	DB = db
}
