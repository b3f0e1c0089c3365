package database

import (
	"log"

	"fieldops-backend/internal/model"
	"fieldops-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Demo project with a couple of work areas
	project := model.Project{
		Name:     "Riverside Tower",
		Address:  "120 Queens Quay E",
		Lat:      43.6453,
		Lng:      -79.3687,
		IsActive: true,
	}
	db.FirstOrCreate(&project, model.Project{Name: project.Name})

	areas := []model.WorkArea{
		{ProjectID: project.ID, Name: "Foundation", Floor: "B1"},
		{ProjectID: project.ID, Name: "East Wing Framing", Floor: "3"},
	}
	for _, a := range areas {
		db.FirstOrCreate(&a, model.WorkArea{ProjectID: a.ProjectID, Name: a.Name})
	}

	// 2. First supervisor account so somebody can create the real crew
	hashedPIN, _ := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	supervisor := model.Worker{
		Name:    "Site Supervisor",
		NameKey: repository.NameKey("Site Supervisor"),
		Role:    model.RoleSupervisor,
		PIN:     string(hashedPIN),
	}
	result := db.FirstOrCreate(&supervisor, model.Worker{NameKey: supervisor.NameKey})
	if result.Error != nil {
		log.Printf("could not seed supervisor: %v", result.Error)
		return
	}

	log.Println("Seeded supervisor 'Site Supervisor' with default PIN 1234, change it after first login")
}
