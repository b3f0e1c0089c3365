package model

import "gorm.io/gorm"

type Project struct {
	gorm.Model
	Name     string  `json:"name" gorm:"not null"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	IsActive bool    `json:"is_active" gorm:"default:true"`

	WorkAreas []WorkArea `json:"work_areas" gorm:"foreignKey:ProjectID"`
}

type WorkArea struct {
	gorm.Model
	ProjectID uint   `json:"project_id" gorm:"not null;index"`
	Name      string `json:"name" gorm:"not null"`
	Floor     string `json:"floor"`
	Notes     string `json:"notes" gorm:"size:255"`
}
