package repository

import (
	"fieldops-backend/internal/model"

	"gorm.io/gorm"
)

type PhotoRepository interface {
	Create(photo *model.SitePhoto) error
	List(projectID uint, date string) ([]model.SitePhoto, error)
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db}
}

func (r *photoRepository) Create(photo *model.SitePhoto) error {
	return r.db.Create(photo).Error
}

func (r *photoRepository) List(projectID uint, date string) ([]model.SitePhoto, error) {
	q := r.db.Order("created_at desc")
	if projectID != 0 {
		q = q.Where("project_id = ?", projectID)
	}
	if date != "" {
		q = q.Where("date = ?", date)
	}
	var photos []model.SitePhoto
	err := q.Find(&photos).Error
	return photos, err
}
