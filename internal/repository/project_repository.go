package repository

import (
	"fieldops-backend/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(project *model.Project) error
	FindByID(id uint) (*model.Project, error)
	GetAll() ([]model.Project, error)
	Update(project *model.Project) error
	Delete(id uint) error
	AddWorkArea(area *model.WorkArea) error
	ListWorkAreas(projectID uint) ([]model.WorkArea, error)
	DeleteWorkArea(id uint) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db}
}

func (r *projectRepository) Create(project *model.Project) error {
	return r.db.Create(project).Error
}

func (r *projectRepository) FindByID(id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.Preload("WorkAreas").First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) GetAll() ([]model.Project, error) {
	var projects []model.Project
	err := r.db.Preload("WorkAreas").Where("is_active = ?", true).Order("name asc").Find(&projects).Error
	return projects, err
}

func (r *projectRepository) Update(project *model.Project) error {
	return r.db.Save(project).Error
}

func (r *projectRepository) Delete(id uint) error {
	return r.db.Delete(&model.Project{}, id).Error
}

func (r *projectRepository) AddWorkArea(area *model.WorkArea) error {
	return r.db.Create(area).Error
}

func (r *projectRepository) ListWorkAreas(projectID uint) ([]model.WorkArea, error) {
	var areas []model.WorkArea
	err := r.db.Where("project_id = ?", projectID).Order("name asc").Find(&areas).Error
	return areas, err
}

func (r *projectRepository) DeleteWorkArea(id uint) error {
	return r.db.Delete(&model.WorkArea{}, id).Error
}
