package repository

import (
	"errors"
	"strings"

	"fieldops-backend/internal/model"

	"gorm.io/gorm"
)

type WorkerRepository interface {
	Create(worker *model.Worker) error
	FindByID(id uint) (*model.Worker, error)
	ResolveByName(name string) (*model.Worker, error)
	GetAll() ([]model.Worker, error)
	Update(worker *model.Worker) error
}

type workerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &workerRepository{db}
}

// NameKey canonicalizes a display name for the case-insensitive unique
// lookup. Resolution happens once here at the boundary; everything else
// keys on the numeric worker id.
func NameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func (r *workerRepository) Create(worker *model.Worker) error {
	worker.NameKey = NameKey(worker.Name)
	return r.db.Create(worker).Error
}

func (r *workerRepository) FindByID(id uint) (*model.Worker, error) {
	var worker model.Worker
	if err := r.db.First(&worker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrWorkerNotFound
		}
		return nil, err
	}
	return &worker, nil
}

func (r *workerRepository) ResolveByName(name string) (*model.Worker, error) {
	var worker model.Worker
	err := r.db.Where("name_key = ?", NameKey(name)).First(&worker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrWorkerNotFound
		}
		return nil, err
	}
	return &worker, nil
}

func (r *workerRepository) GetAll() ([]model.Worker, error) {
	var workers []model.Worker
	err := r.db.Order("name asc").Find(&workers).Error
	return workers, err
}

func (r *workerRepository) Update(worker *model.Worker) error {
	worker.NameKey = NameKey(worker.Name)
	return r.db.Save(worker).Error
}
