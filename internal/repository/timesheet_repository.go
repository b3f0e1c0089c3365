package repository

import (
	"fieldops-backend/internal/model"

	"gorm.io/gorm"
)

type TimesheetRepository interface {
	Create(entry *model.TimesheetEntry) error
	FindByID(id uint) (*model.TimesheetEntry, error)
	Update(entry *model.TimesheetEntry) error
	Delete(id uint) error
	// ListByWorkerAndWeek returns entries in date order, submission order
	// within a date. The overtime allocator depends on that ordering.
	ListByWorkerAndWeek(workerID uint, week int, year string) ([]model.TimesheetEntry, error)
	ListByWeek(week int, year string) ([]model.TimesheetEntry, error)
	ListByWorkerAndDate(workerID uint, date string) ([]model.TimesheetEntry, error)
}

type timesheetRepository struct {
	db *gorm.DB
}

func NewTimesheetRepository(db *gorm.DB) TimesheetRepository {
	return &timesheetRepository{db}
}

func (r *timesheetRepository) Create(entry *model.TimesheetEntry) error {
	return r.db.Create(entry).Error
}

func (r *timesheetRepository) FindByID(id uint) (*model.TimesheetEntry, error) {
	var entry model.TimesheetEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *timesheetRepository) Update(entry *model.TimesheetEntry) error {
	return r.db.Save(entry).Error
}

func (r *timesheetRepository) Delete(id uint) error {
	return r.db.Delete(&model.TimesheetEntry{}, id).Error
}

func (r *timesheetRepository) ListByWorkerAndWeek(workerID uint, week int, year string) ([]model.TimesheetEntry, error) {
	var list []model.TimesheetEntry
	err := r.db.Where("worker_id = ? AND week_number = ? AND YEAR(date) = ?", workerID, week, year).
		Order("date asc, id asc").Find(&list).Error
	return list, err
}

func (r *timesheetRepository) ListByWeek(week int, year string) ([]model.TimesheetEntry, error) {
	var list []model.TimesheetEntry
	err := r.db.Preload("Worker").Where("week_number = ? AND YEAR(date) = ?", week, year).
		Order("worker_id asc, date asc, id asc").Find(&list).Error
	return list, err
}

func (r *timesheetRepository) ListByWorkerAndDate(workerID uint, date string) ([]model.TimesheetEntry, error) {
	var list []model.TimesheetEntry
	err := r.db.Where("worker_id = ? AND date = ?", workerID, date).
		Order("id asc").Find(&list).Error
	return list, err
}
