package repository

import (
	"errors"

	"fieldops-backend/internal/model"

	"gorm.io/gorm"
)

type VacationRepository interface {
	Create(period *model.VacationPeriod) error
	// EnsureSingleDay inserts a one-day period for date unless some
	// existing period already covers it. Replaying the same vacation mark
	// is a no-op, never a duplicate.
	EnsureSingleDay(workerID uint, date string, notes string) (*model.VacationPeriod, error)
	CoveringDate(workerID uint, date string) (*model.VacationPeriod, error)
	ListByWorker(workerID uint) ([]model.VacationPeriod, error)
	Delete(id uint) error
}

type vacationRepository struct {
	db *gorm.DB
}

func NewVacationRepository(db *gorm.DB) VacationRepository {
	return &vacationRepository{db}
}

func (r *vacationRepository) Create(period *model.VacationPeriod) error {
	return r.db.Create(period).Error
}

func (r *vacationRepository) EnsureSingleDay(workerID uint, date string, notes string) (*model.VacationPeriod, error) {
	var period model.VacationPeriod
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("worker_id = ? AND start_date <= ? AND end_date >= ?", workerID, date, date).
			First(&period).Error
		if err == nil {
			return nil // already covered, keep the existing period
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		period = model.VacationPeriod{
			WorkerID:  workerID,
			StartDate: date,
			EndDate:   date,
			Notes:     notes,
		}
		return tx.Create(&period).Error
	})
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *vacationRepository) CoveringDate(workerID uint, date string) (*model.VacationPeriod, error) {
	var period model.VacationPeriod
	err := r.db.Where("worker_id = ? AND start_date <= ? AND end_date >= ?", workerID, date, date).
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *vacationRepository) ListByWorker(workerID uint) ([]model.VacationPeriod, error) {
	var list []model.VacationPeriod
	err := r.db.Where("worker_id = ?", workerID).Order("start_date desc").Find(&list).Error
	return list, err
}

func (r *vacationRepository) Delete(id uint) error {
	return r.db.Delete(&model.VacationPeriod{}, id).Error
}
