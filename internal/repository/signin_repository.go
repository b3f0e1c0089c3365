package repository

import (
	"errors"
	"fmt"
	"time"

	"fieldops-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SignInRepository interface {
	// OpenSession starts a new session; model.ErrAlreadySignedIn if one
	// is still open for (worker, date).
	OpenSession(workerID, projectID uint, date string, start time.Time) (*model.SignInSession, error)
	// CloseLatest closes the most recent open session for (worker, date);
	// model.ErrNoActiveSignIn if there is none.
	CloseLatest(workerID uint, date string, end time.Time) (*model.SignInSession, error)
	GetOpen(workerID uint, date string) (*model.SignInSession, error)
	ListByWorkerAndDate(workerID uint, date string) ([]model.SignInSession, error)
	ListOpenBefore(date string) ([]model.SignInSession, error)
	CloseByID(id uint, end time.Time) error
}

type signInRepository struct {
	db *gorm.DB
}

func NewSignInRepository(db *gorm.DB) SignInRepository {
	return &signInRepository{db}
}

func openKey(workerID uint, date string) string {
	return fmt.Sprintf("%d:%s", workerID, date)
}

func (r *signInRepository) OpenSession(workerID, projectID uint, date string, start time.Time) (*model.SignInSession, error) {
	key := openKey(workerID, date)
	session := model.SignInSession{
		WorkerID:  workerID,
		ProjectID: projectID,
		Date:      date,
		StartTime: start,
		OpenKey:   &key,
	}
	// The unique index on open_key is the real guard here. Two concurrent
	// taps both reach this insert; the loser gets a duplicate-key error,
	// never a second open session.
	if err := r.db.Create(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, model.ErrAlreadySignedIn
		}
		return nil, err
	}
	return &session, nil
}

func (r *signInRepository) CloseLatest(workerID uint, date string, end time.Time) (*model.SignInSession, error) {
	var session model.SignInSession
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("worker_id = ? AND date = ? AND end_time IS NULL", workerID, date).
			Order("start_time desc").
			First(&session).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ErrNoActiveSignIn
			}
			return err
		}
		return tx.Model(&session).Updates(map[string]interface{}{
			"end_time": end,
			"open_key": nil,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	session.EndTime = &end
	session.OpenKey = nil
	return &session, nil
}

func (r *signInRepository) GetOpen(workerID uint, date string) (*model.SignInSession, error) {
	var session model.SignInSession
	err := r.db.Where("worker_id = ? AND date = ? AND end_time IS NULL", workerID, date).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNoActiveSignIn
		}
		return nil, err
	}
	return &session, nil
}

func (r *signInRepository) ListByWorkerAndDate(workerID uint, date string) ([]model.SignInSession, error) {
	var list []model.SignInSession
	err := r.db.Where("worker_id = ? AND date = ?", workerID, date).
		Order("start_time asc").Find(&list).Error
	return list, err
}

// ListOpenBefore returns every session from a business date before the
// given one that never got signed out. This is the midnight sweep's input.
func (r *signInRepository) ListOpenBefore(date string) ([]model.SignInSession, error) {
	var list []model.SignInSession
	err := r.db.Where("date < ? AND end_time IS NULL", date).
		Order("date asc, worker_id asc").Find(&list).Error
	return list, err
}

func (r *signInRepository) CloseByID(id uint, end time.Time) error {
	return r.db.Model(&model.SignInSession{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"end_time": end,
			"open_key": nil,
		}).Error
}
