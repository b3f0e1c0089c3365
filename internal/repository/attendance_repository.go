package repository

import (
	"errors"
	"time"

	"fieldops-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatusOp says what an attendance write wants done with the status column.
type StatusOp string

const (
	StatusOpPresent  StatusOp = "present"
	StatusOpVacation StatusOp = "vacation"
	StatusOpToggle   StatusOp = "toggle" // flips present<->absent on an existing row
)

// AttendanceWrite is one writer's contribution to the daily record.
// Status is last-write-wins; every other field is first-write-wins and
// only fills a column that is still NULL.
type AttendanceWrite struct {
	Status   StatusOp
	CheckIn  *time.Time
	CheckOut *time.Time
	SignIn   *model.Location
	SignOut  *model.Location
}

type AttendanceRepository interface {
	// Merge atomically inserts-or-updates the one record for (worker, date).
	Merge(workerID uint, date string, write AttendanceWrite) (*model.AttendanceRecord, error)
	GetByWorkerAndDate(workerID uint, date string) (*model.AttendanceRecord, error)
	ListByDate(date string) ([]model.AttendanceRecord, error)
	SetCheckOutIfNull(workerID uint, date string, at time.Time) error
	CountByDateAndStatus(date string, status string) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Merge(workerID uint, date string, write AttendanceWrite) (*model.AttendanceRecord, error) {
	rec := model.AttendanceRecord{
		WorkerID:     workerID,
		Date:         date,
		Status:       createStatus(write.Status),
		CheckInTime:  write.CheckIn,
		CheckOutTime: write.CheckOut,
	}
	if write.SignIn != nil {
		rec.SignInLat = &write.SignIn.Lat
		rec.SignInLng = &write.SignIn.Lng
		rec.SignInAddr = &write.SignIn.Address
	}
	if write.SignOut != nil {
		rec.SignOutLat = &write.SignOut.Lat
		rec.SignOutLng = &write.SignOut.Lng
		rec.SignOutAddr = &write.SignOut.Address
	}

	// Single INSERT ... ON DUPLICATE KEY UPDATE against the unique
	// (worker_id, date) index. A separate existence check followed by an
	// insert would race against a double tap from the same worker; the
	// upsert serializes on the row lock instead.
	assignments := map[string]interface{}{
		"status":     statusAssignment(write.Status),
		"updated_at": time.Now(),
	}
	// In ON DUPLICATE KEY UPDATE, the bare column is the stored value and
	// VALUES(col) the incoming one, so COALESCE keeps the first write.
	for _, col := range []string{
		"check_in_time", "check_out_time",
		"sign_in_lat", "sign_in_lng", "sign_in_addr",
		"sign_out_lat", "sign_out_lng", "sign_out_addr",
	} {
		assignments[col] = gorm.Expr("COALESCE(" + col + ", VALUES(" + col + "))")
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "worker_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, model.ErrConcurrentWrite
		}
		return nil, err
	}

	return r.GetByWorkerAndDate(workerID, date)
}

func createStatus(op StatusOp) string {
	if op == StatusOpVacation {
		return model.StatusVacation
	}
	// A toggle on a day with no record yet means "mark present".
	return model.StatusPresent
}

func statusAssignment(op StatusOp) interface{} {
	switch op {
	case StatusOpVacation:
		return model.StatusVacation
	case StatusOpToggle:
		return gorm.Expr("IF(status = 'present', 'absent', 'present')")
	default:
		return model.StatusPresent
	}
}

func (r *attendanceRepository) GetByWorkerAndDate(workerID uint, date string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := r.db.Where("worker_id = ? AND date = ?", workerID, date).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *attendanceRepository) ListByDate(date string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	err := r.db.Preload("Worker").Where("date = ?", date).Order("worker_id asc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) SetCheckOutIfNull(workerID uint, date string, at time.Time) error {
	return r.db.Model(&model.AttendanceRecord{}).
		Where("worker_id = ? AND date = ? AND check_out_time IS NULL", workerID, date).
		Update("check_out_time", at).Error
}

func (r *attendanceRepository) CountByDateAndStatus(date string, status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.AttendanceRecord{}).
		Where("date = ? AND status = ?", date, status).Count(&count).Error
	return count, err
}
