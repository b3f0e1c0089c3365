package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	TimesheetPending  = "pending"
	TimesheetApproved = "approved"
	TimesheetRejected = "rejected"
)

type TimesheetEntry struct {
	gorm.Model
	WorkerID uint   `json:"worker_id" gorm:"not null;index:idx_timesheet_worker_date"`
	Date     string `json:"date" gorm:"type:varchar(10);not null;index:idx_timesheet_worker_date"`

	StartTime    string  `json:"start_time" gorm:"type:varchar(5);not null"` // "07:00"
	EndTime      string  `json:"end_time" gorm:"type:varchar(5);not null"`
	BreakMinutes int     `json:"break_minutes" gorm:"not null;default:0"`
	TotalHours   float64 `json:"total_hours" gorm:"not null"`
	WeekNumber   int     `json:"week_number" gorm:"not null;index"`

	Status     string     `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	ApprovedBy *uint      `json:"approved_by"`
	ApprovedAt *time.Time `json:"approved_at"`
	EditedBy   *uint      `json:"edited_by"`
	EditedAt   *time.Time `json:"edited_at"`

	Worker Worker `json:"-" gorm:"foreignKey:WorkerID"`
}

// ComputeTotalHours derives the billable hours of one entry from its clock
// times. Overnight shifts (end before start) wrap by adding 24h before the
// break is subtracted. A negative result is an InvalidTimeRange error, not
// a silent clamp to zero.
func ComputeTotalHours(startTime, endTime string, breakMinutes int) (float64, error) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return 0, fmt.Errorf("%w: bad start time %q", ErrInvalidTimeRange, startTime)
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return 0, fmt.Errorf("%w: bad end time %q", ErrInvalidTimeRange, endTime)
	}

	worked := end.Sub(start)
	if worked < 0 {
		worked += 24 * time.Hour
	}
	worked -= time.Duration(breakMinutes) * time.Minute
	if worked < 0 {
		return 0, fmt.Errorf("%w: break longer than shift", ErrInvalidTimeRange)
	}
	return worked.Hours(), nil
}

// Approve moves a pending entry to approved. There is no way back out of
// approved or rejected.
func (t *TimesheetEntry) Approve(by uint, at time.Time) error {
	if t.Status != TimesheetPending {
		return fmt.Errorf("%w: cannot approve a %s timesheet", ErrInvalidTransition, t.Status)
	}
	t.Status = TimesheetApproved
	t.ApprovedBy = &by
	t.ApprovedAt = &at
	return nil
}

func (t *TimesheetEntry) Reject(by uint, at time.Time) error {
	if t.Status != TimesheetPending {
		return fmt.Errorf("%w: cannot reject a %s timesheet", ErrInvalidTransition, t.Status)
	}
	t.Status = TimesheetRejected
	t.ApprovedBy = &by
	t.ApprovedAt = &at
	return nil
}

// MarkEdited stamps who touched the content. Edits never change status.
func (t *TimesheetEntry) MarkEdited(by uint, at time.Time) {
	t.EditedBy = &by
	t.EditedAt = &at
}
