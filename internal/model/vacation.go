package model

import "gorm.io/gorm"

type VacationPeriod struct {
	gorm.Model
	WorkerID  uint   `json:"worker_id" gorm:"not null;index"`
	StartDate string `json:"start_date" gorm:"type:varchar(10);not null"`
	EndDate   string `json:"end_date" gorm:"type:varchar(10);not null"`
	Notes     string `json:"notes" gorm:"size:255"`

	Worker Worker `json:"-" gorm:"foreignKey:WorkerID"`
}

// Covers reports whether date (YYYY-MM-DD) falls inside the period.
// Plain string comparison is correct for ISO dates.
func (v *VacationPeriod) Covers(date string) bool {
	return v.StartDate <= date && date <= v.EndDate
}
