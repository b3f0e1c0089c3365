package model

import "time"

// SignInSession is one stint on-site: a start time and, once the worker
// signs out (or the midnight sweep closes it), an end time. EndTime == nil
// means the session is open.
type SignInSession struct {
	ID        uint   `json:"id" gorm:"primarykey"`
	WorkerID  uint   `json:"worker_id" gorm:"not null;index"`
	ProjectID uint   `json:"project_id" gorm:"not null"` // opaque context tag, not interpreted here
	Date      string `json:"date" gorm:"type:varchar(10);not null;index"`

	StartTime time.Time  `json:"start_time" gorm:"not null"`
	EndTime   *time.Time `json:"end_time"`

	// OpenKey holds "workerID:date" while the session is open and NULL
	// once closed. MySQL unique indexes ignore NULLs, so this enforces
	// "at most one open session per worker per date" in the database
	// instead of a racy read-then-write check in the application.
	OpenKey *string `json:"-" gorm:"size:32;uniqueIndex"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Worker  Worker  `json:"-" gorm:"foreignKey:WorkerID"`
	Project Project `json:"-" gorm:"foreignKey:ProjectID"`
}

func (SignInSession) TableName() string {
	return "sign_in_sessions"
}

func (s *SignInSession) Open() bool {
	return s.EndTime == nil
}
