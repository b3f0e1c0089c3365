package reconcile

import (
	"time"

	"fieldops-backend/internal/model"
)

// Event is one of the four independent write paths that feed a worker's
// daily attendance, plus the two admin paths. Handlers translate an HTTP
// payload into exactly one of these; nothing else couples the core to the
// transport layer.
type Event interface {
	isEvent()
}

// LoginObserved fires when a worker logs in with their PIN. The business
// date is derived from At, never from the client.
type LoginObserved struct {
	WorkerID uint
	At       time.Time
	Location *model.Location
}

// SignedIn is an explicit sign-in to a project.
type SignedIn struct {
	WorkerID  uint
	ProjectID uint
	At        time.Time
	Location  *model.Location
}

type SignedOut struct {
	WorkerID uint
	At       time.Time
	Location *model.Location
}

// TimesheetSubmitted carries an explicit work date because timesheets may
// be filed for past days.
type TimesheetSubmitted struct {
	WorkerID  uint
	Date      string
	StartTime string // "15:04"
}

// ManualToggle flips present<->absent for an explicit (backfill) date.
type ManualToggle struct {
	WorkerID uint
	Date     string
}

// VacationMarked forces vacation status and records a matching single-day
// vacation period.
type VacationMarked struct {
	WorkerID uint
	Date     string
	Notes    string
}

func (LoginObserved) isEvent()      {}
func (SignedIn) isEvent()           {}
func (SignedOut) isEvent()          {}
func (TimesheetSubmitted) isEvent() {}
func (ManualToggle) isEvent()       {}
func (VacationMarked) isEvent()     {}
