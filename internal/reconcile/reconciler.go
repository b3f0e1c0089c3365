// Package reconcile derives the single daily attendance status per worker
// from the independent write paths: PIN login, project sign-in/out,
// timesheet submission, and manual/vacation marking. Every path upserts
// the same (worker, date) record; replaying an event never creates a
// second row and never un-sets a field another writer already filled.
package reconcile

import (
	"fmt"
	"time"

	"fieldops-backend/internal/clock"
	"fieldops-backend/internal/model"
	"fieldops-backend/internal/repository"
)

type Reconciler struct {
	attendance repository.AttendanceRepository
	sessions   repository.SignInRepository
	vacations  repository.VacationRepository
	clock      *clock.Clock
}

func New(attendance repository.AttendanceRepository, sessions repository.SignInRepository, vacations repository.VacationRepository, clk *clock.Clock) *Reconciler {
	return &Reconciler{
		attendance: attendance,
		sessions:   sessions,
		vacations:  vacations,
		clock:      clk,
	}
}

// Reconcile applies one event and returns the resulting daily record.
// Status is last-event-wins; check-in/out times and locations are
// first-write-wins. All failures are local to one (worker, date) unit.
func (r *Reconciler) Reconcile(event Event) (*model.AttendanceRecord, error) {
	switch e := event.(type) {
	case LoginObserved:
		return r.attendance.Merge(e.WorkerID, r.clock.BusinessDate(e.At), repository.AttendanceWrite{
			Status:  repository.StatusOpPresent,
			CheckIn: timePtr(e.At),
			SignIn:  e.Location,
		})

	case SignedIn:
		date := r.clock.BusinessDate(e.At)
		// Session exclusivity comes first: a second tap while a session
		// is open must fail before it touches the attendance row.
		if _, err := r.sessions.OpenSession(e.WorkerID, e.ProjectID, date, e.At); err != nil {
			return nil, err
		}
		return r.attendance.Merge(e.WorkerID, date, repository.AttendanceWrite{
			Status:  repository.StatusOpPresent,
			CheckIn: timePtr(e.At),
			SignIn:  e.Location,
		})

	case SignedOut:
		date := r.clock.BusinessDate(e.At)
		if _, err := r.sessions.CloseLatest(e.WorkerID, date, e.At); err != nil {
			return nil, err
		}
		return r.attendance.Merge(e.WorkerID, date, repository.AttendanceWrite{
			Status:   repository.StatusOpPresent,
			CheckOut: timePtr(e.At),
			SignOut:  e.Location,
		})

	case TimesheetSubmitted:
		checkIn, err := r.clockTimeOn(e.Date, e.StartTime)
		if err != nil {
			return nil, err
		}
		return r.attendance.Merge(e.WorkerID, e.Date, repository.AttendanceWrite{
			Status:  repository.StatusOpPresent,
			CheckIn: checkIn,
		})

	case ManualToggle:
		return r.attendance.Merge(e.WorkerID, e.Date, repository.AttendanceWrite{
			Status: repository.StatusOpToggle,
		})

	case VacationMarked:
		rec, err := r.attendance.Merge(e.WorkerID, e.Date, repository.AttendanceWrite{
			Status: repository.StatusOpVacation,
		})
		if err != nil {
			return nil, err
		}
		if _, err := r.vacations.EnsureSingleDay(e.WorkerID, e.Date, e.Notes); err != nil {
			return nil, err
		}
		return rec, nil

	default:
		return nil, fmt.Errorf("unknown reconcile event %T", event)
	}
}

// clockTimeOn anchors a wall-clock time ("07:00") on a business date in
// the site timezone.
func (r *Reconciler) clockTimeOn(date, clockTime string) (*time.Time, error) {
	if clockTime == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(clock.DateLayout+" 15:04", date+" "+clockTime, r.clock.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %q on %q", model.ErrInvalidTimeRange, clockTime, date)
	}
	return &t, nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
