// Package sweep force-closes sign-in sessions left open past the end of
// their business date. It is invoked by an external scheduler (cron) or
// the manual admin endpoint; there is no in-process timer.
package sweep

import (
	"fmt"
	"log"

	"fieldops-backend/internal/clock"
	"fieldops-backend/internal/repository"
)

type Report struct {
	AsOfDate        string   `json:"as_of_date"`
	ClosedSessions  int      `json:"closed_sessions"`
	AffectedWorkers []uint   `json:"affected_workers"`
	Failures        []string `json:"failures"`
}

type Sweeper struct {
	sessions   repository.SignInRepository
	attendance repository.AttendanceRepository
	clock      *clock.Clock
}

func New(sessions repository.SignInRepository, attendance repository.AttendanceRepository, clk *clock.Clock) *Sweeper {
	return &Sweeper{sessions: sessions, attendance: attendance, clock: clk}
}

// Sweep closes every session still open from a business date before
// asOfDate, stamping 23:59:59 of the session's own date as its end and as
// the worker's checkout if that is still null. Running it again for the
// same date closes nothing and is not an error. One worker's failure
// never cancels the batch; failures are aggregated into the report and
// retried at the next scheduled run.
func (s *Sweeper) Sweep(asOfDate string) (*Report, error) {
	report := &Report{AsOfDate: asOfDate}

	stale, err := s.sessions.ListOpenBefore(asOfDate)
	if err != nil {
		return nil, fmt.Errorf("listing stale sessions: %w", err)
	}

	affected := make(map[uint]bool)
	for _, session := range stale {
		end, err := s.clock.EndOfDay(session.Date)
		if err != nil {
			report.Failures = append(report.Failures,
				fmt.Sprintf("session %d: bad date %q: %v", session.ID, session.Date, err))
			continue
		}
		if err := s.sessions.CloseByID(session.ID, end); err != nil {
			report.Failures = append(report.Failures,
				fmt.Sprintf("session %d: close: %v", session.ID, err))
			continue
		}
		report.ClosedSessions++

		if err := s.attendance.SetCheckOutIfNull(session.WorkerID, session.Date, end); err != nil {
			report.Failures = append(report.Failures,
				fmt.Sprintf("worker %d %s: checkout: %v", session.WorkerID, session.Date, err))
			continue
		}
		if !affected[session.WorkerID] {
			affected[session.WorkerID] = true
			report.AffectedWorkers = append(report.AffectedWorkers, session.WorkerID)
		}
	}

	if len(report.Failures) > 0 {
		log.Printf("sweep %s: %d closed, %d failures (will retry next run)",
			asOfDate, report.ClosedSessions, len(report.Failures))
	}
	return report, nil
}
