package sweep

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"fieldops-backend/internal/clock"
	"fieldops-backend/internal/model"
	"fieldops-backend/internal/repository"
)

type stubSessions struct {
	sessions    []*model.SignInSession
	failCloseID uint
}

func (s *stubSessions) OpenSession(workerID, projectID uint, date string, start time.Time) (*model.SignInSession, error) {
	sess := &model.SignInSession{
		ID: uint(len(s.sessions) + 1), WorkerID: workerID, ProjectID: projectID,
		Date: date, StartTime: start,
	}
	s.sessions = append(s.sessions, sess)
	return sess, nil
}

func (s *stubSessions) CloseLatest(workerID uint, date string, end time.Time) (*model.SignInSession, error) {
	return nil, model.ErrNoActiveSignIn
}

func (s *stubSessions) GetOpen(workerID uint, date string) (*model.SignInSession, error) {
	return nil, model.ErrNoActiveSignIn
}

func (s *stubSessions) ListByWorkerAndDate(workerID uint, date string) ([]model.SignInSession, error) {
	return nil, nil
}

func (s *stubSessions) ListOpenBefore(date string) ([]model.SignInSession, error) {
	var list []model.SignInSession
	for _, sess := range s.sessions {
		if sess.Date < date && sess.EndTime == nil {
			list = append(list, *sess)
		}
	}
	return list, nil
}

func (s *stubSessions) CloseByID(id uint, end time.Time) error {
	if id == s.failCloseID {
		return errors.New("deadlock, try again")
	}
	for _, sess := range s.sessions {
		if sess.ID == id {
			sess.EndTime = &end
			return nil
		}
	}
	return errors.New("session not found")
}

type stubAttendance struct {
	checkouts map[string]time.Time
}

func (s *stubAttendance) Merge(workerID uint, date string, write repository.AttendanceWrite) (*model.AttendanceRecord, error) {
	return &model.AttendanceRecord{WorkerID: workerID, Date: date}, nil
}

func (s *stubAttendance) GetByWorkerAndDate(workerID uint, date string) (*model.AttendanceRecord, error) {
	return nil, errors.New("not found")
}

func (s *stubAttendance) ListByDate(date string) ([]model.AttendanceRecord, error) {
	return nil, nil
}

func (s *stubAttendance) SetCheckOutIfNull(workerID uint, date string, at time.Time) error {
	k := fmt.Sprintf("%d:%s", workerID, date)
	if _, done := s.checkouts[k]; !done {
		s.checkouts[k] = at
	}
	return nil
}

func (s *stubAttendance) CountByDateAndStatus(date, status string) (int64, error) {
	return 0, nil
}

func fixture() (*Sweeper, *stubSessions, *stubAttendance, *clock.Clock) {
	clk := clock.MustNew("America/New_York")
	sessions := &stubSessions{}
	attendance := &stubAttendance{checkouts: make(map[string]time.Time)}
	return New(sessions, attendance, clk), sessions, attendance, clk
}

func TestSweepClosesStaleSessions(t *testing.T) {
	sweeper, sessions, attendance, clk := fixture()

	start, _ := clk.EndOfDay("2026-08-27")
	sessions.OpenSession(1, 9, "2026-08-27", start.Add(-10*time.Hour))
	sessions.OpenSession(2, 9, "2026-08-27", start.Add(-9*time.Hour))
	// Today's open session must be left alone.
	sessions.OpenSession(3, 9, "2026-08-28", start.Add(8*time.Hour))

	report, err := sweeper.Sweep("2026-08-28")
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if report.ClosedSessions != 2 {
		t.Errorf("closed %d sessions, want 2", report.ClosedSessions)
	}
	if len(report.AffectedWorkers) != 2 {
		t.Errorf("affected %v, want workers 1 and 2", report.AffectedWorkers)
	}

	// Sessions are stamped 23:59:59 of their own business date.
	for _, sess := range sessions.sessions[:2] {
		if sess.EndTime == nil {
			t.Fatalf("session %d still open", sess.ID)
		}
		local := sess.EndTime.In(clk.Location())
		if local.Hour() != 23 || local.Minute() != 59 || local.Second() != 59 {
			t.Errorf("session %d closed at %v, want 23:59:59", sess.ID, local)
		}
	}
	if sessions.sessions[2].EndTime != nil {
		t.Error("sweep closed a session from the current business date")
	}

	if _, ok := attendance.checkouts["1:2026-08-27"]; !ok {
		t.Error("worker 1 checkout not stamped")
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	sweeper, sessions, _, clk := fixture()

	start, _ := clk.EndOfDay("2026-08-27")
	sessions.OpenSession(1, 9, "2026-08-27", start.Add(-10*time.Hour))

	first, err := sweeper.Sweep("2026-08-28")
	if err != nil {
		t.Fatal(err)
	}
	if first.ClosedSessions != 1 {
		t.Fatalf("first run closed %d, want 1", first.ClosedSessions)
	}

	second, err := sweeper.Sweep("2026-08-28")
	if err != nil {
		t.Fatal(err)
	}
	if second.ClosedSessions != 0 || len(second.Failures) != 0 {
		t.Errorf("second run closed %d with %d failures, want a clean no-op",
			second.ClosedSessions, len(second.Failures))
	}
}

func TestSweepContinuesPastFailures(t *testing.T) {
	sweeper, sessions, _, clk := fixture()

	start, _ := clk.EndOfDay("2026-08-27")
	sessions.OpenSession(1, 9, "2026-08-27", start.Add(-10*time.Hour))
	sessions.OpenSession(2, 9, "2026-08-27", start.Add(-9*time.Hour))
	sessions.OpenSession(3, 9, "2026-08-26", start.Add(-30*time.Hour))
	sessions.failCloseID = 2

	report, err := sweeper.Sweep("2026-08-28")
	if err != nil {
		t.Fatalf("sweep aborted on a per-session failure: %v", err)
	}
	if report.ClosedSessions != 2 {
		t.Errorf("closed %d sessions, want 2 despite one failure", report.ClosedSessions)
	}
	if len(report.Failures) != 1 {
		t.Errorf("got %d failures, want 1: %v", len(report.Failures), report.Failures)
	}

	// The failed session is still open, so the next run retries it.
	sessions.failCloseID = 0
	retry, err := sweeper.Sweep("2026-08-28")
	if err != nil {
		t.Fatal(err)
	}
	if retry.ClosedSessions != 1 {
		t.Errorf("retry closed %d, want the 1 previously failed session", retry.ClosedSessions)
	}
}
