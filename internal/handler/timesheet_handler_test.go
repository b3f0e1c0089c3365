package handler

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fieldops-backend/internal/clock"
	"fieldops-backend/internal/model"
	"fieldops-backend/internal/reconcile"
	"fieldops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type stubAttendanceRepo struct {
	mergeErr error
	merges   int
}

func (s *stubAttendanceRepo) Merge(workerID uint, date string, write repository.AttendanceWrite) (*model.AttendanceRecord, error) {
	s.merges++
	if s.mergeErr != nil {
		return nil, s.mergeErr
	}
	return &model.AttendanceRecord{WorkerID: workerID, Date: date, Status: model.StatusPresent}, nil
}

func (s *stubAttendanceRepo) GetByWorkerAndDate(workerID uint, date string) (*model.AttendanceRecord, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) ListByDate(date string) ([]model.AttendanceRecord, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) SetCheckOutIfNull(workerID uint, date string, at time.Time) error {
	return nil
}

func (s *stubAttendanceRepo) CountByDateAndStatus(date string, status string) (int64, error) {
	return 0, nil
}

type stubSignInRepo struct{}

func (s *stubSignInRepo) OpenSession(workerID, projectID uint, date string, start time.Time) (*model.SignInSession, error) {
	return nil, nil
}

func (s *stubSignInRepo) CloseLatest(workerID uint, date string, end time.Time) (*model.SignInSession, error) {
	return nil, nil
}

func (s *stubSignInRepo) GetOpen(workerID uint, date string) (*model.SignInSession, error) {
	return nil, nil
}

func (s *stubSignInRepo) ListByWorkerAndDate(workerID uint, date string) ([]model.SignInSession, error) {
	return nil, nil
}

func (s *stubSignInRepo) ListOpenBefore(date string) ([]model.SignInSession, error) {
	return nil, nil
}

func (s *stubSignInRepo) CloseByID(id uint, end time.Time) error { return nil }

type stubVacationRepo struct{}

func (s *stubVacationRepo) Create(period *model.VacationPeriod) error { return nil }

func (s *stubVacationRepo) EnsureSingleDay(workerID uint, date string, notes string) (*model.VacationPeriod, error) {
	return nil, nil
}

func (s *stubVacationRepo) CoveringDate(workerID uint, date string) (*model.VacationPeriod, error) {
	return nil, nil
}

func (s *stubVacationRepo) ListByWorker(workerID uint) ([]model.VacationPeriod, error) {
	return nil, nil
}

func (s *stubVacationRepo) Delete(id uint) error { return nil }

type stubTimesheetRepo struct {
	created []model.TimesheetEntry
}

func (s *stubTimesheetRepo) Create(entry *model.TimesheetEntry) error {
	s.created = append(s.created, *entry)
	return nil
}

func (s *stubTimesheetRepo) FindByID(id uint) (*model.TimesheetEntry, error) { return nil, nil }

func (s *stubTimesheetRepo) Update(entry *model.TimesheetEntry) error { return nil }

func (s *stubTimesheetRepo) Delete(id uint) error { return nil }

func (s *stubTimesheetRepo) ListByWorkerAndWeek(workerID uint, week int, year string) ([]model.TimesheetEntry, error) {
	return nil, nil
}

func (s *stubTimesheetRepo) ListByWeek(week int, year string) ([]model.TimesheetEntry, error) {
	return nil, nil
}

func (s *stubTimesheetRepo) ListByWorkerAndDate(workerID uint, date string) ([]model.TimesheetEntry, error) {
	return nil, nil
}

func newSubmitApp(att *stubAttendanceRepo, timesheets *stubTimesheetRepo) *fiber.App {
	clk := clock.MustNew("America/New_York")
	reconciler := reconcile.New(att, &stubSignInRepo{}, &stubVacationRepo{}, clk)
	h := NewTimesheetHandler(timesheets, reconciler, clk)

	app := fiber.New()
	app.Post("/timesheet", func(c *fiber.Ctx) error {
		c.Locals("worker_id", float64(7))
		return c.Next()
	}, h.Submit)
	return app
}

func TestSubmitPersistsAfterSuccessfulReconcile(t *testing.T) {
	att := &stubAttendanceRepo{}
	timesheets := &stubTimesheetRepo{}
	app := newSubmitApp(att, timesheets)

	body := `{"date":"2026-08-28","start_time":"07:00","end_time":"15:30","break_minutes":30}`
	req := httptest.NewRequest("POST", "/timesheet", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}
	if att.merges != 1 {
		t.Errorf("merges = %d, want 1", att.merges)
	}
	if len(timesheets.created) != 1 {
		t.Fatalf("created %d entries, want 1", len(timesheets.created))
	}
	entry := timesheets.created[0]
	if entry.WorkerID != 7 || entry.Date != "2026-08-28" {
		t.Errorf("entry = worker %d on %q, want worker 7 on 2026-08-28", entry.WorkerID, entry.Date)
	}
	if entry.TotalHours != 8.0 {
		t.Errorf("TotalHours = %v, want 8.0", entry.TotalHours)
	}
}

func TestSubmitDoesNotPersistWhenReconcileFails(t *testing.T) {
	att := &stubAttendanceRepo{mergeErr: errors.New("deadlock")}
	timesheets := &stubTimesheetRepo{}
	app := newSubmitApp(att, timesheets)

	body := `{"date":"2026-08-28","start_time":"07:00","end_time":"15:30","break_minutes":30}`
	req := httptest.NewRequest("POST", "/timesheet", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode < 400 {
		t.Fatalf("status = %d, want an error status", resp.StatusCode)
	}
	if len(timesheets.created) != 0 {
		t.Errorf("created %d entries after failed reconcile, want 0", len(timesheets.created))
	}
}
