package model

import (
	"errors"
	"testing"
	"time"
)

func TestComputeTotalHours(t *testing.T) {
	cases := []struct {
		name         string
		start, end   string
		breakMinutes int
		want         float64
	}{
		{"regular day", "07:00", "16:30", 60, 8.5},
		{"no break", "08:00", "12:00", 0, 4},
		{"overnight shift wraps", "22:00", "06:00", 30, 7.5},
		{"overnight to early morning", "23:00", "07:30", 0, 8.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeTotalHours(tc.start, tc.end, tc.breakMinutes)
			if err != nil {
				t.Fatalf("ComputeTotalHours: %v", err)
			}
			if got != tc.want {
				t.Errorf("ComputeTotalHours(%s, %s, %d) = %v, want %v",
					tc.start, tc.end, tc.breakMinutes, got, tc.want)
			}
		})
	}
}

func TestComputeTotalHoursRejectsNegative(t *testing.T) {
	// 15 minutes of shift, 30 minutes of break: an error, not zero.
	_, err := ComputeTotalHours("09:00", "09:15", 30)
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Errorf("got %v, want ErrInvalidTimeRange", err)
	}
}

func TestComputeTotalHoursRejectsGarbage(t *testing.T) {
	if _, err := ComputeTotalHours("9am", "17:00", 0); !errors.Is(err, ErrInvalidTimeRange) {
		t.Errorf("bad start time: got %v, want ErrInvalidTimeRange", err)
	}
	if _, err := ComputeTotalHours("09:00", "5pm", 0); !errors.Is(err, ErrInvalidTimeRange) {
		t.Errorf("bad end time: got %v, want ErrInvalidTimeRange", err)
	}
}

func TestTimesheetLifecycle(t *testing.T) {
	now := time.Now()

	entry := TimesheetEntry{Status: TimesheetPending}
	if err := entry.Approve(7, now); err != nil {
		t.Fatalf("approve pending: %v", err)
	}
	if entry.Status != TimesheetApproved || entry.ApprovedBy == nil || *entry.ApprovedBy != 7 {
		t.Errorf("approve did not stamp: %+v", entry)
	}

	// No way back out of approved.
	if err := entry.Approve(8, now); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("re-approve: got %v, want ErrInvalidTransition", err)
	}
	if err := entry.Reject(8, now); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("reject approved: got %v, want ErrInvalidTransition", err)
	}

	rejected := TimesheetEntry{Status: TimesheetPending}
	if err := rejected.Reject(9, now); err != nil {
		t.Fatalf("reject pending: %v", err)
	}
	if rejected.Status != TimesheetRejected {
		t.Errorf("status = %q, want rejected", rejected.Status)
	}
}

func TestMarkEditedKeepsStatus(t *testing.T) {
	now := time.Now()
	entry := TimesheetEntry{Status: TimesheetApproved}
	entry.MarkEdited(3, now)
	if entry.Status != TimesheetApproved {
		t.Errorf("edit changed status to %q", entry.Status)
	}
	if entry.EditedBy == nil || *entry.EditedBy != 3 || entry.EditedAt == nil {
		t.Errorf("edit did not stamp editor: %+v", entry)
	}
}

func TestVacationCovers(t *testing.T) {
	period := VacationPeriod{StartDate: "2026-07-10", EndDate: "2026-07-14"}
	for date, want := range map[string]bool{
		"2026-07-09": false,
		"2026-07-10": true,
		"2026-07-12": true,
		"2026-07-14": true,
		"2026-07-15": false,
	} {
		if got := period.Covers(date); got != want {
			t.Errorf("Covers(%s) = %v, want %v", date, got, want)
		}
	}
}
