package clock

import (
	"testing"
	"time"
)

func TestBusinessDateEasternVsUTC(t *testing.T) {
	clk, err := New("America/New_York")
	if err != nil {
		t.Fatalf("loading site timezone: %v", err)
	}

	// 02:00 UTC is still the previous evening on the site.
	instant := time.Date(2026, 8, 29, 2, 0, 0, 0, time.UTC)
	if got := clk.BusinessDate(instant); got != "2026-08-28" {
		t.Errorf("BusinessDate(02:00Z) = %q, want 2026-08-28", got)
	}

	// Noon UTC is the same date on both sides.
	instant = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	if got := clk.BusinessDate(instant); got != "2026-08-29" {
		t.Errorf("BusinessDate(12:00Z) = %q, want 2026-08-29", got)
	}

	// Winter (EST, UTC-5): 04:30 UTC is 23:30 the day before.
	instant = time.Date(2026, 1, 15, 4, 30, 0, 0, time.UTC)
	if got := clk.BusinessDate(instant); got != "2026-01-14" {
		t.Errorf("BusinessDate(winter 04:30Z) = %q, want 2026-01-14", got)
	}
}

func TestEndOfDay(t *testing.T) {
	clk := MustNew("America/New_York")

	end, err := clk.EndOfDay("2026-08-28")
	if err != nil {
		t.Fatalf("EndOfDay: %v", err)
	}
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("EndOfDay = %v, want 23:59:59", end)
	}
	if got := clk.BusinessDate(end); got != "2026-08-28" {
		t.Errorf("EndOfDay resolves to business date %q, want 2026-08-28", got)
	}
	// August Eastern is UTC-4, so this is 03:59:59Z the next day.
	if utc := end.UTC(); utc.Day() != 29 || utc.Hour() != 3 {
		t.Errorf("EndOfDay in UTC = %v, want 03:59:59 on the 29th", utc)
	}
}

func TestEndOfDayOnDSTTransitions(t *testing.T) {
	clk := MustNew("America/New_York")

	// Spring forward: 2026-03-08 is only 23 hours long, but its end is
	// still 23:59:59 on the 8th, not 00:59:59 on the 9th.
	end, err := clk.EndOfDay("2026-03-08")
	if err != nil {
		t.Fatalf("EndOfDay: %v", err)
	}
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("spring-forward EndOfDay = %v, want 23:59:59", end)
	}
	if got := clk.BusinessDate(end); got != "2026-03-08" {
		t.Errorf("spring-forward EndOfDay lands on %q, want 2026-03-08", got)
	}

	// Fall back: 2026-11-01 is 25 hours long.
	end, err = clk.EndOfDay("2026-11-01")
	if err != nil {
		t.Fatalf("EndOfDay: %v", err)
	}
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("fall-back EndOfDay = %v, want 23:59:59", end)
	}
	if got := clk.BusinessDate(end); got != "2026-11-01" {
		t.Errorf("fall-back EndOfDay lands on %q, want 2026-11-01", got)
	}
}

func TestPrevDate(t *testing.T) {
	got, err := PrevDate("2026-03-01")
	if err != nil {
		t.Fatalf("PrevDate: %v", err)
	}
	if got != "2026-02-28" {
		t.Errorf("PrevDate(2026-03-01) = %q, want 2026-02-28", got)
	}

	if _, err := PrevDate("not-a-date"); err == nil {
		t.Error("PrevDate accepted garbage input")
	}
}

func TestWeekNumberSundayAnchored(t *testing.T) {
	// 2026-01-01 is a Thursday; the first Sunday is 2026-01-04.
	cases := []struct {
		date string
		want int
	}{
		{"2026-01-01", 1}, // before the first Sunday
		{"2026-01-03", 1},
		{"2026-01-04", 1}, // first Sunday opens week 1
		{"2026-01-10", 1},
		{"2026-01-11", 2},
		{"2026-08-29", 34},
	}
	for _, tc := range cases {
		got, err := WeekNumber(tc.date)
		if err != nil {
			t.Fatalf("WeekNumber(%s): %v", tc.date, err)
		}
		if got != tc.want {
			t.Errorf("WeekNumber(%s) = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestWeekNumberSameForWholeWorkWeek(t *testing.T) {
	// A full work week Mon..Fri lands in the same payroll week.
	monday := "2026-08-24"
	want, err := WeekNumber(monday)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < 5; i++ {
		d := time.Date(2026, 8, 24+i, 0, 0, 0, 0, time.UTC).Format(DateLayout)
		got, err := WeekNumber(d)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("WeekNumber(%s) = %d, want %d (same as Monday)", d, got, want)
		}
	}
}
