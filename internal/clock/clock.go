// Package clock resolves business dates in the site's fixed timezone.
// Every "today" in the backend routes through here so that a server
// running in UTC and a site in Eastern time agree on date boundaries.
package clock

import (
	"time"
)

const DateLayout = "2006-01-02"

type Clock struct {
	loc *time.Location
}

func New(tzName string) (*Clock, error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, err
	}
	return &Clock{loc: loc}, nil
}

// MustNew is for main() wiring where a bad timezone name is a
// configuration error worth dying on.
func MustNew(tzName string) *Clock {
	c, err := New(tzName)
	if err != nil {
		panic("invalid site timezone: " + tzName)
	}
	return c
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

// BusinessDate returns the calendar date of instant in the site timezone.
func (c *Clock) BusinessDate(instant time.Time) string {
	return instant.In(c.loc).Format(DateLayout)
}

func (c *Clock) Today() string {
	return c.BusinessDate(time.Now())
}

func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

// PrevDate returns the business date immediately preceding date.
func PrevDate(date string) (string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, -1).Format(DateLayout), nil
}

// EndOfDay is 23:59:59 of the given business date in the site timezone;
// the midnight sweep stamps force-closed sessions with it. Built from
// calendar components, not midnight plus a fixed duration, so DST
// transition days (23h or 25h long) still end on their own date.
func (c *Clock) EndOfDay(date string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, c.loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, c.loc), nil
}

// WeekNumber computes the payroll week for a date, anchored on the first
// Sunday of the date's calendar year (not ISO weeks). Days before the
// first Sunday belong to week 1.
func WeekNumber(date string) (int, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, err
	}
	firstSunday := firstSundayOfYear(d.Year())
	days := int(d.Sub(firstSunday).Hours() / 24)
	if days < 0 {
		return 1, nil
	}
	return days/7 + 1, nil
}

func firstSundayOfYear(year int) time.Time {
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
