// Package overtime splits a week of timesheet hours into regular and
// overtime portions under a single weekly threshold.
package overtime

import (
	"sort"

	"fieldops-backend/internal/model"
)

type Allocation struct {
	EntryID       uint    `json:"entry_id"`
	Date          string  `json:"date"`
	TotalHours    float64 `json:"total_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// Allocate walks one worker's entries for one week in date order and
// attributes overtime to the entries that push the running total past the
// threshold. Entries sharing a date keep their submission order (stable
// sort). Guarantees sum(overtime) == max(0, weekTotal - threshold) and
// regular+overtime == total per entry.
func Allocate(entries []model.TimesheetEntry, threshold float64) []Allocation {
	ordered := make([]model.TimesheetEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date < ordered[j].Date
	})

	allocations := make([]Allocation, 0, len(ordered))
	cumulative := 0.0
	for _, entry := range ordered {
		prev := cumulative
		cumulative += entry.TotalHours

		a := Allocation{
			EntryID:    entry.ID,
			Date:       entry.Date,
			TotalHours: entry.TotalHours,
		}
		switch {
		case prev >= threshold:
			a.OvertimeHours = entry.TotalHours
		case cumulative > threshold:
			a.OvertimeHours = cumulative - threshold
			a.RegularHours = entry.TotalHours - a.OvertimeHours
		default:
			a.RegularHours = entry.TotalHours
		}
		allocations = append(allocations, a)
	}
	return allocations
}

// Totals sums an allocation list for week-level reporting.
func Totals(allocations []Allocation) (regular, ot, total float64) {
	for _, a := range allocations {
		regular += a.RegularHours
		ot += a.OvertimeHours
		total += a.TotalHours
	}
	return regular, ot, total
}
