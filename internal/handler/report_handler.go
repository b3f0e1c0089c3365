package handler

import (
	"strconv"

	"fieldops-backend/config"
	"fieldops-backend/internal/clock"
	"fieldops-backend/internal/model"
	"fieldops-backend/internal/overtime"
	"fieldops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	timesheets repository.TimesheetRepository
	attendance repository.AttendanceRepository
	workers    repository.WorkerRepository
	clock      *clock.Clock
}

func NewReportHandler(timesheets repository.TimesheetRepository, attendance repository.AttendanceRepository, workers repository.WorkerRepository, clk *clock.Clock) *ReportHandler {
	return &ReportHandler{timesheets: timesheets, attendance: attendance, workers: workers, clock: clk}
}

// WeeklySummary is the admin view: every worker's hours for a week with
// the overtime split, same threshold as everywhere else.
func (h *ReportHandler) WeeklySummary(c *fiber.Ctx) error {
	today := h.clock.Today()
	year := c.Query("year", today[:4])

	week := 0
	if weekStr := c.Query("week"); weekStr != "" {
		w, err := strconv.Atoi(weekStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid week number"})
		}
		week = w
	} else {
		w, err := clock.WeekNumber(today)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not resolve current week"})
		}
		week = w
	}

	entries, err := h.timesheets.ListByWeek(week, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load timesheets"})
	}

	// Group per worker; the allocator runs per worker+week.
	byWorker := make(map[uint][]model.TimesheetEntry)
	order := []uint{}
	for _, e := range entries {
		if _, seen := byWorker[e.WorkerID]; !seen {
			order = append(order, e.WorkerID)
		}
		byWorker[e.WorkerID] = append(byWorker[e.WorkerID], e)
	}

	threshold := config.OvertimeThreshold()
	summaries := make([]fiber.Map, 0, len(order))
	for _, workerID := range order {
		workerEntries := byWorker[workerID]
		allocations := overtime.Allocate(workerEntries, threshold)
		regular, ot, total := overtime.Totals(allocations)

		name := ""
		if len(workerEntries) > 0 {
			name = workerEntries[0].Worker.Name
		}
		summaries = append(summaries, fiber.Map{
			"worker_id":      workerID,
			"worker_name":    name,
			"entries":        len(workerEntries),
			"allocations":    allocations,
			"regular_hours":  regular,
			"overtime_hours": ot,
			"total_hours":    total,
		})
	}

	return c.JSON(fiber.Map{
		"week":      week,
		"year":      year,
		"threshold": threshold,
		"data":      summaries,
	})
}

// DailyStats gives the dashboard counts for one date.
func (h *ReportHandler) DailyStats(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		date = h.clock.Today()
	}

	workers, err := h.workers.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load workers"})
	}

	stats := fiber.Map{"date": date, "total_workers": len(workers)}
	for _, status := range []string{model.StatusPresent, model.StatusAbsent, model.StatusVacation} {
		count, err := h.attendance.CountByDateAndStatus(date, status)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load stats"})
		}
		stats[status] = count
	}
	return c.JSON(stats)
}
