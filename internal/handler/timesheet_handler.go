package handler

import (
	"errors"
	"strconv"
	"time"

	"fieldops-backend/config"
	"fieldops-backend/internal/clock"
	"fieldops-backend/internal/middleware"
	"fieldops-backend/internal/model"
	"fieldops-backend/internal/overtime"
	"fieldops-backend/internal/reconcile"
	"fieldops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TimesheetHandler struct {
	timesheets repository.TimesheetRepository
	reconciler *reconcile.Reconciler
	clock      *clock.Clock
}

func NewTimesheetHandler(timesheets repository.TimesheetRepository, reconciler *reconcile.Reconciler, clk *clock.Clock) *TimesheetHandler {
	return &TimesheetHandler{timesheets: timesheets, reconciler: reconciler, clock: clk}
}

type SubmitTimesheetRequest struct {
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string `json:"start_time" validate:"required"`
	EndTime      string `json:"end_time" validate:"required"`
	BreakMinutes int    `json:"break_minutes" validate:"min=0"`
}

func (h *TimesheetHandler) Submit(c *fiber.Ctx) error {
	workerID := middleware.WorkerID(c)

	var req SubmitTimesheetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Date, start time and end time are required"})
	}

	total, err := model.ComputeTotalHours(req.StartTime, req.EndTime, req.BreakMinutes)
	if err != nil {
		return respondDomainError(c, err)
	}
	week, err := clock.WeekNumber(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date"})
	}

	// A submitted timesheet also counts as attendance for that day. The
	// reconcile runs before the entry is saved: the merge is idempotent
	// and safe to repeat on retry, while an orphaned entry left behind by
	// a failed merge would double-count hours when the worker resubmits.
	if _, err := h.reconciler.Reconcile(reconcile.TimesheetSubmitted{
		WorkerID:  workerID,
		Date:      req.Date,
		StartTime: req.StartTime,
	}); err != nil {
		return respondDomainError(c, err)
	}

	entry := model.TimesheetEntry{
		WorkerID:     workerID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakMinutes: req.BreakMinutes,
		TotalHours:   total,
		WeekNumber:   week,
		Status:       model.TimesheetPending,
	}
	if err := h.timesheets.Create(&entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not save timesheet"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Timesheet submitted", "timesheet": entry})
}

// List returns the caller's entries for a week with the regular/overtime
// split applied on read.
func (h *TimesheetHandler) List(c *fiber.Ctx) error {
	workerID := middleware.WorkerID(c)

	week, year, err := h.weekParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid week/year"})
	}

	entries, err := h.timesheets.ListByWorkerAndWeek(workerID, week, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load timesheets"})
	}

	threshold := config.OvertimeThreshold()
	allocations := overtime.Allocate(entries, threshold)
	regular, ot, total := overtime.Totals(allocations)

	return c.JSON(fiber.Map{
		"week":           week,
		"year":           year,
		"threshold":      threshold,
		"entries":        entries,
		"allocations":    allocations,
		"regular_hours":  regular,
		"overtime_hours": ot,
		"total_hours":    total,
	})
}

func (h *TimesheetHandler) Approve(c *fiber.Ctx) error {
	return h.review(c, func(entry *model.TimesheetEntry, by uint) error {
		return entry.Approve(by, time.Now())
	}, "Timesheet approved")
}

func (h *TimesheetHandler) Reject(c *fiber.Ctx) error {
	return h.review(c, func(entry *model.TimesheetEntry, by uint) error {
		return entry.Reject(by, time.Now())
	}, "Timesheet rejected")
}

func (h *TimesheetHandler) review(c *fiber.Ctx, transition func(*model.TimesheetEntry, uint) error, message string) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid timesheet id"})
	}

	entry, err := h.timesheets.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Timesheet not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load timesheet"})
	}

	if err := transition(entry, middleware.WorkerID(c)); err != nil {
		return respondDomainError(c, err)
	}
	if err := h.timesheets.Update(entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update timesheet"})
	}
	return c.JSON(fiber.Map{"message": message, "timesheet": entry})
}

type EditTimesheetRequest struct {
	StartTime    string `json:"start_time" validate:"required"`
	EndTime      string `json:"end_time" validate:"required"`
	BreakMinutes int    `json:"break_minutes" validate:"min=0"`
}

// Edit changes the content of an entry in any state without touching its
// status, stamping who edited it and when.
func (h *TimesheetHandler) Edit(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid timesheet id"})
	}

	var req EditTimesheetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Start and end time are required"})
	}

	total, err := model.ComputeTotalHours(req.StartTime, req.EndTime, req.BreakMinutes)
	if err != nil {
		return respondDomainError(c, err)
	}

	entry, err := h.timesheets.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Timesheet not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load timesheet"})
	}

	entry.StartTime = req.StartTime
	entry.EndTime = req.EndTime
	entry.BreakMinutes = req.BreakMinutes
	entry.TotalHours = total
	entry.MarkEdited(middleware.WorkerID(c), time.Now())

	if err := h.timesheets.Update(entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update timesheet"})
	}
	return c.JSON(fiber.Map{"message": "Timesheet updated", "timesheet": entry})
}

// Delete is allowed from any state and is terminal.
func (h *TimesheetHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid timesheet id"})
	}
	if err := h.timesheets.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete timesheet"})
	}
	return c.JSON(fiber.Map{"message": "Timesheet deleted"})
}

func (h *TimesheetHandler) weekParams(c *fiber.Ctx) (int, string, error) {
	today := h.clock.Today()
	year := c.Query("year", today[:4])

	weekStr := c.Query("week")
	if weekStr == "" {
		week, err := clock.WeekNumber(today)
		return week, year, err
	}
	week, err := strconv.Atoi(weekStr)
	return week, year, err
}
