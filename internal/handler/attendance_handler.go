package handler

import (
	"time"

	"fieldops-backend/internal/clock"
	"fieldops-backend/internal/middleware"
	"fieldops-backend/internal/reconcile"
	"fieldops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	reconciler *reconcile.Reconciler
	attendance repository.AttendanceRepository
	sessions   repository.SignInRepository
	clock      *clock.Clock
}

func NewAttendanceHandler(reconciler *reconcile.Reconciler, attendance repository.AttendanceRepository, sessions repository.SignInRepository, clk *clock.Clock) *AttendanceHandler {
	return &AttendanceHandler{reconciler: reconciler, attendance: attendance, sessions: sessions, clock: clk}
}

type SignInRequest struct {
	ProjectID uint     `json:"project_id" validate:"required"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Address   string   `json:"address"`
}

func (h *AttendanceHandler) SignIn(c *fiber.Ctx) error {
	workerID := middleware.WorkerID(c)

	var req SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A project is required to sign in"})
	}

	record, err := h.reconciler.Reconcile(reconcile.SignedIn{
		WorkerID:  workerID,
		ProjectID: req.ProjectID,
		At:        time.Now(),
		Location:  locationFrom(req.Lat, req.Lng, req.Address),
	})
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Signed in", "attendance": record})
}

type SignOutRequest struct {
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Address string   `json:"address"`
}

func (h *AttendanceHandler) SignOut(c *fiber.Ctx) error {
	workerID := middleware.WorkerID(c)

	var req SignOutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := h.reconciler.Reconcile(reconcile.SignedOut{
		WorkerID: workerID,
		At:       time.Now(),
		Location: locationFrom(req.Lat, req.Lng, req.Address),
	})
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Signed out", "attendance": record})
}

// Status answers the mobile app's "am I signed in right now" poll.
func (h *AttendanceHandler) Status(c *fiber.Ctx) error {
	workerID := middleware.WorkerID(c)
	today := h.clock.Today()

	record, _ := h.attendance.GetByWorkerAndDate(workerID, today)
	session, err := h.sessions.GetOpen(workerID, today)
	signedIn := err == nil

	return c.JSON(fiber.Map{
		"date":         today,
		"attendance":   record,
		"signed_in":    signedIn,
		"open_session": session,
	})
}

type ToggleRequest struct {
	WorkerID uint   `json:"worker_id" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
}

// Toggle is the foreman's backfill switch: it flips a worker between
// present and absent for an explicit date.
func (h *AttendanceHandler) Toggle(c *fiber.Ctx) error {
	var req ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "worker_id and date (YYYY-MM-DD) are required"})
	}

	record, err := h.reconciler.Reconcile(reconcile.ManualToggle{
		WorkerID: req.WorkerID,
		Date:     req.Date,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Attendance updated", "attendance": record})
}

type VacationRequest struct {
	WorkerID uint   `json:"worker_id" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Notes    string `json:"notes"`
}

func (h *AttendanceHandler) MarkVacation(c *fiber.Ctx) error {
	var req VacationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "worker_id and date (YYYY-MM-DD) are required"})
	}

	record, err := h.reconciler.Reconcile(reconcile.VacationMarked{
		WorkerID: req.WorkerID,
		Date:     req.Date,
		Notes:    req.Notes,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Vacation marked", "attendance": record})
}

// Roster lists everyone's attendance for a date (defaults to today).
func (h *AttendanceHandler) Roster(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		date = h.clock.Today()
	}

	records, err := h.attendance.ListByDate(date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load roster"})
	}
	return c.JSON(fiber.Map{"date": date, "data": records})
}
