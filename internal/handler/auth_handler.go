package handler

import (
	"time"

	"fieldops-backend/config"
	"fieldops-backend/internal/middleware"
	"fieldops-backend/internal/model"
	"fieldops-backend/internal/reconcile"
	"fieldops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

type AuthHandler struct {
	workers    repository.WorkerRepository
	reconciler *reconcile.Reconciler
}

func NewAuthHandler(workers repository.WorkerRepository, reconciler *reconcile.Reconciler) *AuthHandler {
	return &AuthHandler{workers: workers, reconciler: reconciler}
}

type LoginRequest struct {
	Name    string   `json:"name" validate:"required"`
	PIN     string   `json:"pin" validate:"required,min=4"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Address string   `json:"address"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name and PIN are required"})
	}

	// One-time, case-insensitive name resolution; from here on everything
	// keys on the worker id.
	worker, err := h.workers.ResolveByName(req.Name)
	if err != nil {
		return respondDomainError(c, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(worker.PIN), []byte(req.PIN)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong PIN"})
	}

	claims := jwt.MapClaims{
		"worker_id": worker.ID,
		"name":      worker.Name,
		"role":      worker.Role,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create token"})
	}

	// A successful login counts as attendance for the day, even if the
	// worker never explicitly signs in to a project.
	record, err := h.reconciler.Reconcile(reconcile.LoginObserved{
		WorkerID: worker.ID,
		At:       time.Now(),
		Location: locationFrom(req.Lat, req.Lng, req.Address),
	})
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "Login successful",
		"token":      token,
		"worker":     worker,
		"attendance": record,
	})
}

type CreateWorkerRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Role  string `json:"role" validate:"required,oneof=worker foreman supervisor"`
	PIN   string `json:"pin" validate:"required,min=4,max=8,numeric"`
	Phone string `json:"phone"`
}

func (h *AuthHandler) CreateWorker(c *fiber.Ctx) error {
	var req CreateWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid worker data: " + err.Error()})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not hash PIN"})
	}

	worker := model.Worker{
		Name:  req.Name,
		Role:  req.Role,
		PIN:   string(hashed),
		Phone: req.Phone,
	}
	if err := h.workers.Create(&worker); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A worker with that name already exists"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Worker created", "worker": worker})
}

func (h *AuthHandler) ListWorkers(c *fiber.Ctx) error {
	workers, err := h.workers.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load workers"})
	}
	return c.JSON(fiber.Map{"data": workers})
}

type ChangePINRequest struct {
	OldPIN string `json:"old_pin" validate:"required"`
	NewPIN string `json:"new_pin" validate:"required,min=4,max=8,numeric"`
}

func (h *AuthHandler) ChangePIN(c *fiber.Ctx) error {
	workerID := middleware.WorkerID(c)

	var req ChangePINRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "New PIN must be 4-8 digits"})
	}

	worker, err := h.workers.FindByID(workerID)
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(worker.PIN), []byte(req.OldPIN)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong current PIN"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPIN), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not hash PIN"})
	}
	worker.PIN = string(hashed)
	if err := h.workers.Update(worker); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update PIN"})
	}

	return c.JSON(fiber.Map{"message": "PIN updated"})
}

func locationFrom(lat, lng *float64, address string) *model.Location {
	if lat == nil || lng == nil {
		return nil
	}
	return &model.Location{Lat: *lat, Lng: *lng, Address: address}
}
