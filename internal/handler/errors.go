package handler

import (
	"errors"

	"fieldops-backend/internal/model"

	"github.com/gofiber/fiber/v2"
)

// respondDomainError maps the domain taxonomy onto specific HTTP answers.
// AlreadySignedIn / NoActiveSignIn are everyday field conditions (double
// taps on flaky connections) and must read as such, not as server faults.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrAlreadySignedIn):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You are already signed in to a project today. Sign out first."})
	case errors.Is(err, model.ErrNoActiveSignIn):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "No active sign-in found. You need to sign in before signing out."})
	case errors.Is(err, model.ErrWorkerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
	case errors.Is(err, model.ErrInvalidTimeRange):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, model.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, model.ErrConcurrentWrite):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Conflicting update, please retry"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong, please try again"})
	}
}
