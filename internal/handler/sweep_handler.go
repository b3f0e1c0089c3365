package handler

import (
	"fieldops-backend/internal/clock"
	"fieldops-backend/internal/sweep"

	"github.com/gofiber/fiber/v2"
)

type SweepHandler struct {
	sweeper *sweep.Sweeper
	clock   *clock.Clock
}

func NewSweepHandler(sweeper *sweep.Sweeper, clk *clock.Clock) *SweepHandler {
	return &SweepHandler{sweeper: sweeper, clock: clk}
}

// Run triggers the midnight sweep by hand, same code path as the cron
// binary. Safe to call repeatedly.
func (h *SweepHandler) Run(c *fiber.Ctx) error {
	asOf := c.Query("as_of")
	if asOf == "" {
		asOf = h.clock.Today()
	}

	report, err := h.sweeper.Sweep(asOf)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Sweep failed, see server log"})
	}
	return c.JSON(fiber.Map{"message": "Sweep complete", "report": report})
}
