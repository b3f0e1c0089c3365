package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"fieldops-backend/internal/clock"
	"fieldops-backend/internal/middleware"
	"fieldops-backend/internal/model"
	"fieldops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PhotoHandler struct {
	photos repository.PhotoRepository
	clock  *clock.Clock
}

func NewPhotoHandler(photos repository.PhotoRepository, clk *clock.Clock) *PhotoHandler {
	return &PhotoHandler{photos: photos, clock: clk}
}

// Upload stores a site photo/document and records its URL. The rest of
// the backend only ever sees the URL string.
func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	workerID := middleware.WorkerID(c)

	projectID, err := strconv.Atoi(c.FormValue("project_id"))
	if err != nil || projectID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "project_id is required"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A file is required"})
	}

	uploadDir := "./uploads/photos"
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		os.MkdirAll(uploadDir, 0755)
	}

	objectKey := uuid.NewString()
	filename := objectKey + filepath.Ext(file.Filename)
	path := filepath.Join(uploadDir, filename)
	if err := c.SaveFile(file, path); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not store file"})
	}

	photo := model.SitePhoto{
		WorkerID:  workerID,
		ProjectID: uint(projectID),
		Date:      h.clock.Today(),
		ObjectKey: objectKey,
		URL:       fmt.Sprintf("/uploads/photos/%s", filename),
		Caption:   c.FormValue("caption"),
	}
	if err := h.photos.Create(&photo); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not save photo record"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Photo uploaded", "photo": photo})
}

func (h *PhotoHandler) List(c *fiber.Ctx) error {
	projectID, _ := strconv.Atoi(c.Query("project_id"))
	photos, err := h.photos.List(uint(projectID), c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load photos"})
	}
	return c.JSON(fiber.Map{"data": photos})
}
