package handler

import (
	"strconv"

	"fieldops-backend/internal/model"
	"fieldops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ProjectHandler struct {
	projects repository.ProjectRepository
}

func NewProjectHandler(projects repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

type ProjectRequest struct {
	Name    string  `json:"name" validate:"required,min=2"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Project name is required"})
	}

	project := model.Project{
		Name:     req.Name,
		Address:  req.Address,
		Lat:      req.Lat,
		Lng:      req.Lng,
		IsActive: true,
	}
	if err := h.projects.Create(&project); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create project"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Project created", "project": project})
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.projects.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load projects"})
	}
	return c.JSON(fiber.Map{"data": projects})
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}

	project, err := h.projects.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	var req ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Project name is required"})
	}

	project.Name = req.Name
	project.Address = req.Address
	project.Lat = req.Lat
	project.Lng = req.Lng
	if err := h.projects.Update(project); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update project"})
	}
	return c.JSON(fiber.Map{"message": "Project updated", "project": project})
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}
	if err := h.projects.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete project"})
	}
	return c.JSON(fiber.Map{"message": "Project deleted"})
}

type WorkAreaRequest struct {
	Name  string `json:"name" validate:"required"`
	Floor string `json:"floor"`
	Notes string `json:"notes"`
}

func (h *ProjectHandler) AddWorkArea(c *fiber.Ctx) error {
	projectID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}

	var req WorkAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Work area name is required"})
	}

	area := model.WorkArea{
		ProjectID: uint(projectID),
		Name:      req.Name,
		Floor:     req.Floor,
		Notes:     req.Notes,
	}
	if err := h.projects.AddWorkArea(&area); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not add work area"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Work area added", "work_area": area})
}

func (h *ProjectHandler) ListWorkAreas(c *fiber.Ctx) error {
	projectID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}
	areas, err := h.projects.ListWorkAreas(uint(projectID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load work areas"})
	}
	return c.JSON(fiber.Map{"data": areas})
}
