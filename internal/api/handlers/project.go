package handlers

import (
	"aru-research/internal/config"
	"aru-research/internal/models"
	"aru-research/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Project handlers

// ListProjects mengembalikan semua project, diurutkan berdasarkan tanggal selesai.
func ListProjects(c *fiber.Ctx) error {
	rows, err := config.DB.Query(
		"SELECT id, name, start_date, end_date, sample_size, sample_achieved, created_at, updated_at FROM projects ORDER BY end_date ASC")
	if err != nil {
		logger.ErrorLogger.Error("Error fetching projects", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching projects"})
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var project models.Project
		err := rows.Scan(&project.ID, &project.Name, &project.StartDate, &project.EndDate,
			&project.SampleSize, &project.SampleAchieved, &project.CreatedAt, &project.UpdatedAt)
		if err != nil {
			logger.ErrorLogger.Error("Error scanning projects", zap.Error(err))
			return c.Status(500).JSON(fiber.Map{"error": "Error scanning projects"})
		}
		projects = append(projects, project)
	}

	if err = rows.Err(); err != nil {
		logger.ErrorLogger.Error("Error iterating over projects", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Error iterating over projects"})
	}

	return c.JSON(projects)
}

// CreateProject membuat project baru. Hanya admin yang boleh.
func CreateProject(c *fiber.Ctx) error {
	// Ambil role dari locals (diisi oleh middleware token)
	role := c.Locals("role").(string)
	if role != "admin" {
		logger.SecurityLogger.Warn("Forbidden project creation", zap.String("role", role))
		return c.Status(403).JSON(fiber.Map{"error": "Access denied. Admin only."})
	}

	type ProjectRequest struct {
		Name           string `json:"name" validate:"required"`
		StartDate      string `json:"startDate" validate:"required"`
		EndDate        string `json:"endDate" validate:"required"`
		SampleSize     int    `json:"sampleSize" validate:"required,min=1"`
		SampleAchieved int    `json:"sampleAchieved" validate:"gte=0"`
	}

	var req ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create project", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": "Bad request"})
	}

	if err := config.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during create project", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// Sampel tercapai tidak boleh melebihi target
	if req.SampleAchieved > req.SampleSize {
		return c.Status(400).JSON(fiber.Map{"error": "Sample achieved cannot be greater than sample size."})
	}

	var project models.Project
	err := config.DB.QueryRow(
		`INSERT INTO projects (name, start_date, end_date, sample_size, sample_achieved)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, name, start_date, end_date, sample_size, sample_achieved, created_at, updated_at`,
		req.Name, req.StartDate, req.EndDate, req.SampleSize, req.SampleAchieved,
	).Scan(&project.ID, &project.Name, &project.StartDate, &project.EndDate,
		&project.SampleSize, &project.SampleAchieved, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		logger.ErrorLogger.Error("Error creating project", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Error creating project"})
	}

	logger.AuditLogger.Info("Project created", zap.Int("project_id", project.ID), zap.String("name", project.Name))
	return c.Status(201).JSON(fiber.Map{"message": "Project added successfully!", "project": project})
}
