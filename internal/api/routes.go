package api

import (
	"aru-research/internal/api/handlers"
	"aru-research/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Employee
	employeeRoutes := api.Group("/employees")
	employeeRoutes.Post("/start-work", handlers.StartWork)
	employeeRoutes.Post("/end-work", handlers.EndWork)
	employeeRoutes.Post("/update-tasks", handlers.UpdateTasks)
	employeeRoutes.Get("/salary-records", handlers.SalaryRecords)

	// Project
	api.Get("/projects", handlers.ListProjects)
	api.Post("/projects", middleware.UseToken, handlers.CreateProject)

	// Admin
	adminRoutes := api.Group("/admin")
	adminRoutes.Post("/login", handlers.Login)
	adminRoutes.Post("/update-employee", middleware.UseToken, handlers.UpdateEmployee)
}
