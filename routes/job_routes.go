package routes

import (
	"github.com/careerbridge/backend/handlers"
	"github.com/careerbridge/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func JobRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	jobs := api.Group("/jobs")
	jobs.Get("", handlers.GetAllJobs)
	jobs.Get("/:id", handlers.GetJobByID)

	jobs.Post("", middleware.Protected(), handlers.CreateJob)
	jobs.Put("/:id", middleware.Protected(), handlers.UpdateJob)
	jobs.Delete("/:id", middleware.Protected(), handlers.DeleteJob)
}
