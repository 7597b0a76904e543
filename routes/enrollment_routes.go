package routes

import (
	"github.com/careerbridge/backend/handlers"
	"github.com/careerbridge/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func EnrollmentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	enrollments := api.Group("/enrollments", middleware.Protected())
	enrollments.Post("", handlers.Enroll)
	enrollments.Get("/user", handlers.GetUserEnrollments)
	enrollments.Get("/:id", handlers.GetEnrollmentByID)
	enrollments.Put("/:id/progress", handlers.UpdateProgress)

	enrollments.Get("", middleware.AdminRequired(), handlers.GetAllEnrollments)
}
