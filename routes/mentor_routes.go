package routes

import (
	"github.com/careerbridge/backend/handlers"
	"github.com/careerbridge/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func MentorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	mentors := api.Group("/mentors")
	mentors.Get("", handlers.GetAllMentors)
	mentors.Get("/:id", handlers.GetMentorByID)
	mentors.Get("/:mentorId/bookings", middleware.Protected(), handlers.GetMentorBookings)

	mentors.Post("", middleware.Protected(), handlers.CreateMentor)
	mentors.Put("/:id", middleware.Protected(), handlers.UpdateMentor)
	mentors.Delete("/:id", middleware.Protected(), handlers.DeleteMentor)
}
