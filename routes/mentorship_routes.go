package routes

import (
	"github.com/careerbridge/backend/handlers"
	"github.com/careerbridge/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func MentorshipRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	mentorships := api.Group("/mentorships")
	mentorships.Get("", handlers.GetPrograms)
	mentorships.Get("/:id", handlers.GetProgramByID)

	mentorships.Post("", middleware.Protected(), handlers.CreateProgram)
	mentorships.Post("/:id/slots", middleware.Protected(), handlers.AddSlots)
	mentorships.Post("/book", middleware.Protected(), handlers.BookSlot)

	bookings := api.Group("/bookings", middleware.Protected())
	bookings.Get("/me", handlers.GetMyBookings)
	bookings.Get("/:id", handlers.GetBookingByID)
}
