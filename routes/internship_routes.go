package routes

import (
	"github.com/careerbridge/backend/handlers"
	"github.com/careerbridge/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func InternshipRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	internships := api.Group("/internships")
	internships.Get("", handlers.GetAllInternships)
	internships.Get("/:id", handlers.GetInternshipByID)

	internships.Post("", middleware.Protected(), handlers.CreateInternship)
	internships.Put("/:id", middleware.Protected(), handlers.UpdateInternship)
	internships.Delete("/:id", middleware.Protected(), handlers.DeleteInternship)
}
