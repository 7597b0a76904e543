package routes

import (
	"github.com/careerbridge/backend/handlers"
	"github.com/careerbridge/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func ApplicationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	applications := api.Group("/applications", middleware.Protected())
	applications.Post("", handlers.Apply)
	applications.Get("/me", handlers.GetUserApplications)
	applications.Get("/:id", handlers.GetApplicationByID)
	applications.Put("/:id/status", handlers.UpdateApplicationStatus)
	applications.Post("/:id/certificate", handlers.UploadApplicationCertificate)

	applications.Get("", middleware.AdminRequired(), handlers.GetAllApplications)
}
