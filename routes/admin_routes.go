package routes

import (
	"github.com/careerbridge/backend/handlers"
	"github.com/careerbridge/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/dashboard-analytics", handlers.GetDashboardAnalytics)
	admin.Get("/users", handlers.GetAllUsers)

	admin.Put("/jobs/:id/approve", handlers.ApproveJob)
	admin.Put("/jobs/:id/reject", handlers.RejectJob)
	admin.Put("/internships/:id/approve", handlers.ApproveInternship)
	admin.Put("/internships/:id/reject", handlers.RejectInternship)

	admin.Get("/mentors/pending", handlers.ListPendingMentors)
	admin.Put("/mentors/:id/approve", handlers.ApproveMentor)
	admin.Put("/mentors/:id/reject", handlers.RejectMentor)

	admin.Put("/companies/:id/verify", handlers.VerifyCompany)
}
