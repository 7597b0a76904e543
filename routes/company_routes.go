package routes

import (
	"github.com/careerbridge/backend/handlers"
	"github.com/careerbridge/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func CompanyRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	companies := api.Group("/companies")
	companies.Get("", handlers.GetAllCompanies)
	companies.Get("/:id", handlers.GetCompanyByID)
	companies.Get("/:companyId/applications", middleware.Protected(), handlers.GetCompanyApplications)

	companies.Post("", middleware.Protected(), handlers.CreateCompany)
	companies.Put("/:id", middleware.Protected(), handlers.UpdateCompany)
	companies.Delete("/:id", middleware.Protected(), middleware.AdminRequired(), handlers.DeleteCompany)

	members := api.Group("/company-users", middleware.Protected())
	members.Post("", handlers.AddCompanyUser)
	members.Get("", handlers.GetCompanyUsers)
	members.Put("/:id/role", handlers.UpdateCompanyUserRole)
	members.Delete("/:id", handlers.RemoveCompanyUser)
}
