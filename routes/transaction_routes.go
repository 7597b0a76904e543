package routes

import (
	"github.com/careerbridge/backend/handlers"
	"github.com/careerbridge/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func TransactionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	transactions := api.Group("/transactions", middleware.Protected())
	transactions.Post("", handlers.CreateTransaction)
	transactions.Get("/me", handlers.GetUserTransactions)
	transactions.Get("/:id", handlers.GetTransactionByID)

	transactions.Get("", middleware.AdminRequired(), handlers.GetAllTransactions)
}
