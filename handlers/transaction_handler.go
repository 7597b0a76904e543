package handlers

import (
	"github.com/careerbridge/backend/database"
	"github.com/careerbridge/backend/models"
	"github.com/careerbridge/backend/payments"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type CreateTransactionRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Currency      *string `json:"currency"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	RelatedEntity string  `json:"related_entity" validate:"required"`
	RelatedID     string  `json:"related_id" validate:"required,uuid"`
}

// CreateTransaction records a standalone payment against a course or
// mentorship. The charge is simulated, so the row settles immediately.
func CreateTransaction(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	relatedID, _ := uuid.Parse(req.RelatedID)
	ref := models.EntityRef{Kind: models.RelatedKind(req.RelatedEntity), ID: relatedID}
	if err := ref.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	transaction := models.Transaction{
		UserID:        userID,
		Amount:        req.Amount,
		Status:        models.TxnPending,
		PaymentMethod: &req.PaymentMethod,
		Related:       ref,
	}
	if req.Currency != nil {
		transaction.Currency = *req.Currency
	}

	if _, err := payments.Charge(payments.PaymentDetails{
		Amount:   req.Amount,
		Currency: transaction.Currency,
		Method:   req.PaymentMethod,
	}); err != nil {
		transaction.Status = models.TxnFailed
	} else {
		transaction.Status = models.TxnSuccess
	}

	if err := database.DB.Create(&transaction).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record transaction"})
	}

	if transaction.Status == models.TxnFailed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payment failed", "transaction": transaction})
	}
	return c.Status(fiber.StatusCreated).JSON(transaction)
}

func GetAllTransactions(c *fiber.Ctx) error {
	query := database.DB.Preload("User")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var transactions []models.Transaction
	query.Order("created_at desc").Find(&transactions)
	return c.JSON(transactions)
}

func GetTransactionByID(c *fiber.Ctx) error {
	var transaction models.Transaction
	err := database.DB.Preload("User").First(&transaction, "id = ?", c.Params("id")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(transaction)
}

func GetUserTransactions(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var transactions []models.Transaction
	database.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&transactions)
	return c.JSON(transactions)
}
