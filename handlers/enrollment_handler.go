package handlers

import (
	"errors"

	"github.com/careerbridge/backend/database"
	"github.com/careerbridge/backend/models"
	"github.com/careerbridge/backend/payments"
	"github.com/careerbridge/backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollRequest struct {
	CourseID       string                   `json:"course_id" validate:"required,uuid"`
	PaymentDetails *payments.PaymentDetails `json:"payment_details"`
}

// Enroll signs the logged-in user up for a course. Paid courses settle a
// simulated transaction in the same DB transaction as the enrollment; free
// courses create no transaction at all. The (user, course) uniqueness is a
// composite unique index.
func Enroll(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	courseID, _ := uuid.Parse(req.CourseID)
	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	if course.PriceType == models.PricePaid && req.PaymentDetails == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payment details required for paid course"})
	}

	enrollment := models.CourseEnrollment{
		UserID:         userID,
		CourseID:       courseID,
		PurchaseStatus: course.PriceType,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if course.PriceType == models.PricePaid {
			if _, err := payments.Charge(*req.PaymentDetails); err != nil {
				return err
			}
			transaction := models.Transaction{
				UserID:        userID,
				Amount:        req.PaymentDetails.Amount,
				Currency:      req.PaymentDetails.Currency,
				Status:        models.TxnSuccess,
				PaymentMethod: &req.PaymentDetails.Method,
				Related:       models.CourseRef(courseID),
			}
			if transaction.Currency == "" {
				transaction.Currency = "INR"
			}
			if err := tx.Create(&transaction).Error; err != nil {
				return err
			}
			enrollment.TransactionID = &transaction.ID
		}
		return tx.Create(&enrollment).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User already enrolled in this course"})
		}
		if errors.Is(err, payments.ErrMissingPaymentMethod) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

type UpdateProgressRequest struct {
	ProgressPercent *int `json:"progress_percent" validate:"required"`
}

func UpdateProgress(c *fiber.Ctx) error {
	var req UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var enrollment models.CourseEnrollment
	if err := database.DB.First(&enrollment, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}

	wasCompleted := enrollment.CompletionStatus == models.EnrollmentCompleted

	if err := enrollment.ApplyProgress(*req.ProgressPercent); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Progress must be between 0 and 100"})
	}

	if err := database.DB.Save(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update progress"})
	}

	if !wasCompleted && enrollment.CompletionStatus == models.EnrollmentCompleted {
		go services.RenderEnrollmentCertificate(enrollment)
	}

	return c.JSON(enrollment)
}

func GetUserEnrollments(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User ID is required"})
	}

	var enrollments []models.CourseEnrollment
	database.DB.
		Preload("Course").
		Preload("Transaction").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&enrollments)
	return c.JSON(enrollments)
}

func GetEnrollmentByID(c *fiber.Ctx) error {
	var enrollment models.CourseEnrollment
	err := database.DB.
		Preload("Course").
		Preload("Transaction").
		First(&enrollment, "id = ?", c.Params("id")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}
	return c.JSON(enrollment)
}

func GetAllEnrollments(c *fiber.Ctx) error {
	var enrollments []models.CourseEnrollment
	database.DB.
		Preload("Course").
		Preload("Transaction").
		Order("created_at desc").
		Find(&enrollments)
	return c.JSON(enrollments)
}
