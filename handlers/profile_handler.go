package handlers

import (
	"time"

	"github.com/careerbridge/backend/database"
	"github.com/careerbridge/backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/lib/pq"
)

type UpdateProfileRequest struct {
	FullName        *string   `json:"full_name"`
	Phone           *string   `json:"phone"`
	ProfilePhotoURL *string   `json:"profile_photo_url"`
	CoverImageURL   *string   `json:"cover_image_url"`
	Location        *string   `json:"location"`
	EducationLevel  *string   `json:"education_level"`
	CurrentStatus   *string   `json:"current_status"`
	Bio             *string   `json:"bio"`
	Skills          *[]string `json:"skills"`
	ResumeURL       *string   `json:"resume_url"`
}

func GetProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var user models.User
	if err := database.DB.Preload("Certifications").Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

func UpdateProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.ProfilePhotoURL != nil {
		user.ProfilePhotoURL = req.ProfilePhotoURL
	}
	if req.CoverImageURL != nil {
		user.CoverImageURL = req.CoverImageURL
	}
	if req.Location != nil {
		user.Location = req.Location
	}
	if req.EducationLevel != nil {
		user.EducationLevel = req.EducationLevel
	}
	if req.CurrentStatus != nil {
		user.CurrentStatus = *req.CurrentStatus
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Skills != nil {
		user.Skills = pq.StringArray(*req.Skills)
	}
	if req.ResumeURL != nil {
		user.ResumeURL = req.ResumeURL
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(user)
}

type AddCertificationRequest struct {
	Name                string     `json:"name" validate:"required"`
	IssuingOrganization string     `json:"issuing_organization" validate:"required"`
	IssueDate           *time.Time `json:"issue_date"`
	ExpirationDate      *time.Time `json:"expiration_date"`
	CredentialID        *string    `json:"credential_id"`
	CredentialURL       *string    `json:"credential_url"`
}

func AddCertification(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req AddCertificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cert := models.Certification{
		UserID:              user.ID,
		Name:                req.Name,
		IssuingOrganization: req.IssuingOrganization,
		ExpirationDate:      req.ExpirationDate,
		CredentialID:        req.CredentialID,
		CredentialURL:       req.CredentialURL,
	}
	if req.IssueDate != nil {
		cert.IssueDate = *req.IssueDate
	} else {
		cert.IssueDate = time.Now()
	}

	if err := database.DB.Create(&cert).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add certification"})
	}

	return c.Status(fiber.StatusCreated).JSON(cert)
}
