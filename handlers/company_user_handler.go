package handlers

import (
	"errors"

	"github.com/careerbridge/backend/database"
	"github.com/careerbridge/backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddCompanyUserRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	CompanyID string `json:"company_id" validate:"required,uuid"`
	Role      string `json:"role" validate:"required,oneof=admin recruiter"`
}

// AddCompanyUser attaches a user to a company with a role. One membership per
// (user, company) pair, enforced by the composite unique index.
func AddCompanyUser(c *fiber.Ctx) error {
	var req AddCompanyUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID, _ := uuid.Parse(req.UserID)
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	companyID, _ := uuid.Parse(req.CompanyID)
	var company models.Company
	if err := database.DB.First(&company, "id = ?", companyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}

	membership := models.CompanyUser{
		UserID:    userID,
		CompanyID: companyID,
		Role:      req.Role,
	}
	if err := database.DB.Create(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User is already a member of this company"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add company user"})
	}

	return c.Status(fiber.StatusCreated).JSON(membership)
}

func GetCompanyUsers(c *fiber.Ctx) error {
	query := database.DB.Preload("User").Preload("Company")
	if companyID := c.Query("company_id"); companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}

	var memberships []models.CompanyUser
	query.Order("created_at desc").Find(&memberships)
	return c.JSON(memberships)
}

type UpdateCompanyUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin recruiter"`
}

func UpdateCompanyUserRole(c *fiber.Ctx) error {
	var req UpdateCompanyUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var membership models.CompanyUser
	if err := database.DB.First(&membership, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company user record not found"})
	}

	membership.Role = req.Role
	if err := database.DB.Save(&membership).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update role"})
	}
	return c.JSON(membership)
}

func RemoveCompanyUser(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.CompanyUser{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove company user"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company user record not found"})
	}
	return c.JSON(fiber.Map{"message": "User removed from company successfully"})
}
