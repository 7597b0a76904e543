package handlers

import (
	"strconv"

	"github.com/careerbridge/backend/database"
	"github.com/careerbridge/backend/models"
	"github.com/gofiber/fiber/v2"
)

type CompanyRequest struct {
	CompanyName string  `json:"company_name" validate:"required"`
	Industry    *string `json:"industry"`
	Website     *string `json:"website"`
	LogoURL     *string `json:"logo_url"`
	CoverImage  *string `json:"cover_image"`
}

func CreateCompany(c *fiber.Ctx) error {
	var req CompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	company := models.Company{
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		CoverImage:  req.CoverImage,
	}
	if err := database.DB.Create(&company).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create company"})
	}

	return c.Status(fiber.StatusCreated).JSON(company)
}

func GetAllCompanies(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}

	var companies []models.Company
	var total int64
	database.DB.Model(&models.Company{}).Count(&total)
	database.DB.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&companies)

	return c.JSON(fiber.Map{
		"companies":   companies,
		"currentPage": page,
		"totalPages":  (total + int64(limit) - 1) / int64(limit),
		"total":       total,
	})
}

func GetCompanyByID(c *fiber.Ctx) error {
	var company models.Company
	if err := database.DB.First(&company, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}
	return c.JSON(company)
}

func UpdateCompany(c *fiber.Ctx) error {
	var company models.Company
	if err := database.DB.First(&company, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}

	var req CompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	// The verified flag is moderation-only; it is never writable here.
	if req.CompanyName != "" {
		company.CompanyName = req.CompanyName
	}
	if req.Industry != nil {
		company.Industry = req.Industry
	}
	if req.Website != nil {
		company.Website = req.Website
	}
	if req.LogoURL != nil {
		company.LogoURL = req.LogoURL
	}
	if req.CoverImage != nil {
		company.CoverImage = req.CoverImage
	}

	if err := database.DB.Save(&company).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update company"})
	}
	return c.JSON(company)
}

func DeleteCompany(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.Company{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete company"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}
	return c.JSON(fiber.Map{"message": "Company deleted successfully"})
}
