package handlers

import (
	"strconv"
	"time"

	"github.com/careerbridge/backend/database"
	"github.com/careerbridge/backend/models"
	"github.com/careerbridge/backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type InternshipRequest struct {
	Title              string     `json:"title" validate:"required"`
	CompanyID          string     `json:"company_id" validate:"required,uuid"`
	WorkMode           *string    `json:"work_mode"`
	Location           *string    `json:"location"`
	ShortSummary       *string    `json:"short_summary"`
	Responsibilities   *string    `json:"responsibilities"`
	Education          *string    `json:"education"`
	RequiredSkills     []string   `json:"required_skills"`
	NiceToHaveSkills   []string   `json:"nice_to_have_skills"`
	Perks              []string   `json:"perks"`
	SalaryMin          *string    `json:"salary_min"`
	SalaryMax          *string    `json:"salary_max"`
	ConversionPossible *bool      `json:"conversion_possible"`
	CoverImage         *string    `json:"cover_image"`
	Deadline           *time.Time `json:"deadline"`
}

func CreateInternship(c *fiber.Ctx) error {
	var req InternshipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	companyID, _ := uuid.Parse(req.CompanyID)
	var company models.Company
	if err := database.DB.First(&company, "id = ?", companyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}

	internship := models.Internship{
		Title:            req.Title,
		CompanyID:        companyID,
		WorkMode:         req.WorkMode,
		Location:         req.Location,
		ShortSummary:     req.ShortSummary,
		Responsibilities: req.Responsibilities,
		Education:        req.Education,
		RequiredSkills:   pq.StringArray(req.RequiredSkills),
		NiceToHaveSkills: pq.StringArray(req.NiceToHaveSkills),
		Perks:            pq.StringArray(req.Perks),
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		CoverImage:       req.CoverImage,
		Deadline:         req.Deadline,
	}
	if req.ConversionPossible != nil {
		internship.ConversionPossible = *req.ConversionPossible
	}

	if err := database.DB.Create(&internship).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create internship"})
	}
	return c.Status(fiber.StatusCreated).JSON(internship)
}

func GetAllInternships(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}

	var internships []models.Internship
	var total int64
	database.DB.Model(&models.Internship{}).Count(&total)
	database.DB.
		Preload("Company").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&internships)

	return c.JSON(fiber.Map{
		"internships": internships,
		"currentPage": page,
		"totalPages":  (total + int64(limit) - 1) / int64(limit),
		"total":       total,
	})
}

// GetInternshipByID returns the internship together with skill-matched
// courses, jobs and mentors.
func GetInternshipByID(c *fiber.Ctx) error {
	var internship models.Internship
	if err := database.DB.Preload("Company").First(&internship, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Internship not found"})
	}

	skills := []string(internship.RequiredSkills)
	limit := services.DefaultRecommendationLimit

	return c.JSON(fiber.Map{
		"internship":         internship,
		"recommendedCourses": services.RecommendedCourses(skills, limit),
		"recommendedJobs":    services.RecommendedJobs(skills, limit),
		"recommendedMentors": services.RecommendedMentors(skills, limit),
	})
}

func UpdateInternship(c *fiber.Ctx) error {
	var internship models.Internship
	if err := database.DB.First(&internship, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Internship not found"})
	}

	var req InternshipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Title != "" {
		internship.Title = req.Title
	}
	if req.WorkMode != nil {
		internship.WorkMode = req.WorkMode
	}
	if req.Location != nil {
		internship.Location = req.Location
	}
	if req.ShortSummary != nil {
		internship.ShortSummary = req.ShortSummary
	}
	if req.Responsibilities != nil {
		internship.Responsibilities = req.Responsibilities
	}
	if req.Education != nil {
		internship.Education = req.Education
	}
	if req.RequiredSkills != nil {
		internship.RequiredSkills = pq.StringArray(req.RequiredSkills)
	}
	if req.NiceToHaveSkills != nil {
		internship.NiceToHaveSkills = pq.StringArray(req.NiceToHaveSkills)
	}
	if req.Perks != nil {
		internship.Perks = pq.StringArray(req.Perks)
	}
	if req.SalaryMin != nil {
		internship.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		internship.SalaryMax = req.SalaryMax
	}
	if req.ConversionPossible != nil {
		internship.ConversionPossible = *req.ConversionPossible
	}
	if req.CoverImage != nil {
		internship.CoverImage = req.CoverImage
	}
	if req.Deadline != nil {
		internship.Deadline = req.Deadline
	}

	if err := database.DB.Save(&internship).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update internship"})
	}
	return c.JSON(internship)
}

func DeleteInternship(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.Internship{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete internship"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Internship not found"})
	}
	return c.JSON(fiber.Map{"message": "Internship deleted successfully"})
}
