package handlers

import (
	"errors"
	"strconv"

	"github.com/careerbridge/backend/database"
	"github.com/careerbridge/backend/models"
	"github.com/careerbridge/backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type MentorRequest struct {
	FullName          string   `json:"full_name" validate:"required"`
	ProfilePhoto      *string  `json:"profile_photo"`
	CoverImage        *string  `json:"cover_image"`
	Headline          *string  `json:"headline"`
	CurrentRole       *string  `json:"current_role"`
	Company           *string  `json:"company"`
	LinkedinURL       *string  `json:"linkedin_url"`
	Bio               *string  `json:"bio"`
	YearsOfExperience *string  `json:"years_of_experience"`
	PrimaryDomain     *string  `json:"primary_domain"`
	ExpertiseTags     []string `json:"expertise_tags"`
	SubSkills         []string `json:"sub_skills"`
	PricingType       *string  `json:"pricing_type"`
	PricingAmount     *float64 `json:"pricing_amount"`
	WeeklySlots       *int     `json:"weekly_slots"`
	MaxMentees        *int     `json:"max_mentees"`
	IsPaused          *bool    `json:"is_paused"`
}

// CreateMentor registers a mentor profile for the logged-in user. One
// profile per user; a second attempt conflicts on the unique user_id.
func CreateMentor(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req MentorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mentor := models.Mentor{
		UserID:            userID,
		FullName:          req.FullName,
		ProfilePhoto:      req.ProfilePhoto,
		CoverImage:        req.CoverImage,
		Headline:          req.Headline,
		CurrentRole:       req.CurrentRole,
		Company:           req.Company,
		LinkedinURL:       req.LinkedinURL,
		Bio:               req.Bio,
		YearsOfExperience: req.YearsOfExperience,
		PrimaryDomain:     req.PrimaryDomain,
		ExpertiseTags:     pq.StringArray(req.ExpertiseTags),
		SubSkills:         pq.StringArray(req.SubSkills),
		WeeklySlots:       req.WeeklySlots,
		MaxMentees:        req.MaxMentees,
	}
	if req.PricingType != nil {
		mentor.PricingType = *req.PricingType
	}
	if req.PricingAmount != nil {
		mentor.PricingAmount = *req.PricingAmount
	}

	if err := database.DB.Create(&mentor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A mentor profile already exists for this user"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create mentor"})
	}
	return c.Status(fiber.StatusCreated).JSON(mentor)
}

func GetAllMentors(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}

	var mentors []models.Mentor
	var total int64
	database.DB.Model(&models.Mentor{}).Count(&total)
	database.DB.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&mentors)

	return c.JSON(fiber.Map{
		"mentors":     mentors,
		"currentPage": page,
		"totalPages":  (total + int64(limit) - 1) / int64(limit),
		"total":       total,
	})
}

// GetMentorByID returns the mentor together with courses, jobs and
// internships matched on expertise tags plus sub-skills.
func GetMentorByID(c *fiber.Ctx) error {
	var mentor models.Mentor
	if err := database.DB.First(&mentor, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}

	skills := services.MentorMatchTags(mentor)
	limit := services.DefaultRecommendationLimit

	return c.JSON(fiber.Map{
		"mentor":                 mentor,
		"recommendedCourses":     services.RecommendedCourses(skills, limit),
		"recommendedJobs":        services.RecommendedJobs(skills, limit),
		"recommendedInternships": services.RecommendedInternships(skills, limit),
	})
}

func UpdateMentor(c *fiber.Ctx) error {
	var mentor models.Mentor
	if err := database.DB.First(&mentor, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}

	var req MentorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	// Moderation status is not writable here; pausing is.
	if req.FullName != "" {
		mentor.FullName = req.FullName
	}
	if req.ProfilePhoto != nil {
		mentor.ProfilePhoto = req.ProfilePhoto
	}
	if req.CoverImage != nil {
		mentor.CoverImage = req.CoverImage
	}
	if req.Headline != nil {
		mentor.Headline = req.Headline
	}
	if req.CurrentRole != nil {
		mentor.CurrentRole = req.CurrentRole
	}
	if req.Company != nil {
		mentor.Company = req.Company
	}
	if req.LinkedinURL != nil {
		mentor.LinkedinURL = req.LinkedinURL
	}
	if req.Bio != nil {
		mentor.Bio = req.Bio
	}
	if req.YearsOfExperience != nil {
		mentor.YearsOfExperience = req.YearsOfExperience
	}
	if req.PrimaryDomain != nil {
		mentor.PrimaryDomain = req.PrimaryDomain
	}
	if req.ExpertiseTags != nil {
		mentor.ExpertiseTags = pq.StringArray(req.ExpertiseTags)
	}
	if req.SubSkills != nil {
		mentor.SubSkills = pq.StringArray(req.SubSkills)
	}
	if req.PricingType != nil {
		mentor.PricingType = *req.PricingType
	}
	if req.PricingAmount != nil {
		mentor.PricingAmount = *req.PricingAmount
	}
	if req.WeeklySlots != nil {
		mentor.WeeklySlots = req.WeeklySlots
	}
	if req.MaxMentees != nil {
		mentor.MaxMentees = req.MaxMentees
	}
	if req.IsPaused != nil {
		mentor.IsPaused = *req.IsPaused
	}

	if err := database.DB.Save(&mentor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update mentor"})
	}
	return c.JSON(mentor)
}

func DeleteMentor(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.Mentor{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete mentor"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}
	return c.JSON(fiber.Map{"message": "Mentor deleted successfully"})
}
