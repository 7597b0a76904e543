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

type JobRequest struct {
	Title            string     `json:"title" validate:"required"`
	CompanyID        string     `json:"company_id" validate:"required,uuid"`
	JobType          *string    `json:"job_type"`
	WorkMode         *string    `json:"work_mode"`
	Location         *string    `json:"location"`
	ExperienceLevel  *string    `json:"experience_level"`
	ShortSummary     *string    `json:"short_summary"`
	Responsibilities *string    `json:"responsibilities"`
	Education        *string    `json:"education"`
	RequiredSkills   []string   `json:"required_skills"`
	NiceToHaveSkills []string   `json:"nice_to_have_skills"`
	SalaryMin        *string    `json:"salary_min"`
	SalaryMax        *string    `json:"salary_max"`
	CoverImage       *string    `json:"cover_image"`
	Deadline         *time.Time `json:"deadline"`
}

func CreateJob(c *fiber.Ctx) error {
	var req JobRequest
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

	job := models.Job{
		Title:            req.Title,
		CompanyID:        companyID,
		WorkMode:         req.WorkMode,
		Location:         req.Location,
		ExperienceLevel:  req.ExperienceLevel,
		ShortSummary:     req.ShortSummary,
		Responsibilities: req.Responsibilities,
		Education:        req.Education,
		RequiredSkills:   pq.StringArray(req.RequiredSkills),
		NiceToHaveSkills: pq.StringArray(req.NiceToHaveSkills),
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		CoverImage:       req.CoverImage,
		Deadline:         req.Deadline,
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}

	if err := database.DB.Create(&job).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create job"})
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

func GetAllJobs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}

	var jobs []models.Job
	var total int64
	database.DB.Model(&models.Job{}).Count(&total)
	database.DB.
		Preload("Company").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&jobs)

	return c.JSON(fiber.Map{
		"jobs":        jobs,
		"currentPage": page,
		"totalPages":  (total + int64(limit) - 1) / int64(limit),
		"totalJobs":   total,
	})
}

// GetJobByID returns the job together with skill-matched courses,
// internships and mentors.
func GetJobByID(c *fiber.Ctx) error {
	var job models.Job
	if err := database.DB.Preload("Company").First(&job, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}

	skills := []string(job.RequiredSkills)
	limit := services.DefaultRecommendationLimit

	return c.JSON(fiber.Map{
		"job":                    job,
		"recommendedCourses":     services.RecommendedCourses(skills, limit),
		"recommendedInternships": services.RecommendedInternships(skills, limit),
		"recommendedMentors":     services.RecommendedMentors(skills, limit),
	})
}

func UpdateJob(c *fiber.Ctx) error {
	var job models.Job
	if err := database.DB.First(&job, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}

	var req JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	// Moderation status is not writable here.
	if req.Title != "" {
		job.Title = req.Title
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.WorkMode != nil {
		job.WorkMode = req.WorkMode
	}
	if req.Location != nil {
		job.Location = req.Location
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = req.ExperienceLevel
	}
	if req.ShortSummary != nil {
		job.ShortSummary = req.ShortSummary
	}
	if req.Responsibilities != nil {
		job.Responsibilities = req.Responsibilities
	}
	if req.Education != nil {
		job.Education = req.Education
	}
	if req.RequiredSkills != nil {
		job.RequiredSkills = pq.StringArray(req.RequiredSkills)
	}
	if req.NiceToHaveSkills != nil {
		job.NiceToHaveSkills = pq.StringArray(req.NiceToHaveSkills)
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.CoverImage != nil {
		job.CoverImage = req.CoverImage
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}

	if err := database.DB.Save(&job).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update job"})
	}
	return c.JSON(job)
}

func DeleteJob(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.Job{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete job"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}
	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}
