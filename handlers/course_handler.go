package handlers

import (
	"strconv"

	"github.com/careerbridge/backend/database"
	"github.com/careerbridge/backend/models"
	"github.com/careerbridge/backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type LessonRequest struct {
	Title         string  `json:"title" validate:"required"`
	Duration      int     `json:"duration"`
	IsPreviewFree bool    `json:"is_preview_free"`
	VideoURL      *string `json:"video_url"`
}

type SectionRequest struct {
	Title   string          `json:"title" validate:"required"`
	Lessons []LessonRequest `json:"lessons" validate:"dive"`
}

type CourseRequest struct {
	Title              string           `json:"title" validate:"required"`
	Level              *string          `json:"level"`
	Hook               *string          `json:"hook"`
	Category           *string          `json:"category"`
	Skills             []string         `json:"skills"`
	Outcomes           []string         `json:"outcomes"`
	Opportunities      []string         `json:"opportunities"`
	Sections           []SectionRequest `json:"sections" validate:"dive"`
	InstructorName     *string          `json:"instructor_name"`
	InstructorBio      *string          `json:"instructor_bio"`
	InstructorLinkedin *string          `json:"instructor_linkedin"`
	PriceType          *string          `json:"price_type" validate:"omitempty,oneof=Free Paid"`
	PriceAmount        *float64         `json:"price_amount"`
	AccessType         *string          `json:"access_type"`
	HasCertificate     *bool            `json:"has_certificate"`
	Thumbnail          *string          `json:"thumbnail"`
	CoverImage         *string          `json:"cover_image"`
	Status             *string          `json:"status" validate:"omitempty,oneof=Draft Published Archived"`
	Visibility         *string          `json:"visibility"`
	IsFeatured         *bool            `json:"is_featured"`
	MaxStudents        *int             `json:"max_students"`
}

// assignCurriculumPaths derives storage paths for a persisted course tree and
// returns the folders to provision. IDs must already be set.
func assignCurriculumPaths(course *models.Course) []string {
	folders := []string{"courses/" + course.ID.String()}
	for si := range course.Sections {
		section := &course.Sections[si]
		path := services.SectionStoragePath(course.ID.String(), section.ID.String())
		section.StoragePath = &path
		folders = append(folders, path)
		for li := range section.Lessons {
			lesson := &section.Lessons[li]
			lessonPath := services.LessonStoragePath(course.ID.String(), section.ID.String(), lesson.ID.String())
			lesson.StoragePath = &lessonPath
		}
	}
	return folders
}

// CreateCourse persists the course, its nested curriculum and the derived
// storage paths in one transaction, then queues best-effort storage folder
// provisioning for the course and each section.
func CreateCourse(c *fiber.Ctx) error {
	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course := models.Course{
		Title:              req.Title,
		Hook:               req.Hook,
		Category:           req.Category,
		Skills:             pq.StringArray(req.Skills),
		Outcomes:           pq.StringArray(req.Outcomes),
		Opportunities:      pq.StringArray(req.Opportunities),
		InstructorName:     req.InstructorName,
		InstructorBio:      req.InstructorBio,
		InstructorLinkedin: req.InstructorLinkedin,
		Thumbnail:          req.Thumbnail,
		CoverImage:         req.CoverImage,
		MaxStudents:        req.MaxStudents,
	}
	if req.Level != nil {
		course.Level = *req.Level
	}
	if req.PriceType != nil {
		course.PriceType = *req.PriceType
	}
	if req.PriceAmount != nil {
		course.PriceAmount = *req.PriceAmount
	}
	if req.AccessType != nil {
		course.AccessType = *req.AccessType
	}
	if req.HasCertificate != nil {
		course.HasCertificate = *req.HasCertificate
	}
	if req.Status != nil {
		course.Status = *req.Status
	}
	if req.Visibility != nil {
		course.Visibility = *req.Visibility
	}

	for i, s := range req.Sections {
		section := models.CourseSection{Title: s.Title, Order: i}
		for j, l := range s.Lessons {
			section.Lessons = append(section.Lessons, models.CourseLesson{
				Title:         l.Title,
				Order:         j,
				Duration:      l.Duration,
				IsPreviewFree: l.IsPreviewFree,
				VideoURL:      l.VideoURL,
			})
		}
		course.Sections = append(course.Sections, section)
	}

	var folders []string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return err
		}

		// IDs exist now; write back the derived storage paths before commit.
		folders = assignCurriculumPaths(&course)
		for si := range course.Sections {
			section := &course.Sections[si]
			if err := tx.Model(&models.CourseSection{}).Where("id = ?", section.ID).Update("storage_path", *section.StoragePath).Error; err != nil {
				return err
			}
			for li := range section.Lessons {
				lesson := &section.Lessons[li]
				if err := tx.Model(&models.CourseLesson{}).Where("id = ?", lesson.ID).Update("storage_path", *lesson.StoragePath).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create course"})
	}

	// Folder creation is queued and never blocks the response.
	for _, folder := range folders {
		services.ProvisionFolder(folder)
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

func GetAllCourses(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}

	var courses []models.Course
	var total int64
	database.DB.Model(&models.Course{}).Count(&total)
	database.DB.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&courses)

	return c.JSON(fiber.Map{
		"courses":     courses,
		"currentPage": page,
		"totalPages":  (total + int64(limit) - 1) / int64(limit),
		"total":       total,
	})
}

// GetCourseByID returns the course, its ordered curriculum and skill-matched
// jobs, internships and mentors.
func GetCourseByID(c *fiber.Ctx) error {
	var course models.Course
	err := database.DB.
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("Sections.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		First(&course, "id = ?", c.Params("id")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	skills := []string(course.Skills)
	limit := services.DefaultRecommendationLimit

	return c.JSON(fiber.Map{
		"course":                 course,
		"recommendedJobs":        services.RecommendedJobs(skills, limit),
		"recommendedInternships": services.RecommendedInternships(skills, limit),
		"recommendedMentors":     services.RecommendedMentors(skills, limit),
	})
}

type AddSectionRequest struct {
	Title string `json:"title" validate:"required"`
}

func AddSection(c *fiber.Ctx) error {
	var course models.Course
	if err := database.DB.First(&course, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var req AddSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	database.DB.Model(&models.CourseSection{}).Where("course_id = ?", course.ID).Count(&count)

	section := models.CourseSection{
		CourseID: course.ID,
		Title:    req.Title,
		Order:    int(count),
	}
	if err := database.DB.Create(&section).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add section"})
	}

	path := services.SectionStoragePath(course.ID.String(), section.ID.String())
	section.StoragePath = &path
	database.DB.Model(&section).Update("storage_path", path)
	services.ProvisionFolder(path)

	return c.Status(fiber.StatusCreated).JSON(section)
}

func AddLesson(c *fiber.Ctx) error {
	var section models.CourseSection
	if err := database.DB.First(&section, "id = ? AND course_id = ?", c.Params("sectionId"), c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Section not found"})
	}

	var req LessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	database.DB.Model(&models.CourseLesson{}).Where("section_id = ?", section.ID).Count(&count)

	lesson := models.CourseLesson{
		SectionID:     section.ID,
		Title:         req.Title,
		Order:         int(count),
		Duration:      req.Duration,
		IsPreviewFree: req.IsPreviewFree,
		VideoURL:      req.VideoURL,
	}
	if err := database.DB.Create(&lesson).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add lesson"})
	}

	path := services.LessonStoragePath(section.CourseID.String(), section.ID.String(), lesson.ID.String())
	lesson.StoragePath = &path
	database.DB.Model(&lesson).Update("storage_path", path)

	return c.Status(fiber.StatusCreated).JSON(lesson)
}

func GetCurriculum(c *fiber.Ctx) error {
	var course models.Course
	if err := database.DB.First(&course, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var sections []models.CourseSection
	database.DB.
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Where("course_id = ?", course.ID).
		Order("position asc").
		Find(&sections)

	return c.JSON(sections)
}

func UpdateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := database.DB.First(&course, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Title != "" {
		course.Title = req.Title
	}
	if req.Level != nil {
		course.Level = *req.Level
	}
	if req.Hook != nil {
		course.Hook = req.Hook
	}
	if req.Category != nil {
		course.Category = req.Category
	}
	if req.Skills != nil {
		course.Skills = pq.StringArray(req.Skills)
	}
	if req.Outcomes != nil {
		course.Outcomes = pq.StringArray(req.Outcomes)
	}
	if req.Opportunities != nil {
		course.Opportunities = pq.StringArray(req.Opportunities)
	}
	if req.InstructorName != nil {
		course.InstructorName = req.InstructorName
	}
	if req.InstructorBio != nil {
		course.InstructorBio = req.InstructorBio
	}
	if req.InstructorLinkedin != nil {
		course.InstructorLinkedin = req.InstructorLinkedin
	}
	if req.PriceType != nil {
		course.PriceType = *req.PriceType
	}
	if req.PriceAmount != nil {
		course.PriceAmount = *req.PriceAmount
	}
	if req.AccessType != nil {
		course.AccessType = *req.AccessType
	}
	if req.HasCertificate != nil {
		course.HasCertificate = *req.HasCertificate
	}
	if req.Thumbnail != nil {
		course.Thumbnail = req.Thumbnail
	}
	if req.CoverImage != nil {
		course.CoverImage = req.CoverImage
	}
	if req.Status != nil {
		course.Status = *req.Status
	}
	if req.Visibility != nil {
		course.Visibility = *req.Visibility
	}
	if req.IsFeatured != nil {
		course.IsFeatured = *req.IsFeatured
	}
	if req.MaxStudents != nil {
		course.MaxStudents = req.MaxStudents
	}

	if err := database.DB.Save(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update course"})
	}
	return c.JSON(course)
}

func DeleteCourse(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.Course{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}
