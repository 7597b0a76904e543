package handlers

import (
	"errors"
	"time"

	"github.com/careerbridge/backend/database"
	"github.com/careerbridge/backend/models"
	"github.com/careerbridge/backend/notifications"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplyRequest struct {
	JobID        *string `json:"job_id" validate:"omitempty,uuid"`
	InternshipID *string `json:"internship_id" validate:"omitempty,uuid"`
	CoverLetter  *string `json:"cover_letter"`
	PortfolioURL *string `json:"portfolio_url"`
	// Resume uploaded with this application; falls back to the profile resume.
	ResumeURL *string `json:"resume_url"`
}

// Apply creates a candidacy against exactly one job or internship. The
// (user, posting) uniqueness invariant is enforced by the composite unique
// indexes, not by a read-then-insert check.
func Apply(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var jobID, internshipID *uuid.UUID
	if req.JobID != nil {
		id, _ := uuid.Parse(*req.JobID)
		jobID = &id
	}
	if req.InternshipID != nil {
		id, _ := uuid.Parse(*req.InternshipID)
		internshipID = &id
	}

	target, err := models.NewApplicationTarget(jobID, internshipID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Must specify job_id or internship_id"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	resumeURL := req.ResumeURL
	if resumeURL == nil {
		resumeURL = user.ResumeURL
	}
	if resumeURL == nil || *resumeURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Resume is required. Please upload one or update your profile."})
	}

	var companyID uuid.UUID
	if target.IsInternship() {
		var internship models.Internship
		if err := database.DB.First(&internship, "id = ?", target.InternshipID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Internship not found"})
		}
		companyID = internship.CompanyID
	} else {
		var job models.Job
		if err := database.DB.First(&job, "id = ?", target.JobID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
		}
		companyID = job.CompanyID
	}

	application := models.Application{
		UserID:       userID,
		JobID:        target.JobID,
		InternshipID: target.InternshipID,
		CompanyID:    companyID,
		ResumeURL:    *resumeURL,
		CoverLetter:  req.CoverLetter,
		PortfolioURL: req.PortfolioURL,
		Status:       models.AppApplied,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&application).Error; err != nil {
			return err
		}
		note := "Application submitted"
		entry := application.AppendTimeline(models.AppApplied, &note, nil)
		return tx.Create(&entry).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You have already applied to this position"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	database.DB.Preload("Timeline").First(&application, "id = ?", application.ID)
	return c.Status(fiber.StatusCreated).JSON(application)
}

func GetAllApplications(c *fiber.Ctx) error {
	var applications []models.Application
	database.DB.
		Preload("User").
		Preload("Job").
		Preload("Internship").
		Preload("Company").
		Order("created_at desc").
		Find(&applications)
	return c.JSON(applications)
}

func GetUserApplications(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var applications []models.Application
	database.DB.
		Preload("Job").
		Preload("Internship").
		Preload("Company").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&applications)
	return c.JSON(applications)
}

func GetCompanyApplications(c *fiber.Ctx) error {
	var applications []models.Application
	database.DB.
		Preload("User").
		Preload("Job").
		Preload("Internship").
		Where("company_id = ?", c.Params("companyId")).
		Order("created_at desc").
		Find(&applications)
	return c.JSON(applications)
}

func GetApplicationByID(c *fiber.Ctx) error {
	var application models.Application
	err := database.DB.
		Preload("User").
		Preload("Job").
		Preload("Internship").
		Preload("Company").
		Preload("Timeline", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp asc") }).
		First(&application, "id = ?", c.Params("id")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}
	return c.JSON(application)
}

type UpdateStatusRequest struct {
	Status string  `json:"status" validate:"required"`
	Note   *string `json:"note"`
}

// UpdateApplicationStatus moves an application to a new status and appends
// the change to its timeline. Which actors may call this is the
// authorization layer's problem; the transition itself is only constrained
// by the pluggable validator.
func UpdateApplicationStatus(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	actorID, _ := uuid.Parse(claims["user_id"].(string))

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var application models.Application
	if err := database.DB.Preload("User").First(&application, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}

	if err := models.ValidateTransition(application.Status, req.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&application).Update("status", req.Status).Error; err != nil {
			return err
		}
		entry := application.AppendTimeline(req.Status, req.Note, &actorID)
		return tx.Create(&entry).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	go notifications.Send(notifications.ApplicationStatusMail(application.User, req.Status))

	database.DB.Preload("Timeline", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp asc") }).
		First(&application, "id = ?", application.ID)
	return c.JSON(application)
}

type UploadCertificateRequest struct {
	CertificateURL string `json:"certificate_url" validate:"required"`
}

// UploadApplicationCertificate closes out an internship: it marks the
// application Completed and pushes a certification onto the applicant's
// profile. Both writes happen in one transaction so the profile can never
// reference a certificate the application does not carry.
func UploadApplicationCertificate(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	actorID, _ := uuid.Parse(claims["user_id"].(string))

	var req UploadCertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Certificate file is required"})
	}

	var application models.Application
	err := database.DB.
		Preload("Internship").
		Preload("Company").
		First(&application, "id = ?", c.Params("id")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}

	certName := "Internship Program"
	if application.InternshipID != nil {
		certName = application.Internship.Title
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"certificate_url": req.CertificateURL,
			"status":          models.AppCompleted,
		}
		if err := tx.Model(&application).Updates(updates).Error; err != nil {
			return err
		}

		note := "Internship completed and certificate uploaded"
		entry := application.AppendTimeline(models.AppCompleted, &note, &actorID)
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		credentialID := application.ID.String()
		certification := models.Certification{
			UserID:              application.UserID,
			Name:                certName,
			IssuingOrganization: application.Company.CompanyName,
			IssueDate:           time.Now(),
			CredentialID:        &credentialID,
			CredentialURL:       &req.CertificateURL,
		}
		return tx.Create(&certification).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Certificate uploaded and user profile updated", "application": application})
}
