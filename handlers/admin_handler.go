package handlers

import (
	"github.com/careerbridge/backend/database"
	"github.com/careerbridge/backend/models"
	"github.com/careerbridge/backend/notifications"
	"github.com/gofiber/fiber/v2"
)

// moderate flips the status column on a moderated record and 404s when the
// id does not exist.
func moderate(c *fiber.Ctx, model interface{}, status, noun string) error {
	result := database.DB.Model(model).Where("id = ?", c.Params("id")).Update("status", status)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update " + noun})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": noun + " not found"})
	}
	return c.JSON(fiber.Map{"message": noun + " " + status})
}

func ApproveJob(c *fiber.Ctx) error {
	return moderate(c, &models.Job{}, models.StatusApproved, "Job")
}

func RejectJob(c *fiber.Ctx) error {
	return moderate(c, &models.Job{}, models.StatusRejected, "Job")
}

func ApproveInternship(c *fiber.Ctx) error {
	return moderate(c, &models.Internship{}, models.StatusApproved, "Internship")
}

func RejectInternship(c *fiber.Ctx) error {
	return moderate(c, &models.Internship{}, models.StatusRejected, "Internship")
}

func ListPendingMentors(c *fiber.Ctx) error {
	var mentors []models.Mentor
	if err := database.DB.Preload("User").Where("status = ?", models.StatusPending).Find(&mentors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(mentors)
}

// ApproveMentor clears a mentor profile for matching and notifies the owner.
func ApproveMentor(c *fiber.Ctx) error {
	var mentor models.Mentor
	if err := database.DB.Preload("User").First(&mentor, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}

	mentor.Status = models.StatusApproved
	if err := database.DB.Save(&mentor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update mentor"})
	}

	go notifications.Send(notifications.MentorApprovedMail(mentor.User))

	return c.JSON(fiber.Map{"message": "Mentor approved"})
}

func RejectMentor(c *fiber.Ctx) error {
	var mentor models.Mentor
	if err := database.DB.Preload("User").First(&mentor, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}

	mentor.Status = models.StatusRejected
	if err := database.DB.Save(&mentor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update mentor"})
	}

	go notifications.Send(notifications.MentorRejectedMail(mentor.User))

	return c.JSON(fiber.Map{"message": "Mentor rejected"})
}

func VerifyCompany(c *fiber.Ctx) error {
	result := database.DB.Model(&models.Company{}).Where("id = ?", c.Params("id")).Update("verified", true)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify company"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}
	return c.JSON(fiber.Map{"message": "Company verified"})
}

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	database.DB.Order("created_at desc").Find(&users)
	return c.JSON(users)
}
