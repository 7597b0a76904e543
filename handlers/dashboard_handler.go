package handlers

import (
	"github.com/careerbridge/backend/database"
	"github.com/careerbridge/backend/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

// GetDashboardAnalytics aggregates the admin dashboard counters. Each count
// is an independent query, so they run concurrently on the pooled
// connection.
func GetDashboardAnalytics(c *fiber.Ctx) error {
	var (
		totalUsers          int64
		totalCompanies      int64
		activeJobs          int64
		activeInternships   int64
		totalApplications   int64
		totalEnrollments    int64
		totalBookings       int64
		approvedMentors     int64
		pendingTransactions int64
	)

	var g errgroup.Group
	g.Go(func() error {
		return database.DB.Model(&models.User{}).Where("role <> ?", "admin").Count(&totalUsers).Error
	})
	g.Go(func() error {
		return database.DB.Model(&models.Company{}).Count(&totalCompanies).Error
	})
	g.Go(func() error {
		return database.DB.Model(&models.Job{}).Where("status = ?", models.StatusApproved).Count(&activeJobs).Error
	})
	g.Go(func() error {
		return database.DB.Model(&models.Internship{}).Where("status = ?", models.StatusApproved).Count(&activeInternships).Error
	})
	g.Go(func() error {
		return database.DB.Model(&models.Application{}).Count(&totalApplications).Error
	})
	g.Go(func() error {
		return database.DB.Model(&models.CourseEnrollment{}).Count(&totalEnrollments).Error
	})
	g.Go(func() error {
		return database.DB.Model(&models.MentorshipBooking{}).Count(&totalBookings).Error
	})
	g.Go(func() error {
		return database.DB.Model(&models.Mentor{}).Where("status = ?", models.StatusApproved).Count(&approvedMentors).Error
	})
	g.Go(func() error {
		return database.DB.Model(&models.Transaction{}).Where("status = ?", models.TxnPending).Count(&pendingTransactions).Error
	})

	if err := g.Wait(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard analytics"})
	}

	return c.JSON(fiber.Map{
		"total_users":          totalUsers,
		"total_companies":      totalCompanies,
		"active_jobs":          activeJobs,
		"active_internships":   activeInternships,
		"total_applications":   totalApplications,
		"total_enrollments":    totalEnrollments,
		"total_bookings":       totalBookings,
		"approved_mentors":     approvedMentors,
		"pending_transactions": pendingTransactions,
	})
}
