package notifications

import (
	"testing"

	"github.com/careerbridge/backend/models"
	"github.com/stretchr/testify/assert"
)

func TestMailConstructors(t *testing.T) {
	user := models.User{FullName: "Asha Rao", Email: "asha@example.com"}

	t.Run("welcome", func(t *testing.T) {
		m := WelcomeMail(user)
		assert.Equal(t, "Asha Rao", m.ToName)
		assert.Equal(t, "asha@example.com", m.ToEmail)
		assert.Equal(t, "Welcome to CareerBridge!", m.Subject)
	})

	t.Run("application status carries the new status", func(t *testing.T) {
		m := ApplicationStatusMail(user, models.AppShortlisted)
		assert.Equal(t, "Application Update", m.Subject)
		assert.Contains(t, m.HTML, "<b>Shortlisted</b>")
	})

	t.Run("booking confirmation carries program and link", func(t *testing.T) {
		m := BookingConfirmedMail(user, "System Design Deep Dive", "https://meet.careerbridge.io/abc-def-ghij")
		assert.Contains(t, m.HTML, "System Design Deep Dive")
		assert.Contains(t, m.HTML, "https://meet.careerbridge.io/abc-def-ghij")
	})

	t.Run("mentor decisions", func(t *testing.T) {
		assert.Equal(t, "Your Mentor Profile has been Approved!", MentorApprovedMail(user).Subject)
		assert.Equal(t, "Update on Your Mentor Profile", MentorRejectedMail(user).Subject)
	})
}
