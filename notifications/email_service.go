package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	config "github.com/careerbridge/backend/configs"
	"github.com/careerbridge/backend/models"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

type recipient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type brevoPayload struct {
	Sender      recipient   `json:"sender"`
	To          []recipient `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent"`
}

type BrevoService struct {
	APIKey string
	Sender recipient
}

var EmailClient *BrevoService

func InitEmailService() {
	apiKey := config.Config("BREVO_API_KEY")
	senderEmail := config.Config("EMAIL_SENDER")
	senderName := config.Config("EMAIL_SENDER_NAME")

	if apiKey == "" || senderEmail == "" || senderName == "" {
		log.Println("⚠️ Email service not configured. Missing API Key, Sender Email, or Sender Name.")
		EmailClient = nil
		return
	}

	EmailClient = &BrevoService{
		APIKey: apiKey,
		Sender: recipient{Name: senderName, Email: senderEmail},
	}
	log.Println("✅ Email service initialized successfully.")
}

// Mail is a rendered transactional message ready for delivery.
type Mail struct {
	ToName  string
	ToEmail string
	Subject string
	HTML    string
}

func WelcomeMail(user models.User) Mail {
	return Mail{
		ToName:  user.FullName,
		ToEmail: user.Email,
		Subject: "Welcome to CareerBridge!",
		HTML:    "<h1>Welcome!</h1><p>Thank you for registering. Complete your profile to get matched with jobs, courses and mentors.</p>",
	}
}

func ApplicationStatusMail(user models.User, status string) Mail {
	return Mail{
		ToName:  user.FullName,
		ToEmail: user.Email,
		Subject: "Application Update",
		HTML:    fmt.Sprintf("<h1>Application Update</h1><p>Your application status has changed to <b>%s</b>.</p>", status),
	}
}

func BookingConfirmedMail(user models.User, programTitle, meetingLink string) Mail {
	return Mail{
		ToName:  user.FullName,
		ToEmail: user.Email,
		Subject: "Your Mentorship Session is Confirmed!",
		HTML:    fmt.Sprintf("<h1>Booking Confirmed</h1><p>Your session for <b>%s</b> is booked. Meeting link: %s</p>", programTitle, meetingLink),
	}
}

func MentorApprovedMail(user models.User) Mail {
	return Mail{
		ToName:  user.FullName,
		ToEmail: user.Email,
		Subject: "Your Mentor Profile has been Approved!",
		HTML:    "<h1>Congratulations!</h1><p>Your mentor profile is live. You can now publish programs and open slots for mentees.</p>",
	}
}

func MentorRejectedMail(user models.User) Mail {
	return Mail{
		ToName:  user.FullName,
		ToEmail: user.Email,
		Subject: "Update on Your Mentor Profile",
		HTML:    "<h1>Profile Update</h1><p>We regret to inform you that after careful review, your mentor profile was not approved at this time.</p>",
	}
}

// Send delivers a transactional mail. Failures are logged and swallowed;
// email is never allowed to fail the primary operation.
func Send(m Mail) {
	if EmailClient == nil {
		log.Println("Email client not initialized, skipping email send.")
		return
	}

	if err := EmailClient.deliver(m); err != nil {
		log.Printf("🔥 Failed to send email to %s: %v", m.ToEmail, err)
		return
	}

	log.Printf("✅ Email sent successfully to %s", m.ToEmail)
}

func (s *BrevoService) deliver(m Mail) error {
	if m.ToEmail == "" || !strings.Contains(m.ToEmail, "@") {
		return fmt.Errorf("invalid recipient email: %s", m.ToEmail)
	}

	name := m.ToName
	if name == "" {
		name = m.ToEmail[:strings.Index(m.ToEmail, "@")]
	}

	payload := brevoPayload{
		Sender:      s.Sender,
		To:          []recipient{{Name: name, Email: m.ToEmail}},
		Subject:     m.Subject,
		HTMLContent: m.HTML,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, brevoEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", s.APIKey)
	req.Header.Set("content-type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to send email via Brevo: %s", string(respBody))
	}
	return nil
}
