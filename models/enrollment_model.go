package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	EnrollmentInProgress = "In Progress"
	EnrollmentCompleted  = "Completed"
)

var ErrProgressOutOfRange = errors.New("progress must be between 0 and 100")

type CourseEnrollment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"not null;uniqueIndex:idx_enrollments_user_course" json:"user_id"`
	CourseID uuid.UUID `gorm:"not null;uniqueIndex:idx_enrollments_user_course" json:"course_id"`

	PurchaseStatus string     `gorm:"size:10;not null" json:"purchase_status"`
	TransactionID  *uuid.UUID `gorm:"unique" json:"transaction_id"`

	ProgressPercent  int    `gorm:"not null;default:0" json:"progress_percent"`
	CompletionStatus string `gorm:"size:20;not null;default:'In Progress'" json:"completion_status"`

	CertificateURL *string `gorm:"size:255" json:"certificate_url"`

	User        User        `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Course      Course      `gorm:"foreignkey:CourseID" json:"course,omitempty"`
	Transaction Transaction `gorm:"foreignkey:TransactionID" json:"transaction,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyProgress records a new watch percentage. Reaching exactly 100 flips
// the enrollment to Completed and fixes a certificate reference derived from
// the enrollment id. Progress is not required to be monotonic and completion
// is never reverted by a later lower value.
func (e *CourseEnrollment) ApplyProgress(percent int) error {
	if percent < 0 || percent > 100 {
		return ErrProgressOutOfRange
	}
	e.ProgressPercent = percent
	if percent == 100 {
		e.CompletionStatus = EnrollmentCompleted
		if e.CertificateURL == nil {
			url := CertificateURLFor(e.ID)
			e.CertificateURL = &url
		}
	}
	return nil
}

// CertificateURLFor derives the stable certificate reference for an
// enrollment. The PDF renderer uploads to the same path.
func CertificateURLFor(enrollmentID uuid.UUID) string {
	return fmt.Sprintf("https://cdn.careerbridge.io/certificates/enrollments/%s.pdf", enrollmentID)
}
