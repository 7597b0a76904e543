package models

import (
	"time"

	"github.com/google/uuid"
)

// Certification is an entry on a user's profile. Rows are appended by the
// internship certificate flow and by the user editing their own profile.
type Certification struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID              uuid.UUID  `gorm:"not null;index" json:"user_id"`
	Name                string     `gorm:"size:255;not null" json:"name"`
	IssuingOrganization string     `gorm:"size:255;not null" json:"issuing_organization"`
	IssueDate           time.Time  `json:"issue_date"`
	ExpirationDate      *time.Time `json:"expiration_date"`
	CredentialID        *string    `gorm:"size:255" json:"credential_id"`
	CredentialURL       *string    `gorm:"size:255" json:"credential_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
