package models

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyName string    `gorm:"size:255;not null" json:"company_name"`
	Industry    *string   `gorm:"size:255" json:"industry"`
	Website     *string   `gorm:"size:255" json:"website"`
	LogoURL     *string   `gorm:"size:255" json:"logo_url"`
	CoverImage  *string   `gorm:"size:255" json:"cover_image"`

	// Flipped only by admin moderation.
	Verified bool `gorm:"default:false" json:"verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
