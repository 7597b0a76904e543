package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Phone    *string   `gorm:"size:20" json:"phone"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'user'" json:"role"`

	Status        string `gorm:"size:20;not null;default:'Active'" json:"status"`
	EmailVerified bool   `gorm:"default:false" json:"email_verified"`

	ProfilePhotoURL *string `gorm:"size:255" json:"profile_photo_url"`
	CoverImageURL   *string `gorm:"size:255" json:"cover_image_url"`
	Location        *string `gorm:"size:255" json:"location"`
	EducationLevel  *string `gorm:"size:100" json:"education_level"`
	CurrentStatus   string  `gorm:"size:50;default:'Job seeker'" json:"current_status"`
	Bio             *string `gorm:"type:text" json:"bio"`

	Skills    pq.StringArray `gorm:"type:text[]" json:"skills"`
	ResumeURL *string        `gorm:"size:255" json:"resume_url"`

	Certifications []Certification `gorm:"foreignkey:UserID" json:"certifications,omitempty"`

	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
