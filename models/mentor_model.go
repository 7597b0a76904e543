package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Mentor struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"not null;unique" json:"user_id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`

	ProfilePhoto *string `gorm:"size:255" json:"profile_photo"`
	CoverImage   *string `gorm:"size:255" json:"cover_image"`
	Headline     *string `gorm:"size:255" json:"headline"`
	CurrentRole  *string `gorm:"size:255" json:"current_role"`
	Company      *string `gorm:"size:255" json:"company"`
	LinkedinURL  *string `gorm:"size:255" json:"linkedin_url"`
	Bio          *string `gorm:"type:text" json:"bio"`

	YearsOfExperience *string `gorm:"size:20" json:"years_of_experience"`
	PrimaryDomain     *string `gorm:"size:100" json:"primary_domain"`

	ExpertiseTags pq.StringArray `gorm:"type:text[]" json:"expertise_tags"`
	SubSkills     pq.StringArray `gorm:"type:text[]" json:"sub_skills"`

	PricingType   string  `gorm:"size:10;default:'Free'" json:"pricing_type"`
	PricingAmount float64 `gorm:"type:numeric(10,2);default:0" json:"pricing_amount"`

	WeeklySlots *int `json:"weekly_slots"`
	MaxMentees  *int `json:"max_mentees"`

	// Paused mentors are hidden from skill matching but keep their programs.
	IsPaused bool `gorm:"default:false" json:"is_paused"`

	// Mutated only by admin moderation.
	Status string `gorm:"size:20;not null;default:'Pending'" json:"status"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
