package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Internship struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	CompanyID uuid.UUID `gorm:"not null;index" json:"company_id"`

	JobType          string  `gorm:"size:50;default:'Internship'" json:"job_type"`
	WorkMode         *string `gorm:"size:50" json:"work_mode"`
	Location         *string `gorm:"size:255" json:"location"`
	ShortSummary     *string `gorm:"type:text" json:"short_summary"`
	Responsibilities *string `gorm:"type:text" json:"responsibilities"`
	Education        *string `gorm:"size:255" json:"education"`

	RequiredSkills   pq.StringArray `gorm:"type:text[]" json:"required_skills"`
	NiceToHaveSkills pq.StringArray `gorm:"type:text[]" json:"nice_to_have_skills"`
	Perks            pq.StringArray `gorm:"type:text[]" json:"perks"`

	SalaryMin          *string `gorm:"size:50" json:"salary_min"`
	SalaryMax          *string `gorm:"size:50" json:"salary_max"`
	ConversionPossible bool    `gorm:"default:false" json:"conversion_possible"`
	CoverImage         *string `gorm:"size:255" json:"cover_image"`

	Deadline *time.Time `json:"deadline"`

	// Mutated only by admin moderation.
	Status string `gorm:"size:20;not null;default:'Pending'" json:"status"`

	Company Company `gorm:"foreignkey:CompanyID" json:"company,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
