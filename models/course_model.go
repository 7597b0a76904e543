package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	CourseDraft     = "Draft"
	CoursePublished = "Published"
	CourseArchived  = "Archived"

	PriceFree = "Free"
	PricePaid = "Paid"
)

type Course struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title    string    `gorm:"size:255;not null" json:"title"`
	Level    string    `gorm:"size:20;default:'Beginner'" json:"level"`
	Hook     *string   `gorm:"size:255" json:"hook"`
	Category *string   `gorm:"size:100" json:"category"`

	Skills        pq.StringArray `gorm:"type:text[]" json:"skills"`
	Outcomes      pq.StringArray `gorm:"type:text[]" json:"outcomes"`
	Opportunities pq.StringArray `gorm:"type:text[]" json:"opportunities"`

	Sections []CourseSection `gorm:"foreignkey:CourseID" json:"sections"`

	InstructorName     *string `gorm:"size:255" json:"instructor_name"`
	InstructorBio      *string `gorm:"type:text" json:"instructor_bio"`
	InstructorLinkedin *string `gorm:"size:255" json:"instructor_linkedin"`

	PriceType      string  `gorm:"size:10;not null;default:'Free'" json:"price_type"`
	PriceAmount    float64 `gorm:"type:numeric(10,2);default:0" json:"price_amount"`
	AccessType     string  `gorm:"size:20;default:'Lifetime'" json:"access_type"`
	HasCertificate bool    `gorm:"default:false" json:"has_certificate"`

	Thumbnail  *string `gorm:"size:255" json:"thumbnail"`
	CoverImage *string `gorm:"size:255" json:"cover_image"`

	Status      string `gorm:"size:20;not null;default:'Draft'" json:"status"`
	Visibility  string `gorm:"size:20;default:'Public'" json:"visibility"`
	IsFeatured  bool   `gorm:"default:false" json:"is_featured"`
	MaxStudents *int   `json:"max_students"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CourseSection struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseID uuid.UUID `gorm:"not null;index" json:"course_id"`
	Title    string    `gorm:"size:255;not null" json:"title"`
	Order    int       `gorm:"column:position;not null;default:0" json:"order"`

	// Remote storage folder for this section, set after best-effort provisioning.
	StoragePath *string `gorm:"size:255" json:"storage_path"`

	Lessons []CourseLesson `gorm:"foreignkey:SectionID" json:"lessons"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CourseLesson struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SectionID uuid.UUID `gorm:"not null;index" json:"section_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Type      string    `gorm:"size:20;default:'Video'" json:"type"`
	Order     int       `gorm:"column:position;not null;default:0" json:"order"`

	Duration      int     `gorm:"default:0" json:"duration"`
	IsPreviewFree bool    `gorm:"default:false" json:"is_preview_free"`
	VideoURL      *string `gorm:"size:255" json:"video_url"`

	// Placeholder path where the lesson video should reside.
	StoragePath *string `gorm:"size:255" json:"storage_path"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
