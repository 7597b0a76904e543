package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	AppApplied      = "Applied"
	AppScreening    = "Screening"
	AppShortlisted  = "Shortlisted"
	AppInterviewing = "Interviewing"
	AppOfferSent    = "Offer Sent"
	AppHired        = "Hired"
	AppRejected     = "Rejected"
	AppWithdrawn    = "Withdrawn"
	AppCompleted    = "Completed"
)

var ErrInvalidTarget = errors.New("must specify exactly one of job_id or internship_id")

// ApplicationTarget is the posting a candidacy is made against: a job or an
// internship, never both and never neither.
type ApplicationTarget struct {
	JobID        *uuid.UUID
	InternshipID *uuid.UUID
}

// NewApplicationTarget builds a target from the two optional request fields,
// enforcing the exclusive-or at construction time.
func NewApplicationTarget(jobID, internshipID *uuid.UUID) (ApplicationTarget, error) {
	if (jobID == nil) == (internshipID == nil) {
		return ApplicationTarget{}, ErrInvalidTarget
	}
	return ApplicationTarget{JobID: jobID, InternshipID: internshipID}, nil
}

func (t ApplicationTarget) IsInternship() bool {
	return t.InternshipID != nil
}

// TransitionValidator decides whether an application may move from one status
// to another. The default accepts every transition; the caller's
// authorization layer is trusted to restrict who may move applications.
type TransitionValidator func(from, to string) error

var ValidateTransition TransitionValidator = AllowAllTransitions

func AllowAllTransitions(from, to string) error {
	return nil
}

type Application struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"not null;uniqueIndex:idx_applications_user_job;uniqueIndex:idx_applications_user_internship" json:"user_id"`

	// Exactly one of JobID / InternshipID is set. The NULL half keeps the
	// other unique index from colliding (Postgres treats NULLs as distinct).
	JobID        *uuid.UUID `gorm:"uniqueIndex:idx_applications_user_job" json:"job_id"`
	InternshipID *uuid.UUID `gorm:"uniqueIndex:idx_applications_user_internship" json:"internship_id"`

	// Owning company, derived from the target at creation and never changed.
	CompanyID uuid.UUID `gorm:"not null;index" json:"company_id"`

	ResumeURL    string  `gorm:"size:255;not null" json:"resume_url"`
	CoverLetter  *string `gorm:"type:text" json:"cover_letter"`
	PortfolioURL *string `gorm:"size:255" json:"portfolio_url"`

	Status string `gorm:"size:20;not null;default:'Applied'" json:"status"`

	// Set only when an internship completes.
	CertificateURL *string `gorm:"size:255" json:"certificate_url"`

	InternalNotes *string `gorm:"type:text" json:"-"`

	Timeline []ApplicationTimelineEntry `gorm:"foreignkey:ApplicationID" json:"timeline"`

	User       User       `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Job        Job        `gorm:"foreignkey:JobID" json:"job,omitempty"`
	Internship Internship `gorm:"foreignkey:InternshipID" json:"internship,omitempty"`
	Company    Company    `gorm:"foreignkey:CompanyID" json:"company,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
