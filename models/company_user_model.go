package models

import (
	"time"

	"github.com/google/uuid"
)

// Membership roles a user can hold on a company.
const (
	CompanyRoleAdmin     = "admin"
	CompanyRoleRecruiter = "recruiter"
)

func ValidCompanyRole(role string) bool {
	return role == CompanyRoleAdmin || role == CompanyRoleRecruiter
}

// CompanyUser links a user to a company with a single role. One membership
// per (user, company) pair.
type CompanyUser struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"not null;uniqueIndex:idx_company_users_user_company" json:"user_id"`
	CompanyID uuid.UUID `gorm:"not null;uniqueIndex:idx_company_users_user_company" json:"company_id"`
	Role      string    `gorm:"size:20;not null" json:"role"`

	User    User    `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Company Company `gorm:"foreignkey:CompanyID" json:"company,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
