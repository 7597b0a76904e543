package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	TxnPending = "Pending"
	TxnSuccess = "Success"
	TxnFailed  = "Failed"
)

// RelatedKind tags which catalog entity a transaction paid for.
type RelatedKind string

const (
	RelatedCourse     RelatedKind = "Course"
	RelatedMentorship RelatedKind = "Mentorship"
)

// EntityRef is a typed reference to the entity a transaction settles.
type EntityRef struct {
	Kind RelatedKind `gorm:"column:related_entity;size:20;not null" json:"related_entity"`
	ID   uuid.UUID   `gorm:"column:related_id;not null" json:"related_id"`
}

func CourseRef(id uuid.UUID) EntityRef {
	return EntityRef{Kind: RelatedCourse, ID: id}
}

func MentorshipRef(id uuid.UUID) EntityRef {
	return EntityRef{Kind: RelatedMentorship, ID: id}
}

// Validate rejects references to unknown entity kinds so a bad tag never
// reaches the database.
func (r EntityRef) Validate() error {
	switch r.Kind {
	case RelatedCourse, RelatedMentorship:
		if r.ID == uuid.Nil {
			return fmt.Errorf("related_id is required for %s transactions", r.Kind)
		}
		return nil
	default:
		return fmt.Errorf("unknown related entity %q", r.Kind)
	}
}

type Transaction struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"not null;index" json:"user_id"`

	Amount   float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	Currency string  `gorm:"size:3;default:'INR'" json:"currency"`

	Status        string  `gorm:"size:20;not null;default:'Pending'" json:"status"`
	PaymentMethod *string `gorm:"size:50" json:"payment_method"`

	Related EntityRef `gorm:"embedded" json:"related"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
