package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCompleted = "Completed"
	BookingCancelled = "Cancelled"
)

type MentorshipBooking struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID `gorm:"not null;index" json:"user_id"`
	MentorID     uuid.UUID `gorm:"not null;index" json:"mentor_id"`
	MentorshipID uuid.UUID `gorm:"not null;index" json:"mentorship_id"`

	SlotDate time.Time `gorm:"type:date;not null" json:"slot_date"`
	SlotTime string    `gorm:"size:5;not null" json:"slot_time"`

	Status string `gorm:"size:20;not null;default:'Pending'" json:"status"`

	TransactionID *uuid.UUID `gorm:"unique" json:"transaction_id"`

	MeetingLink *string `gorm:"size:255" json:"meeting_link"`
	UserNotes   *string `gorm:"type:text" json:"user_notes"`
	MentorNotes *string `gorm:"type:text" json:"mentor_notes"`

	User        User        `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Mentor      Mentor      `gorm:"foreignkey:MentorID" json:"mentor,omitempty"`
	Mentorship  Mentorship  `gorm:"foreignkey:MentorshipID" json:"mentorship,omitempty"`
	Transaction Transaction `gorm:"foreignkey:TransactionID" json:"transaction,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
