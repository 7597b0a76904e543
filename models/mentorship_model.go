package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSlotBooked = errors.New("slot is already booked")

type Mentorship struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MentorID uuid.UUID `gorm:"not null;index" json:"mentor_id"`

	Title        string  `gorm:"size:255;not null" json:"title"`
	ProgramImage *string `gorm:"size:255" json:"program_image"`
	Description  *string `gorm:"type:text" json:"description"`

	Price    float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	Currency string  `gorm:"size:3;default:'USD'" json:"currency"`

	// Session length in minutes.
	Duration int `gorm:"not null" json:"duration"`

	AvailableSlots []MentorshipSlot `gorm:"foreignkey:MentorshipID" json:"available_slots"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	Mentor Mentor `gorm:"foreignkey:MentorID" json:"mentor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MentorshipSlot is a bookable time window. Once IsBooked is set the row is
// immutable until an admin resets it; the booking engine claims slots only
// under a row lock.
type MentorshipSlot struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MentorshipID uuid.UUID `gorm:"not null;index" json:"mentorship_id"`

	Date      time.Time `gorm:"type:date;not null" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`

	IsBooked bool       `gorm:"not null;default:false" json:"is_booked"`
	BookedBy *uuid.UUID `json:"booked_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Claim marks the slot as taken by userID. Returns ErrSlotBooked when the
// slot has already been claimed; callers must hold a row lock for the check
// to be authoritative.
func (s *MentorshipSlot) Claim(userID uuid.UUID) error {
	if s.IsBooked {
		return ErrSlotBooked
	}
	s.IsBooked = true
	s.BookedBy = &userID
	return nil
}
