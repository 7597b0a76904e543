package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationTimelineEntry is one row of an application's append-only audit
// log. Entries are written only by the apply, status-update and certificate
// flows; nothing updates or deletes them.
type ApplicationTimelineEntry struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ApplicationID uuid.UUID  `gorm:"not null;index" json:"application_id"`
	Status        string     `gorm:"size:20;not null" json:"status"`
	Note          *string    `gorm:"type:text" json:"note"`
	UpdatedBy     *uuid.UUID `json:"updated_by"`
	Timestamp     time.Time  `gorm:"not null" json:"timestamp"`
}

// AppendTimeline records a status event on the application's log and returns
// the new entry for persistence. Entries are only ever appended, stamped at
// append time, so chronological order follows append order.
func (a *Application) AppendTimeline(status string, note *string, updatedBy *uuid.UUID) ApplicationTimelineEntry {
	entry := ApplicationTimelineEntry{
		ApplicationID: a.ID,
		Status:        status,
		Note:          note,
		UpdatedBy:     updatedBy,
		Timestamp:     time.Now(),
	}
	a.Timeline = append(a.Timeline, entry)
	return entry
}
