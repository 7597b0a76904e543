package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAppendTimeline(t *testing.T) {
	app := Application{ID: uuid.New()}
	actor := uuid.New()

	note := "Application submitted"
	first := app.AppendTimeline(AppApplied, &note, nil)
	second := app.AppendTimeline(AppScreening, nil, &actor)
	third := app.AppendTimeline(AppShortlisted, nil, &actor)

	assert.Len(t, app.Timeline, 3)

	// Append order is chronological order.
	assert.Equal(t, []ApplicationTimelineEntry{first, second, third}, app.Timeline)
	assert.False(t, second.Timestamp.Before(first.Timestamp))
	assert.False(t, third.Timestamp.Before(second.Timestamp))

	// Earlier entries are never rewritten by later appends.
	assert.Equal(t, AppApplied, app.Timeline[0].Status)
	assert.Equal(t, &note, app.Timeline[0].Note)
	assert.Nil(t, app.Timeline[0].UpdatedBy)

	assert.Equal(t, app.ID, second.ApplicationID)
	assert.Equal(t, &actor, second.UpdatedBy)
}
