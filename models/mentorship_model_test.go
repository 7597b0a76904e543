package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSlotClaim(t *testing.T) {
	userID := uuid.New()

	t.Run("claims an open slot", func(t *testing.T) {
		slot := MentorshipSlot{}
		err := slot.Claim(userID)
		assert.NoError(t, err)
		assert.True(t, slot.IsBooked)
		assert.Equal(t, &userID, slot.BookedBy)
	})

	t.Run("second claim loses", func(t *testing.T) {
		slot := MentorshipSlot{}
		assert.NoError(t, slot.Claim(userID))

		other := uuid.New()
		err := slot.Claim(other)
		assert.ErrorIs(t, err, ErrSlotBooked)
		// The winner keeps the slot.
		assert.Equal(t, &userID, slot.BookedBy)
	})
}
