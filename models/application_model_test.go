package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewApplicationTarget(t *testing.T) {
	jobID := uuid.New()
	internshipID := uuid.New()

	t.Run("job only", func(t *testing.T) {
		target, err := NewApplicationTarget(&jobID, nil)
		assert.NoError(t, err)
		assert.Equal(t, &jobID, target.JobID)
		assert.Nil(t, target.InternshipID)
		assert.False(t, target.IsInternship())
	})

	t.Run("internship only", func(t *testing.T) {
		target, err := NewApplicationTarget(nil, &internshipID)
		assert.NoError(t, err)
		assert.Equal(t, &internshipID, target.InternshipID)
		assert.Nil(t, target.JobID)
		assert.True(t, target.IsInternship())
	})

	t.Run("both set", func(t *testing.T) {
		_, err := NewApplicationTarget(&jobID, &internshipID)
		assert.ErrorIs(t, err, ErrInvalidTarget)
	})

	t.Run("neither set", func(t *testing.T) {
		_, err := NewApplicationTarget(nil, nil)
		assert.ErrorIs(t, err, ErrInvalidTarget)
	})
}

func TestAllowAllTransitions(t *testing.T) {
	assert.NoError(t, AllowAllTransitions(AppApplied, AppHired))
	assert.NoError(t, AllowAllTransitions(AppHired, AppApplied))
	assert.NoError(t, AllowAllTransitions(AppRejected, AppCompleted))
}
