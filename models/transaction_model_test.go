package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEntityRefValidate(t *testing.T) {
	t.Run("course ref", func(t *testing.T) {
		ref := CourseRef(uuid.New())
		assert.Equal(t, RelatedCourse, ref.Kind)
		assert.NoError(t, ref.Validate())
	})

	t.Run("mentorship ref", func(t *testing.T) {
		ref := MentorshipRef(uuid.New())
		assert.Equal(t, RelatedMentorship, ref.Kind)
		assert.NoError(t, ref.Validate())
	})

	t.Run("unknown kind", func(t *testing.T) {
		ref := EntityRef{Kind: "Job", ID: uuid.New()}
		assert.Error(t, ref.Validate())
	})

	t.Run("missing id", func(t *testing.T) {
		ref := EntityRef{Kind: RelatedCourse}
		assert.Error(t, ref.Validate())
	})
}
