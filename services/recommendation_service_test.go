package services

import (
	"testing"

	"github.com/careerbridge/backend/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMatchVisibility(t *testing.T) {
	t.Run("jobs require approval", func(t *testing.T) {
		assert.True(t, MatchableJob(models.Job{Status: models.StatusApproved}))
		assert.False(t, MatchableJob(models.Job{Status: models.StatusPending}))
		assert.False(t, MatchableJob(models.Job{Status: models.StatusRejected}))
	})

	t.Run("internships require approval", func(t *testing.T) {
		assert.True(t, MatchableInternship(models.Internship{Status: models.StatusApproved}))
		assert.False(t, MatchableInternship(models.Internship{Status: models.StatusPending}))
		assert.False(t, MatchableInternship(models.Internship{Status: models.StatusRejected}))
	})

	t.Run("courses require publication", func(t *testing.T) {
		assert.True(t, MatchableCourse(models.Course{Status: models.CoursePublished}))
		assert.False(t, MatchableCourse(models.Course{Status: models.CourseDraft}))
		assert.False(t, MatchableCourse(models.Course{Status: models.CourseArchived}))
	})

	t.Run("paused mentors are hidden", func(t *testing.T) {
		assert.True(t, MatchableMentor(models.Mentor{IsPaused: false}))
		assert.False(t, MatchableMentor(models.Mentor{IsPaused: true}))
	})
}

func TestMentorMatchTags(t *testing.T) {
	mentor := models.Mentor{
		ExpertiseTags: pq.StringArray{"Go", "Postgres"},
		SubSkills:     pq.StringArray{"SQL"},
	}
	assert.Equal(t, []string{"Go", "Postgres", "SQL"}, MentorMatchTags(mentor))

	assert.Empty(t, MentorMatchTags(models.Mentor{}))
}
