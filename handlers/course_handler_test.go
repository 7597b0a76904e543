package handlers

import (
	"testing"

	"github.com/careerbridge/backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAssignCurriculumPaths(t *testing.T) {
	course := models.Course{
		ID: uuid.New(),
		Sections: []models.CourseSection{
			{ID: uuid.New(), Lessons: []models.CourseLesson{{ID: uuid.New()}, {ID: uuid.New()}}},
			{ID: uuid.New()},
		},
	}

	folders := assignCurriculumPaths(&course)

	courseID := course.ID.String()
	assert.Equal(t, []string{
		"courses/" + courseID,
		"courses/" + courseID + "/" + course.Sections[0].ID.String(),
		"courses/" + courseID + "/" + course.Sections[1].ID.String(),
	}, folders)

	for _, section := range course.Sections {
		assert.NotNil(t, section.StoragePath)
		assert.Equal(t, "courses/"+courseID+"/"+section.ID.String(), *section.StoragePath)
	}
	lesson := course.Sections[0].Lessons[1]
	assert.NotNil(t, lesson.StoragePath)
	assert.Equal(t, "courses/"+courseID+"/"+course.Sections[0].ID.String()+"/"+lesson.ID.String()+".mp4", *lesson.StoragePath)
}

func TestAssignCurriculumPathsEmptyCourse(t *testing.T) {
	course := models.Course{ID: uuid.New()}
	folders := assignCurriculumPaths(&course)
	assert.Equal(t, []string{"courses/" + course.ID.String()}, folders)
}
