package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestApplyProgress(t *testing.T) {
	t.Run("rejects out of range", func(t *testing.T) {
		e := CourseEnrollment{ID: uuid.New(), CompletionStatus: EnrollmentInProgress}
		assert.ErrorIs(t, e.ApplyProgress(-1), ErrProgressOutOfRange)
		assert.ErrorIs(t, e.ApplyProgress(101), ErrProgressOutOfRange)
		assert.Equal(t, 0, e.ProgressPercent)
	})

	t.Run("stays in progress below 100", func(t *testing.T) {
		e := CourseEnrollment{ID: uuid.New(), CompletionStatus: EnrollmentInProgress}
		assert.NoError(t, e.ApplyProgress(99))
		assert.Equal(t, 99, e.ProgressPercent)
		assert.Equal(t, EnrollmentInProgress, e.CompletionStatus)
		assert.Nil(t, e.CertificateURL)
	})

	t.Run("completes at exactly 100", func(t *testing.T) {
		e := CourseEnrollment{ID: uuid.New(), CompletionStatus: EnrollmentInProgress}
		assert.NoError(t, e.ApplyProgress(100))
		assert.Equal(t, EnrollmentCompleted, e.CompletionStatus)
		assert.NotNil(t, e.CertificateURL)
		assert.Equal(t, CertificateURLFor(e.ID), *e.CertificateURL)
	})

	t.Run("progress is not monotonic but completion sticks", func(t *testing.T) {
		e := CourseEnrollment{ID: uuid.New(), CompletionStatus: EnrollmentInProgress}
		assert.NoError(t, e.ApplyProgress(100))
		assert.NoError(t, e.ApplyProgress(40))
		assert.Equal(t, 40, e.ProgressPercent)
		assert.Equal(t, EnrollmentCompleted, e.CompletionStatus)
	})
}

func TestCertificateURLFor(t *testing.T) {
	id := uuid.MustParse("7f9c24e5-0a6b-4d3c-9f21-8a5b6c7d8e9f")
	url := CertificateURLFor(id)
	assert.Equal(t, "https://cdn.careerbridge.io/certificates/enrollments/7f9c24e5-0a6b-4d3c-9f21-8a5b6c7d8e9f.pdf", url)
	// Same id always yields the same reference.
	assert.Equal(t, url, CertificateURLFor(id))
}
