package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoragePaths(t *testing.T) {
	assert.Equal(t, "courses/c1/s1", SectionStoragePath("c1", "s1"))
	assert.Equal(t, "courses/c1/s1/l1.mp4", LessonStoragePath("c1", "s1", "l1"))
}

func TestProvisionFolderNeverBlocks(t *testing.T) {
	// Worker is not running; fill well past the queue capacity.
	for i := 0; i < 300; i++ {
		ProvisionFolder(SectionStoragePath("course", "section"))
	}
}
