package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateMeetingLink(t *testing.T) {
	pattern := regexp.MustCompile(`^https://meet\.careerbridge\.io/[a-z0-9]{3}-[a-z0-9]{3}-[a-z0-9]{4}$`)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		link := GenerateMeetingLink()
		assert.True(t, pattern.MatchString(link), "unexpected link format: %s", link)
		seen[link] = true
	}

	// Collisions over 20 draws would point at a broken source.
	assert.Greater(t, len(seen), 1)

	link := GenerateMeetingLink()
	assert.True(t, strings.HasPrefix(link, "https://meet.careerbridge.io/"))
}
