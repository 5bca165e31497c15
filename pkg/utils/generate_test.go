package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingReference(t *testing.T) {
	pattern := regexp.MustCompile(`^VH[0-9A-Z]+$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := GenerateBookingReference()
		assert.Regexp(t, pattern, ref)
		// "VH" + base36 millisecond timestamp + 5 random characters
		assert.GreaterOrEqual(t, len(ref), 15)
		seen[ref] = true
	}

	// the random suffix makes collisions within one run vanishingly rare
	assert.Greater(t, len(seen), 95)
}
