package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(1, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(0, 10))
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 10, CalculateOffset(2, 10))
	assert.Equal(t, 45, CalculateOffset(10, 5))
}
