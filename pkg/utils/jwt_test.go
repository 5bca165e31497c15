package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken("secret", userID, 24)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedID, err := ParseToken("secret", token)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", uuid.New(), 24)
	assert.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("secret", uuid.New(), -1)
	assert.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("secret", "not-a-token")
	assert.Error(t, err)
}
