package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2"`
	Kind  string `json:"kind" validate:"omitempty,oneof=matinee evening"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(&sampleRequest{Email: "ada@example.com", Name: "Ada"}))

	errs := ValidateStruct(&sampleRequest{Email: "not-an-email", Name: "A", Kind: "midnight"})
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "Minimum is 2", errs["Name"])
	assert.Equal(t, "Must be one of: matinee, evening", errs["Kind"])

	errs = ValidateStruct(&sampleRequest{})
	assert.Equal(t, "This field is required", errs["Email"])
}

func TestFormatValidationErrors(t *testing.T) {
	assert.Equal(t, "Email: Invalid email format",
		FormatValidationErrors(map[string]string{"Email": "Invalid email format"}))
}
