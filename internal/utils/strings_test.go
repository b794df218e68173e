package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"user.name@example.co.id",
		"user+tag@example.com",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@.com",
		".user@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "jo******@example.com", MaskEmail("johndoe1@example.com"))
	assert.Equal(t, "ab@example.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}
