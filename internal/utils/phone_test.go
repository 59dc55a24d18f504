package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"typical US number", "+15551234567", true},
		{"short country number", "+49", false}, // only one digit after the first
		{"two digits", "+12", true},
		{"max length 15 digits", "+123456789012345", true},
		{"16 digits too long", "+1234567890123456", false},
		{"missing plus", "15551234567", false},
		{"leading zero", "+05551234567", false},
		{"letters", "+1555abc4567", false},
		{"spaces", "+1 555 123 4567", false},
		{"empty", "", false},
		{"plus only", "+", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPhoneNumber(tt.phone))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("alice@example.com"))
	assert.True(t, IsValidEmail("bob.smith+tag@mail.example.org"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail(""))
}
