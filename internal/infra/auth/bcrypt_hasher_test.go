package auth

import (
	"testing"

	"boxtrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strictConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        64,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(strictConfig())

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("WrongPass123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("StrongPass123!", "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(strictConfig())

	for _, password := range []string{"StrongPass123!", "MySecure@Pass1", "Valid$Phrase2026"} {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"Sh0rt!", "at least 8 characters"},
		{"PASSWORD123!", "lowercase letter"},
		{"strong123!", "uppercase letter"},
		{"StrongPass!", "number"},
		{"StrongPass123", "special character"},
		{"MyPassword123!", "forbidden words"},
		{"Admin-Strong123", "forbidden words"},
	}
	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		if assert.Error(t, err, tc.password) {
			assert.Contains(t, err.Error(), tc.expectedErr)
		}
	}
}

func TestBcryptHasher_DefaultsWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	assert.NoError(t, hasher.ValidatePasswordStrength("longenough"))
	assert.Error(t, hasher.ValidatePasswordStrength("short"))
}
