// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"boxtrack/config"
	"boxtrack/internal/domain/service"
	"boxtrack/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

const defaultMinPasswordLength = 8

// forbiddenPasswordWords are rejected anywhere in a password, case-insensitively.
var forbiddenPasswordWords = []string{"password", "admin", "boxtrack", "qwerty", "123456"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// Cost and strength policy come from config; missing sections fall back to bcrypt.DefaultCost
// and an 8 character minimum.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{
		cost:   bcrypt.DefaultCost,
		policy: config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength},
	}
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		hasher.cost = cfg.Auth.BcryptCost
	}
	if cfg.PasswordStrength != nil {
		hasher.policy = *cfg.PasswordStrength
		if hasher.policy.MinLength <= 0 {
			hasher.policy.MinLength = defaultMinPasswordLength
		}
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength checks a password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := len([]rune(password))
	if length < h.policy.MinLength {
		return errors.Errorf("password must be at least %d characters long", h.policy.MinLength)
	}
	if h.policy.MaxLength > 0 && length > h.policy.MaxLength {
		return errors.Errorf("password must be at most %d characters long", h.policy.MaxLength)
	}
	// bcrypt ignores everything past 72 bytes.
	if len(password) > 72 {
		return errors.New("password must be at most 72 bytes long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if h.policy.RequireLowercase && !hasLower {
		return errors.New("password must contain at least one lowercase letter")
	}
	if h.policy.RequireUppercase && !hasUpper {
		return errors.New("password must contain at least one uppercase letter")
	}
	if h.policy.RequireNumbers && !hasNumber {
		return errors.New("password must contain at least one number")
	}
	if h.policy.RequireSpecial && !hasSpecial {
		return errors.New("password must contain at least one special character")
	}

	lowered := strings.ToLower(password)
	for _, word := range forbiddenPasswordWords {
		if strings.Contains(lowered, word) {
			return errors.New("password contains forbidden words")
		}
	}

	return nil
}
