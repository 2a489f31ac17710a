package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in. Customers send shipments; administrators run the service.
type User struct {
	ID            uuid.UUID  `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"` // Stored lowercased; unique.
	PasswordHash  string     `json:"-"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	ContactNumber string     `json:"contact_number,omitempty"`
	CountryID     *uuid.UUID `json:"country_id,omitempty"`
	Role          Role       `json:"role"`
	IsActive      bool       `json:"is_active"`
	EmailVerified bool       `json:"email_verified"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Actor returns the identity this user acts as.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
