// Package service declares the ports the use cases reach infrastructure through.
package service

// PasswordHasher hashes and verifies account credentials. Shipment
// operations never see a password; only registration, login and the
// account endpoints use it.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool

	// ValidatePasswordStrength rejects passwords that break the configured policy.
	ValidatePasswordStrength(password string) error
}
