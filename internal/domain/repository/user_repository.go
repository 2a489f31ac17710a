package repository

import (
	"context"
	"errors"

	"boxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when an email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrUserHasShipments is returned when deleting a user who still sends shipments.
var ErrUserHasShipments = errors.New("user is the sender of existing shipments")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user and their devices. Returns ErrUserNotFound when absent
	// and ErrUserHasShipments while shipments still reference the user.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountActive counts active accounts.
	CountActive(ctx context.Context) (int64, error)
}
