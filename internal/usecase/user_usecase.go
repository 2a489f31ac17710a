package usecase

import (
	"context"
	"time"

	"boxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	FirstName     string
	LastName      string
	Email         string
	Password      string
	DateOfBirth   *time.Time
	ContactNumber string
	CountryID     *uuid.UUID
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AdministratorInput seeds an administrator account.
type AdministratorInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UpdateProfileInput holds the editable profile fields. Nil fields keep their stored value.
type UpdateProfileInput struct {
	FirstName     *string
	LastName      *string
	Email         *string
	DateOfBirth   *time.Time
	ContactNumber *string
	CountryID     *uuid.UUID
}

// ChangePasswordInput replaces the password after the current one is confirmed.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// CreateAccountInput is an account opened by an administrator. An empty Role means REGISTERED_USER.
type CreateAccountInput struct {
	RegisterUserInput
	Role entity.Role
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
	User         *entity.User
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
	// CreateAccount and DeleteAccount are administrator operations.
	CreateAccount(ctx context.Context, actor entity.Actor, input *CreateAccountInput) (*entity.User, error)
	DeleteAccount(ctx context.Context, actor entity.Actor, userID uuid.UUID) error
	// EnsureAdministrator creates the administrator account if no user owns the email yet.
	EnsureAdministrator(ctx context.Context, input *AdministratorInput) (*entity.User, error)
}
