// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "boxtrack/internal/delivery/context"
	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/domain/policy"
	"boxtrack/internal/domain/repository"
	"boxtrack/internal/domain/service"
	"boxtrack/internal/errors"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	now          func() time.Time
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a REGISTERED_USER account.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	user, err := srv.createUser(ctx, newUserFields{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         email,
		Password:      input.Password,
		DateOfBirth:   input.DateOfBirth,
		ContactNumber: input.ContactNumber,
		CountryID:     input.CountryID,
		Role:          entity.RoleRegisteredUser,
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login for unknown email", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	now := srv.now()
	user.LastLoginAt = &now
	user.UpdatedAt = now
	if err := srv.userRepo.Update(ctx, user); err != nil {
		// Login still succeeds; the timestamp is informational.
		srv.log(ctx).Warn("Failed to record last login", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	return srv.issueTokens(user)
}

// RefreshToken exchanges a valid refresh token for a new pair. Roles are
// re-read from storage so a demoted or disabled account loses access.
func (srv *userService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to load user for refresh")
	}
	if !user.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	return srv.issueTokens(user)
}

func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile changes the caller's own details. Role, activation and password are not editable here.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load user")
		}

		if err := applyProfile(user, input); err != nil {
			return err
		}

		if input.Email != nil {
			owner, err := userRepo.FindByEmail(ctx, user.Email)
			switch {
			case err == nil && owner.ID != user.ID:
				return domainerrors.ErrUserAlreadyExists
			case err != nil && !errors.Is(err, repository.ErrUserNotFound):
				return errors.Wrap(err, "failed to check existing email")
			}
		}

		if input.CountryID != nil {
			if _, err := findCountry(ctx, repoFactory.CountryRepo(), *input.CountryID); err != nil {
				if errors.Is(err, domainerrors.ErrCountryNotFound) {
					return domainerrors.ErrInvalidReference.WithDetails("country does not exist")
				}

				return err
			}
		}

		user.UpdatedAt = srv.now()
		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Profile updated", slog.Any("userID", userID))

	return updated, nil
}

func applyProfile(user *entity.User, input *usecase.UpdateProfileInput) error {
	if input.FirstName != nil {
		firstName := strings.TrimSpace(*input.FirstName)
		if firstName == "" {
			return domainerrors.ErrValidationFailed.WithDetails("first name must not be empty")
		}
		user.FirstName = firstName
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Email != nil {
		email := entity.NormalizeEmail(*input.Email)
		if email == "" {
			return domainerrors.ErrValidationFailed.WithDetails("email must not be empty")
		}
		user.Email = email
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = input.DateOfBirth
	}
	if input.ContactNumber != nil {
		user.ContactNumber = strings.TrimSpace(*input.ContactNumber)
	}
	if input.CountryID != nil {
		user.CountryID = input.CountryID
	}

	return nil
}

// ChangePassword requires the current password and applies the strength policy to the new one.
func (srv *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Current password mismatch", slog.Any("userID", userID))

		return domainerrors.ErrInvalidCredentials.WithDetails("current password is incorrect")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return domainerrors.ErrPasswordStrength.WithDetails(err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = srv.now()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}

// CreateAccount opens a pre-verified account on behalf of a customer or another administrator.
func (srv *userService) CreateAccount(ctx context.Context, actor entity.Actor, input *usecase.CreateAccountInput) (*entity.User, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = entity.RoleRegisteredUser
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
	}

	user, err := srv.createUser(ctx, newUserFields{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         entity.NormalizeEmail(input.Email),
		Password:      input.Password,
		DateOfBirth:   input.DateOfBirth,
		ContactNumber: input.ContactNumber,
		CountryID:     input.CountryID,
		Role:          role,
		EmailVerified: true,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account created by administrator",
		slog.Any("userID", user.ID),
		slog.Any("adminID", actor.ID),
		slog.String("role", role.String()))

	return user, nil
}

// DeleteAccount removes another user's account. Senders of existing shipments cannot be removed.
func (srv *userService) DeleteAccount(ctx context.Context, actor entity.Actor, userID uuid.UUID) error {
	if err := policy.RequireAdmin(actor); err != nil {
		return err
	}
	if actor.ID == userID {
		return domainerrors.ErrCannotDeleteSelf
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.UserRepo().Delete(ctx, userID)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, repository.ErrUserNotFound):
			return domainerrors.ErrUserNotFound
		case errors.Is(err, repository.ErrUserHasShipments):
			return domainerrors.ErrReferenceInUse.WithDetails("user is the sender of existing shipments")
		default:
			return errors.Wrap(err, "failed to delete user")
		}
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID), slog.Any("adminID", actor.ID))

	return nil
}

// EnsureAdministrator is idempotent: an existing account with the email is returned untouched.
func (srv *userService) EnsureAdministrator(ctx context.Context, input *usecase.AdministratorInput) (*entity.User, error) {
	email := entity.NormalizeEmail(input.Email)

	existing, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		if existing.Role != entity.RoleAdministrator {
			srv.log(ctx).Warn("Bootstrap email belongs to a non-administrator", slog.Any("userID", existing.ID))
		}

		return existing, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up administrator")
	}

	admin, err := srv.createUser(ctx, newUserFields{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         email,
		Password:      input.Password,
		Role:          entity.RoleAdministrator,
		EmailVerified: true,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Administrator account created", slog.Any("userID", admin.ID), slog.String("email", email))

	return admin, nil
}

type newUserFields struct {
	FirstName     string
	LastName      string
	Email         string
	Password      string
	DateOfBirth   *time.Time
	ContactNumber string
	CountryID     *uuid.UUID
	Role          entity.Role
	EmailVerified bool
}

func (srv *userService) createUser(ctx context.Context, fields newUserFields) (*entity.User, error) {
	if err := srv.hasher.ValidatePasswordStrength(fields.Password); err != nil {
		return nil, domainerrors.ErrPasswordStrength.WithDetails(err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(fields.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	var created *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByEmail(ctx, fields.Email); err == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		if fields.CountryID != nil {
			if _, err := findCountry(ctx, repoFactory.CountryRepo(), *fields.CountryID); err != nil {
				if errors.Is(err, domainerrors.ErrCountryNotFound) {
					return domainerrors.ErrInvalidReference.WithDetails("country does not exist")
				}

				return err
			}
		}

		now := srv.now()
		user := &entity.User{
			ID:            uuid.New(),
			FirstName:     strings.TrimSpace(fields.FirstName),
			LastName:      strings.TrimSpace(fields.LastName),
			Email:         fields.Email,
			PasswordHash:  hashedPassword,
			DateOfBirth:   fields.DateOfBirth,
			ContactNumber: strings.TrimSpace(fields.ContactNumber),
			CountryID:     fields.CountryID,
			Role:          fields.Role,
			IsActive:      true,
			EmailVerified: fields.EmailVerified,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}
		created = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (srv *userService) issueTokens(user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    srv.tokenService.GetAccessTokenDuration(),
		User:         user,
	}, nil
}
