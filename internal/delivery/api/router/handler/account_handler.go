package handler

import (
	"log/slog"
	"net/http"
	"time"

	"boxtrack/internal/delivery/api/middleware"
	"boxtrack/internal/delivery/api/response"
	"boxtrack/internal/domain/entity"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AccountHandler serves profile maintenance and administrator account management.
type AccountHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateProfileRequest carries the fields to change; omitted fields stay as they are
type UpdateProfileRequest struct {
	FirstName     *string `json:"first_name" validate:"omitempty,min=2,max=50"`
	LastName      *string `json:"last_name" validate:"omitempty,min=2,max=50"`
	Email         *string `json:"email" validate:"omitempty,email"`
	DateOfBirth   *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,min=10"`
	CountryID     *string `json:"country_id" validate:"omitempty,uuid"`
}

// ChangePasswordRequest represents the request body for a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// CreateAccountRequest represents an administrator opening an account
type CreateAccountRequest struct {
	RegisterRequest
	Role string `json:"role" validate:"omitempty,oneof=REGISTERED_USER ADMINISTRATOR"`
}

// UpdateProfile edits the caller's own details.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateProfileRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := &usecase.UpdateProfileInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Date of birth must be YYYY-MM-DD")
		}
		input.DateOfBirth = &dob
	}
	if req.CountryID != nil {
		countryID := uuid.MustParse(*req.CountryID)
		input.CountryID = &countryID
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// ChangePassword replaces the caller's password.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ChangePasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	err := h.userUC.ChangePassword(c.Request().Context(), userID, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

// CreateAccount opens an account on someone else's behalf.
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req CreateAccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := &usecase.CreateAccountInput{
		RegisterUserInput: usecase.RegisterUserInput{
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.Email,
			Password:      req.Password,
			ContactNumber: req.ContactNumber,
		},
		Role: entity.Role(req.Role),
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, req.DateOfBirth)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Date of birth must be YYYY-MM-DD")
		}
		input.DateOfBirth = &dob
	}
	if req.CountryID != "" {
		countryID := uuid.MustParse(req.CountryID)
		input.CountryID = &countryID
	}

	user, err := h.userUC.CreateAccount(c.Request().Context(), middleware.GetActor(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// DeleteAccount removes an account other than the caller's.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c, "account")
	}

	if err := h.userUC.DeleteAccount(c.Request().Context(), middleware.GetActor(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}
