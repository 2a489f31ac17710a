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

const dateLayout = "2006-01-02"

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, login and the caller's profile.
type AuthHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for creating a customer account
type RegisterRequest struct {
	FirstName     string `json:"first_name" validate:"required,min=2,max=50"`
	LastName      string `json:"last_name" validate:"omitempty,min=2,max=50"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	DateOfBirth   string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	ContactNumber string `json:"contact_number" validate:"omitempty,min=10"`
	CountryID     string `json:"country_id" validate:"omitempty,uuid"`
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token to rotate
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenResponse is returned by login and refresh
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
	User         *entity.User `json:"user"`
}

// Register creates a REGISTERED_USER account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := &usecase.RegisterUserInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Password:      req.Password,
		ContactNumber: req.ContactNumber,
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

	out, err := h.userUC.RegisterUser(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out.User)
}

// Login exchanges credentials for an access and refresh token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(out))
}

// Refresh rotates both tokens from a valid refresh token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.userUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(out))
}

// Profile returns the authenticated user.
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func newTokenResponse(out *usecase.LoginOutput) *TokenResponse {
	return &TokenResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(out.ExpiresIn / time.Second),
		User:         out.User,
	}
}
