package middleware

import (
	"strings"

	"boxtrack/internal/delivery/api/response"
	"boxtrack/internal/domain/entity"
	"boxtrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyActor  = "actor"
	bearerPrefix     = "Bearer "
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's actor on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		actor := entity.NewActor(claims.UserID, entity.RolesFromStrings(claims.Roles))
		if actor.IsAnonymous() {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token carries no usable identity")
		}

		c.Set(contextKeyUserID, actor.ID)
		c.Set(contextKeyActor, actor)

		return next(c)
	}
}

// RequireAdmin rejects callers that are not administrators. It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !GetActor(c).IsAdmin() {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: administrator role required")
		}

		return next(c)
	}
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetActor returns the authenticated actor, or the anonymous actor.
func GetActor(c echo.Context) entity.Actor {
	if actor, ok := c.Get(contextKeyActor).(entity.Actor); ok {
		return actor
	}

	return entity.AnonymousActor()
}
