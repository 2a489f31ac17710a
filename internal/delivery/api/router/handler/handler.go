// Package handler adapts HTTP requests to the use cases.
package handler

import (
	"net/http"

	"boxtrack/internal/delivery/api/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into req and runs its validate tags.
// On failure the error response has already been written and ok is false.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Request body could not be parsed")
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err)
	}

	return true, nil
}

// parseIDParam reads a UUID path parameter.
func parseIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func invalidID(c echo.Context, what string) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid "+what+" ID")
}
