package errors

import (
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrIllegalTransition.WithDetails("COMPLETED -> CANCELLED")

	assert.ErrorIs(t, detailed, ErrIllegalTransition)
	assert.NotErrorIs(t, detailed, ErrConflict)
	assert.Equal(t, "COMPLETED -> CANCELLED", detailed.Details())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrShipmentNotFound.WrapMessage("lookup by tracking number")

	var appErr AppError
	assert.True(t, pkgerrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "SHIPMENT_NOT_FOUND", appErr.ErrorCode())
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := pkgerrors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "failed to list shipments")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to list shipments", err.Details())
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}
