package usecase

import (
	"context"

	"boxtrack/internal/domain/service"

	"github.com/pkg/errors"
)

// NotificationUsecase turns shipment events into device notifications.
type NotificationUsecase interface {
	// HandleShipmentEvent notifies the sender's devices. Errors wrapped with
	// Retryable ask the caller to redeliver the event.
	HandleShipmentEvent(ctx context.Context, event *service.ShipmentEvent) error
}

type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// Retryable marks err as transient.
func Retryable(err error) error {
	if err == nil {
		return nil
	}

	return &retryableError{err: err}
}

// IsRetryable reports whether err, or anything it wraps, is transient.
func IsRetryable(err error) bool {
	var target *retryableError

	return errors.As(err, &target)
}
