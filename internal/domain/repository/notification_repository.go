package repository

import (
	"context"

	"boxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository records push attempts made for shipment events.
type NotificationRepository interface {
	// BatchCreateNotificationLogs persists multiple notification log entries in one statement.
	BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error

	// CountByEvent counts logs written for an event, letting redelivered events be skipped.
	CountByEvent(ctx context.Context, eventID uuid.UUID) (int64, error)
}
