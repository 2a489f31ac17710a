package repository

import (
	"context"

	"boxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackingEventRepository defines persistence for the append-only shipment ledger.
// There is no update operation.
type TrackingEventRepository interface {
	// Append inserts one ledger row.
	Append(ctx context.Context, event *entity.TrackingEvent) error

	// ListByShipment returns the ledger oldest first.
	ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]*entity.TrackingEvent, error)

	// Latest returns the newest ledger row, or ErrShipmentNotFound when the ledger is empty.
	Latest(ctx context.Context, shipmentID uuid.UUID) (*entity.TrackingEvent, error)

	// DeleteByShipment removes the whole ledger of a shipment being deleted.
	DeleteByShipment(ctx context.Context, shipmentID uuid.UUID) (int64, error)
}
