package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "boxtrack/internal/delivery/context"
	"boxtrack/internal/domain/entity"
	"boxtrack/internal/domain/service"

	"github.com/google/uuid"
)

// eventEmitter publishes shipment events after commit. A failed publish is
// logged and counted; it never fails the operation that caused it.
type eventEmitter struct {
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
}

func newEventEmitter(publisher service.EventPublisher, metrics service.MetricsRecorder) eventEmitter {
	if metrics == nil {
		metrics = service.NopMetricsRecorder{}
	}

	return eventEmitter{publisher: publisher, metrics: metrics}
}

func (e eventEmitter) emit(ctx context.Context, logger *slog.Logger, event *service.ShipmentEvent) {
	if e.publisher == nil {
		return
	}

	err := e.publisher.PublishShipmentEvent(ctx, event)
	e.metrics.EventPublished(event.Type, err)
	if err != nil {
		logger.Warn("Failed to publish shipment event",
			slog.String("eventType", event.Type),
			slog.String("shipmentID", event.ShipmentID),
			slog.Any("error", err),
		)
	}
}

func newShipmentEvent(ctx context.Context, eventType string, shipment *entity.Shipment, at time.Time) *service.ShipmentEvent {
	return &service.ShipmentEvent{
		EventID:        uuid.New().String(),
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		Type:           eventType,
		ShipmentID:     shipment.ID.String(),
		TrackingNumber: shipment.TrackingNumber,
		SenderID:       shipment.SenderID.String(),
		Status:         shipment.Status.String(),
		OccurredAt:     at,
	}
}
