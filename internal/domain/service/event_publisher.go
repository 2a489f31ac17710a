package service

import (
	"context"
	"time"
)

// Shipment event types.
const (
	EventShipmentCreated       = "shipment.created"
	EventShipmentStatusChanged = "shipment.status_changed"
	EventShipmentDeleted       = "shipment.deleted"
	EventShipmentOverdue       = "shipment.overdue"
)

// ShipmentEvent is published after a shipment change commits and consumed by the notifier worker.
type ShipmentEvent struct {
	EventID        string    `json:"event_id"`
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	Type           string    `json:"type"`
	ShipmentID     string    `json:"shipment_id"`
	TrackingNumber string    `json:"tracking_number"`
	SenderID       string    `json:"sender_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Location       string    `json:"location,omitempty"`
	Description    string    `json:"description,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Attributes returns the message attributes used for filtering and tracing.
func (e *ShipmentEvent) Attributes() map[string]string {
	attributes := map[string]string{
		"event_id":    e.EventID,
		"event_type":  e.Type,
		"shipment_id": e.ShipmentID,
	}
	if e.RequestID != "" {
		attributes["request_id"] = e.RequestID
	}

	return attributes
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishShipmentEvent publishes a shipment event for async processing
	PublishShipmentEvent(ctx context.Context, event *ShipmentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
