package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrackingEvent is one append-only ledger row recording a status a shipment entered.
type TrackingEvent struct {
	ID          uuid.UUID      `json:"id"`
	ShipmentID  uuid.UUID      `json:"shipment_id"`
	Status      ShipmentStatus `json:"status"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp"`
}
