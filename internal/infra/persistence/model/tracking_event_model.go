package model

import (
	"time"

	"github.com/google/uuid"
)

// TrackingEventModel is the GORM-specific struct for the 'tracking_events' ledger.
type TrackingEventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;not null;index:idx_tracking_events_shipment_time,priority:1"`
	Status      string    `gorm:"type:varchar(20);not null"`
	Location    string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	RecordedAt  time.Time `gorm:"not null;index:idx_tracking_events_shipment_time,priority:2"`

	Shipment *ShipmentModel `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TrackingEventModel) TableName() string {
	return "tracking_events"
}
