package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// It represents one push attempt of a shipment event to one user device. ShipmentID
// carries no foreign key so logs outlive deleted shipments.
type NotificationLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;index"`
	EventType    string    `gorm:"type:varchar(50);not null"`
	ShipmentID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null"`
	Status       string    `gorm:"type:varchar(10);not null;default:'sent'"`
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
