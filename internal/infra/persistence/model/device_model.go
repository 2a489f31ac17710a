package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// It represents a user's device registered for push notifications.
type UserDeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_devices_user_device,where:deleted_at IS NULL"`
	FCMToken   string    `gorm:"type:varchar(255);not null"`
	DeviceID   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_user_device,where:deleted_at IS NULL"`
	Platform   string    `gorm:"type:varchar(20);not null"`
	IsActive   bool      `gorm:"not null"`
	LastSeenAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
