// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents a user's device registered for shipment push notifications.
type UserDevice struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	FCMToken   string    `json:"fcm_token"`
	DeviceID   string    `json:"device_id"` // Client-side identifier, unique per user.
	Platform   string    `json:"platform"`  // ios, android or web.
	IsActive   bool      `json:"is_active"`
	LastSeenAt time.Time `json:"last_seen_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
