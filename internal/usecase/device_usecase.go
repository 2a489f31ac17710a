package usecase

import (
	"context"

	"boxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is what the app sends when it signs up for shipment pushes.
type DeviceInfo struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase manages the devices a sender receives shipment updates on.
// Every operation is scoped to userID; foreign devices read as not found.
type DeviceUsecase interface {
	// RegisterDevice upserts by (userID, DeviceID), so reinstalling the app refreshes the token.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
	DeleteDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
