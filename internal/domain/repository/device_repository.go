package repository

import (
	"context"

	"boxtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDeviceNotFound is returned when no device matches the lookup.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when the user already registered this device ID.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository stores the push targets of shipment senders.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.UserDevice) error
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesByUser includes deactivated devices.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveDevicesByUser returns the devices shipment notifications go to.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken replaces the token of a device and reactivates it.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateDevice stops pushes to a device without removing it. The push
	// worker calls it for tokens FCM reports as unregistered.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error

	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
