package impl

import (
	"context"
	"log/slog"
	"testing"

	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/domain/repository"
	mockRepo "boxtrack/internal/mocks/repository"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo, slog.New(slog.DiscardHandler))

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "iOS",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, "ios", device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UnknownPlatform(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		FCMToken: "token",
		DeviceID: "device-1",
		Platform: "blackberry",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existingDevice := &entity.UserDevice{
		ID:       deviceID,
		UserID:   userID,
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: "ios",
		IsActive: true,
	}
	updatedDevice := *existingDevice
	updatedDevice.FCMToken = "new-fcm-token"

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existingDevice}, nil)
	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-fcm-token").
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_Errors(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.DeviceInfo{FCMToken: "token", DeviceID: "device-1", Platform: "android"}

	t.Run("find fails", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, errors.New("db down"))

		_, err := fx.service.RegisterDevice(ctx, userID, info)
		assert.ErrorContains(t, err, "failed to find devices by user")
	})

	t.Run("duplicate device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)
		fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

		_, err := fx.service.RegisterDevice(ctx, userID, info)
		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "fresh").Return(nil)

		assert.NoError(t, fx.service.UpdateFCMToken(ctx, userID, deviceID, "fresh"))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "fresh")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("other user's device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "fresh")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{{ID: uuid.New(), UserID: userID}, {ID: uuid.New(), UserID: userID}}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devices, nil)

	got, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeviceService_DeactivateAndDelete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	owned := &entity.UserDevice{ID: deviceID, UserID: userID}

	t.Run("deactivate", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(owned, nil)
		fx.deviceRepo.EXPECT().DeactivateDevice(ctx, deviceID).Return(nil)

		assert.NoError(t, fx.service.DeactivateDevice(ctx, userID, deviceID))
	})

	t.Run("delete", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(owned, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

		assert.NoError(t, fx.service.DeleteDevice(ctx, userID, deviceID))
	})

	t.Run("delete other user's device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(owned, nil)

		err := fx.service.DeleteDevice(ctx, uuid.New(), deviceID)
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})
}
