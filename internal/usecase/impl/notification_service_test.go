package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"boxtrack/internal/domain/entity"
	"boxtrack/internal/domain/service"
	mockRepo "boxtrack/internal/mocks/repository"
	mockService "boxtrack/internal/mocks/service"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	notificationSvc  *mockService.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockService.NewMockNotificationService(t)

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		DeviceRepo:       deviceRepo,
		NotificationSvc:  notificationSvc,
		Logger:           slog.New(slog.DiscardHandler),
	})

	return notificationServiceFixtures{
		service:          svc,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		notificationSvc:  notificationSvc,
	}
}

func statusChangedEvent(senderID uuid.UUID) *service.ShipmentEvent {
	return &service.ShipmentEvent{
		EventID:        uuid.New().String(),
		Type:           service.EventShipmentStatusChanged,
		ShipmentID:     uuid.New().String(),
		TrackingNumber: "BOX-LX2K9A-7QF3ZD",
		SenderID:       senderID.String(),
		Status:         entity.StatusInTransit.String(),
		PreviousStatus: entity.StatusReceived.String(),
		Location:       "Rotterdam Hub",
		OccurredAt:     time.Now(),
	}
}

func TestNotificationService_HandleShipmentEvent_Success(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()
	senderID := uuid.New()
	event := statusChangedEvent(senderID)
	eventID := uuid.MustParse(event.EventID)

	good := &entity.UserDevice{ID: uuid.New(), UserID: senderID, FCMToken: "good-token", IsActive: true}
	stale := &entity.UserDevice{ID: uuid.New(), UserID: senderID, FCMToken: "stale-token", IsActive: true}

	f.notificationRepo.EXPECT().CountByEvent(ctx, eventID).Return(0, nil)
	f.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, senderID).Return([]*entity.UserDevice{good, stale}, nil)
	f.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"good-token", "stale-token"}, mock.MatchedBy(func(message service.PushMessage) bool {
			return message.Title == "Shipment update" &&
				message.Body == "Shipment BOX-LX2K9A-7QF3ZD is now In Transit at Rotterdam Hub" &&
				message.Data["tracking_number"] == "BOX-LX2K9A-7QF3ZD"
		})).
		Return(&service.PushResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"stale-token"}}, nil)
	f.notificationRepo.EXPECT().
		BatchCreateNotificationLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
			if len(logs) != 2 {
				return false
			}
			byDevice := map[uuid.UUID]*entity.NotificationLog{logs[0].DeviceID: logs[0], logs[1].DeviceID: logs[1]}

			return byDevice[good.ID].Status == entity.NotificationStatusSent &&
				byDevice[stale.ID].Status == entity.NotificationStatusFailed &&
				logs[0].EventID == eventID
		})).
		Return(nil)
	f.deviceRepo.EXPECT().DeactivateDevice(ctx, stale.ID).Return(nil)

	err := f.service.HandleShipmentEvent(ctx, event)
	require.NoError(t, err)
}

func TestNotificationService_HandleShipmentEvent_AlreadyDelivered(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()
	event := statusChangedEvent(uuid.New())

	f.notificationRepo.EXPECT().CountByEvent(ctx, uuid.MustParse(event.EventID)).Return(3, nil)

	require.NoError(t, f.service.HandleShipmentEvent(ctx, event))
}

func TestNotificationService_HandleShipmentEvent_NoDevices(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()
	senderID := uuid.New()
	event := statusChangedEvent(senderID)

	f.notificationRepo.EXPECT().CountByEvent(ctx, mock.Anything).Return(0, nil)
	f.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, senderID).Return(nil, nil)

	require.NoError(t, f.service.HandleShipmentEvent(ctx, event))
}

func TestNotificationService_HandleShipmentEvent_DeletedIsIgnored(t *testing.T) {
	f := createTestNotificationService(t)
	event := statusChangedEvent(uuid.New())
	event.Type = service.EventShipmentDeleted

	require.NoError(t, f.service.HandleShipmentEvent(context.Background(), event))
}

func TestNotificationService_HandleShipmentEvent_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed event id is permanent", func(t *testing.T) {
		f := createTestNotificationService(t)
		event := statusChangedEvent(uuid.New())
		event.EventID = "not-a-uuid"

		err := f.service.HandleShipmentEvent(ctx, event)
		require.Error(t, err)
		assert.False(t, usecase.IsRetryable(err))
	})

	t.Run("device lookup failure is retryable", func(t *testing.T) {
		f := createTestNotificationService(t)
		senderID := uuid.New()
		event := statusChangedEvent(senderID)

		f.notificationRepo.EXPECT().CountByEvent(ctx, mock.Anything).Return(0, nil)
		f.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, senderID).Return(nil, errors.New("connection reset"))

		err := f.service.HandleShipmentEvent(ctx, event)
		require.Error(t, err)
		assert.True(t, usecase.IsRetryable(err))
	})

	t.Run("all batches failing is retryable", func(t *testing.T) {
		f := createTestNotificationService(t)
		senderID := uuid.New()
		event := statusChangedEvent(senderID)

		f.notificationRepo.EXPECT().CountByEvent(ctx, mock.Anything).Return(0, nil)
		f.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, senderID).
			Return([]*entity.UserDevice{{ID: uuid.New(), UserID: senderID, FCMToken: "t"}}, nil)
		f.notificationSvc.EXPECT().SendBatchNotification(ctx, []string{"t"}, mock.Anything).
			Return(nil, errors.New("fcm unavailable"))

		err := f.service.HandleShipmentEvent(ctx, event)
		require.Error(t, err)
		assert.True(t, usecase.IsRetryable(err))
	})
}

func TestNotificationContent(t *testing.T) {
	created := &service.ShipmentEvent{Type: service.EventShipmentCreated, TrackingNumber: "BOX-1-A"}
	message, ok := notificationContent(created)
	assert.True(t, ok)
	assert.Equal(t, "Shipment created", message.Title)
	assert.Contains(t, message.Body, "BOX-1-A")
	assert.Equal(t, "BOX-1-A", message.Data["tracking_number"])

	overdue := &service.ShipmentEvent{Type: service.EventShipmentOverdue, TrackingNumber: "BOX-1-A"}
	message, ok = notificationContent(overdue)
	assert.True(t, ok)
	assert.Equal(t, "Shipment delayed", message.Title)

	_, ok = notificationContent(&service.ShipmentEvent{Type: "shipment.unknown"})
	assert.False(t, ok)
}
