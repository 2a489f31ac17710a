package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"boxtrack/internal/domain/entity"
	"boxtrack/internal/domain/repository"
	"boxtrack/internal/domain/service"
	"boxtrack/internal/errors"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	notificationSvc  service.NotificationService
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	NotificationSvc  service.NotificationService
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		notificationSvc:  params.NotificationSvc,
		logger:           params.Logger,
	}
}

// HandleShipmentEvent sends the event to every active device of the shipment's sender.
func (s *notificationService) HandleShipmentEvent(ctx context.Context, event *service.ShipmentEvent) error {
	eventID, err := uuid.Parse(event.EventID)
	if err != nil {
		return errors.Wrap(err, "invalid event id")
	}
	senderID, err := uuid.Parse(event.SenderID)
	if err != nil {
		return errors.Wrap(err, "invalid sender id")
	}
	shipmentID, err := uuid.Parse(event.ShipmentID)
	if err != nil {
		return errors.Wrap(err, "invalid shipment id")
	}

	logger := s.logger.With(slog.String("eventID", event.EventID), slog.String("eventType", event.Type))

	message, ok := notificationContent(event)
	if !ok {
		logger.Debug("Event type is not notified")

		return nil
	}

	// Pub/Sub delivers at least once; skip events that already produced logs.
	delivered, err := s.notificationRepo.CountByEvent(ctx, eventID)
	if err != nil {
		return usecase.Retryable(errors.Wrap(err, "failed to check delivered event"))
	}
	if delivered > 0 {
		logger.Info("Event already delivered", slog.Int64("logs", delivered))

		return nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, senderID)
	if err != nil {
		return usecase.Retryable(errors.Wrap(err, "failed to fetch devices"))
	}
	if len(devices) == 0 {
		logger.Debug("Sender has no active devices", slog.Any("senderID", senderID))

		return nil
	}

	tokens := make([]string, 0, len(devices))
	deviceMap := make(map[string]*entity.UserDevice, len(devices)) // token -> device mapping
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceMap[device.FCMToken] = device
	}

	var (
		totalSent        int
		failedBatches    int
		invalidTokens    []string
		notificationLogs []*entity.NotificationLog
	)

	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		result, err := s.notificationSvc.SendBatchNotification(ctx, batch, message)
		if err != nil {
			logger.Warn("Batch notification failed", slog.Int("batchSize", len(batch)), slog.Any("error", err))
			failedBatches++

			continue
		}

		totalSent += result.SuccessCount
		invalidTokens = append(invalidTokens, result.InvalidTokens...)

		invalid := make(map[string]struct{}, len(result.InvalidTokens))
		for _, token := range result.InvalidTokens {
			invalid[token] = struct{}{}
		}

		sentAt := time.Now()
		for _, token := range batch {
			device := deviceMap[token]
			notificationLog := &entity.NotificationLog{
				ID:         uuid.New(),
				EventID:    eventID,
				EventType:  event.Type,
				ShipmentID: shipmentID,
				UserID:     device.UserID,
				DeviceID:   device.ID,
				Status:     entity.NotificationStatusSent,
				SentAt:     sentAt,
			}
			if _, bad := invalid[token]; bad {
				notificationLog.Status = entity.NotificationStatusFailed
				notificationLog.ErrorMessage = "invalid or unregistered token"
			}
			notificationLogs = append(notificationLogs, notificationLog)
		}
	}

	// Nothing reached Firebase; ask for redelivery.
	if failedBatches > 0 && len(notificationLogs) == 0 {
		return usecase.Retryable(errors.Errorf("all %d notification batches failed", failedBatches))
	}

	if len(notificationLogs) > 0 {
		if err := s.notificationRepo.BatchCreateNotificationLogs(ctx, notificationLogs); err != nil {
			logger.Error("Failed to create notification logs", slog.Any("error", err))
		}
	}

	for _, token := range invalidTokens {
		if device, ok := deviceMap[token]; ok {
			if err := s.deviceRepo.DeactivateDevice(ctx, device.ID); err != nil {
				logger.Warn("Failed to deactivate invalid device", slog.Any("deviceID", device.ID), slog.Any("error", err))
			}
		}
	}

	logger.Info("Shipment notification sent",
		slog.Int("devices", len(tokens)),
		slog.Int("sent", totalSent),
		slog.Int("invalidTokens", len(invalidTokens)),
	)

	return nil
}

// notificationContent renders the push message for an event. Deleted shipments are not notified.
func notificationContent(event *service.ShipmentEvent) (service.PushMessage, bool) {
	message := service.PushMessage{
		Data: map[string]string{
			"event_id":        event.EventID,
			"event_type":      event.Type,
			"shipment_id":     event.ShipmentID,
			"tracking_number": event.TrackingNumber,
			"status":          event.Status,
		},
	}

	switch event.Type {
	case service.EventShipmentCreated:
		message.Title = "Shipment created"
		message.Body = fmt.Sprintf("Shipment %s has been created", event.TrackingNumber)
	case service.EventShipmentStatusChanged:
		status := entity.ShipmentStatus(event.Status)
		message.Title = "Shipment update"
		message.Body = fmt.Sprintf("Shipment %s is now %s", event.TrackingNumber, status.Label())
		if event.Location != "" {
			message.Body += " at " + event.Location
		}
	case service.EventShipmentOverdue:
		message.Title = "Shipment delayed"
		message.Body = fmt.Sprintf("Shipment %s has passed its estimated delivery date", event.TrackingNumber)
	default:
		return service.PushMessage{}, false
	}

	return message, true
}
