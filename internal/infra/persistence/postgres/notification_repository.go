package postgres

import (
	"context"

	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/domain/repository"
	"boxtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const notificationLogBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// BatchCreateNotificationLogs persists multiple notification log entries in batches.
func (repo *notificationRepository) BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromNotificationLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, notificationLogBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notification logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
		logs[i].SentAt = logM.SentAt
	}

	return nil
}

// CountByEvent counts the logs already written for an event.
func (repo *notificationRepository) CountByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationLogModel{}).
		Where("event_id = ?", eventID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count notification logs")
	}

	return count, nil
}

// --- Mapper Functions ---

// fromNotificationLogDomain converts a domain NotificationLog entity to a GORM NotificationLogModel.
func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationLogModel{
		ID:           data.ID,
		EventID:      data.EventID,
		EventType:    data.EventType,
		ShipmentID:   data.ShipmentID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Status:       data.Status,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}
