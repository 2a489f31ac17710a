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

// trackingEventRepository stores the append-only shipment ledger.
type trackingEventRepository struct {
	db *gorm.DB
}

// NewTrackingEventRepository is the constructor for trackingEventRepository.
func NewTrackingEventRepository(db *gorm.DB) repository.TrackingEventRepository {
	return &trackingEventRepository{db: db}
}

func (repo *trackingEventRepository) Append(ctx context.Context, event *entity.TrackingEvent) error {
	eventM := fromTrackingEventDomain(event)

	if err := repo.db.WithContext(ctx).Omit("Shipment").Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrShipmentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append tracking event")
	}

	event.ID = eventM.ID

	return nil
}

func (repo *trackingEventRepository) ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]*entity.TrackingEvent, error) {
	var eventModels []*model.TrackingEventModel

	if err := repo.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Order("recorded_at ASC").
		Order("id ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tracking events")
	}

	events := make([]*entity.TrackingEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toTrackingEventDomain(eventM))
	}

	return events, nil
}

func (repo *trackingEventRepository) Latest(ctx context.Context, shipmentID uuid.UUID) (*entity.TrackingEvent, error) {
	var eventM model.TrackingEventModel

	if err := repo.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Order("recorded_at DESC").
		Order("id DESC").
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest tracking event")
	}

	return toTrackingEventDomain(&eventM), nil
}

func (repo *trackingEventRepository) DeleteByShipment(ctx context.Context, shipmentID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("shipment_id = ?", shipmentID).Delete(&model.TrackingEventModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete tracking events")
	}

	return result.RowsAffected, nil
}

func toTrackingEventDomain(data *model.TrackingEventModel) *entity.TrackingEvent {
	return &entity.TrackingEvent{
		ID:          data.ID,
		ShipmentID:  data.ShipmentID,
		Status:      entity.ShipmentStatus(data.Status),
		Location:    data.Location,
		Description: data.Description,
		Timestamp:   data.RecordedAt,
	}
}

func fromTrackingEventDomain(data *entity.TrackingEvent) *model.TrackingEventModel {
	return &model.TrackingEventModel{
		ID:          data.ID,
		ShipmentID:  data.ShipmentID,
		Status:      string(data.Status),
		Location:    data.Location,
		Description: data.Description,
		RecordedAt:  data.Timestamp,
	}
}
