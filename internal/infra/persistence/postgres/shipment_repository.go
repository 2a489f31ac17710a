package postgres

import (
	"context"
	"time"

	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/domain/repository"
	"boxtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shipmentRepository implements the repository.ShipmentRepository interface.
type shipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository is the constructor for shipmentRepository.
func NewShipmentRepository(db *gorm.DB) repository.ShipmentRepository {
	return &shipmentRepository{db: db}
}

func (repo *shipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	shipmentM := fromShipmentDomain(shipment)

	if err := repo.db.WithContext(ctx).Omit("Sender", "ReceiverCountry", "BoxType").Create(shipmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTrackingNumber
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WithDetails("sender, box type or country does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shipment")
	}

	shipment.ID = shipmentM.ID

	return nil
}

func (repo *shipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shipment, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *shipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*entity.Shipment, error) {
	return repo.findOne(ctx, "tracking_number = ?", trackingNumber)
}

func (repo *shipmentRepository) findOne(ctx context.Context, query string, arg any) (*entity.Shipment, error) {
	var shipmentM model.ShipmentModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&shipmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipment")
	}

	return toShipmentDomain(&shipmentM), nil
}

// UpdateStatus writes the new status only if the row still holds expected.
// Zero affected rows means either the shipment is gone or someone else moved it first.
func (repo *shipmentRepository) UpdateStatus(ctx context.Context, shipment *entity.Shipment, expected entity.ShipmentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Where("id = ? AND status = ?", shipment.ID, string(expected)).
		Updates(map[string]any{
			"status":               string(shipment.Status),
			"actual_delivery_date": shipment.ActualDeliveryDate,
			"updated_at":           shipment.UpdatedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update shipment status")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.ShipmentModel{}).Where("id = ?", shipment.ID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check shipment existence")
		}
		if count == 0 {
			return repository.ErrShipmentNotFound
		}

		return repository.ErrStatusConflict
	}

	return nil
}

func (repo *shipmentRepository) UpdatePayment(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, method string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": string(status),
			"payment_method": method,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update shipment payment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShipmentNotFound
	}

	return nil
}

func (repo *shipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShipmentModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete shipment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShipmentNotFound
	}

	return nil
}

// List returns one page, newest first, plus the total matching rows.
func (repo *shipmentRepository) List(ctx context.Context, query repository.ShipmentQuery) ([]*entity.Shipment, int64, error) {
	scoped := repo.applyQuery(repo.db.WithContext(ctx).Model(&model.ShipmentModel{}), query)

	var total int64
	if err := scoped.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count shipments")
	}

	var shipmentModels []*model.ShipmentModel
	page := scoped.Order("created_at DESC").Order("id DESC").Offset(query.Offset)
	if query.Limit > 0 {
		page = page.Limit(query.Limit)
	}
	if err := page.Find(&shipmentModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list shipments")
	}

	shipments := make([]*entity.Shipment, 0, len(shipmentModels))
	for _, shipmentM := range shipmentModels {
		shipments = append(shipments, toShipmentDomain(shipmentM))
	}

	return shipments, total, nil
}

func (repo *shipmentRepository) applyQuery(db *gorm.DB, query repository.ShipmentQuery) *gorm.DB {
	if query.SenderID != nil {
		db = db.Where("sender_id = ?", *query.SenderID)
	}
	if len(query.Statuses) > 0 {
		db = db.Where("status IN ?", statusStrings(query.Statuses))
	}
	if len(query.ExcludeStatuses) > 0 {
		db = db.Where("status NOT IN ?", statusStrings(query.ExcludeStatuses))
	}
	if query.Priority != nil {
		db = db.Where("priority = ?", string(*query.Priority))
	}
	if query.Search != "" {
		pattern := "%" + escapeLike(query.Search) + "%"
		db = db.Where("(tracking_number ILIKE ? OR receiver_email ILIKE ?)", pattern, pattern)
	}

	return db
}

func (repo *shipmentRepository) CountByStatus(ctx context.Context, senderID *uuid.UUID) ([]repository.StatusCount, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	db := repo.db.WithContext(ctx).Model(&model.ShipmentModel{})
	if senderID != nil {
		db = db.Where("sender_id = ?", *senderID)
	}
	if err := db.Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count shipments by status")
	}

	counts := make([]repository.StatusCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, repository.StatusCount{Status: entity.ShipmentStatus(row.Status), Count: row.Count})
	}

	return counts, nil
}

// SumPaid totals shipping cost over paid shipments.
func (repo *shipmentRepository) SumPaid(ctx context.Context, senderID *uuid.UUID) (*repository.RevenueSummary, error) {
	var row struct {
		Total   float64
		Average float64
		Count   int64
	}

	db := repo.db.WithContext(ctx).Model(&model.ShipmentModel{}).Where("payment_status = ?", string(entity.PaymentPaid))
	if senderID != nil {
		db = db.Where("sender_id = ?", *senderID)
	}
	if err := db.Select("COALESCE(SUM(shipping_cost), 0) AS total, COALESCE(AVG(shipping_cost), 0) AS average, COUNT(*) AS count").
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum paid shipments")
	}

	return &repository.RevenueSummary{Total: row.Total, Average: row.Average, Count: row.Count}, nil
}

func (repo *shipmentRepository) TopDestinations(ctx context.Context, limit int) ([]repository.ReferenceUsage, error) {
	var rows []repository.ReferenceUsage

	if err := repo.db.WithContext(ctx).
		Table("shipments AS s").
		Select("c.id AS id, c.name AS name, COUNT(*) AS count").
		Joins("JOIN countries AS c ON c.id = s.receiver_country_id").
		Group("c.id, c.name").
		Order("count DESC, c.name ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank destinations")
	}

	return rows, nil
}

func (repo *shipmentRepository) TopBoxTypes(ctx context.Context, limit int) ([]repository.ReferenceUsage, error) {
	var rows []repository.ReferenceUsage

	if err := repo.db.WithContext(ctx).
		Table("shipments AS s").
		Select("b.id AS id, b.name AS name, COUNT(*) AS count").
		Joins("JOIN box_types AS b ON b.id = s.box_type_id").
		Group("b.id, b.name").
		Order("count DESC, b.name ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank box types")
	}

	return rows, nil
}

func (repo *shipmentRepository) CountByCountry(ctx context.Context, countryID uuid.UUID) (int64, error) {
	return repo.count(ctx, "receiver_country_id = ?", countryID)
}

func (repo *shipmentRepository) CountByBoxType(ctx context.Context, boxTypeID uuid.UUID) (int64, error) {
	return repo.count(ctx, "box_type_id = ?", boxTypeID)
}

func (repo *shipmentRepository) count(ctx context.Context, query string, arg any) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ShipmentModel{}).Where(query, arg).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count shipments")
	}

	return count, nil
}

func applyCreatedRange(db *gorm.DB, column string, rng repository.CreatedRange) *gorm.DB {
	if rng.From != nil {
		db = db.Where(column+" >= ?", *rng.From)
	}
	if rng.To != nil {
		db = db.Where(column+" < ?", *rng.To)
	}

	return db
}

func (repo *shipmentRepository) CountByPriority(ctx context.Context, rng repository.CreatedRange) ([]repository.PriorityCount, error) {
	var rows []struct {
		Priority string
		Count    int64
	}

	db := applyCreatedRange(repo.db.WithContext(ctx).Model(&model.ShipmentModel{}), "created_at", rng)
	if err := db.Select("priority, COUNT(*) AS count").Group("priority").Order("priority").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count shipments by priority")
	}

	counts := make([]repository.PriorityCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, repository.PriorityCount{Priority: entity.Priority(row.Priority), Count: row.Count})
	}

	return counts, nil
}

func (repo *shipmentRepository) RevenueByDestination(ctx context.Context, rng repository.CreatedRange) ([]repository.DestinationRevenue, error) {
	var rows []repository.DestinationRevenue

	db := repo.db.WithContext(ctx).
		Table("shipments AS s").
		Select("c.id AS id, c.name AS name, COUNT(*) AS count, COALESCE(SUM(s.shipping_cost), 0) AS revenue").
		Joins("JOIN countries AS c ON c.id = s.receiver_country_id")
	if err := applyCreatedRange(db, "s.created_at", rng).
		Group("c.id, c.name").
		Order("count DESC, c.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue by destination")
	}

	return rows, nil
}

// DeliveryTimes measures completed shipments in days, from creation to actual delivery.
func (repo *shipmentRepository) DeliveryTimes(ctx context.Context, rng repository.CreatedRange) (*repository.DeliveryTimeSummary, error) {
	var row repository.DeliveryTimeSummary

	db := repo.db.WithContext(ctx).Model(&model.ShipmentModel{}).
		Where("status = ? AND actual_delivery_date IS NOT NULL", string(entity.StatusCompleted))
	if err := applyCreatedRange(db, "created_at", rng).
		Select(`COALESCE(AVG(EXTRACT(EPOCH FROM (actual_delivery_date - created_at)) / 86400), 0) AS average_days,
			COALESCE(MIN(EXTRACT(EPOCH FROM (actual_delivery_date - created_at)) / 86400), 0) AS min_days,
			COALESCE(MAX(EXTRACT(EPOCH FROM (actual_delivery_date - created_at)) / 86400), 0) AS max_days,
			COUNT(*) AS count`).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to measure delivery times")
	}

	return &row, nil
}

// FindOverdue returns open shipments whose estimate falls in (from, to].
func (repo *shipmentRepository) FindOverdue(ctx context.Context, from, to time.Time) ([]*entity.Shipment, error) {
	var shipmentModels []*model.ShipmentModel

	if err := repo.db.WithContext(ctx).
		Where("estimated_delivery_date > ? AND estimated_delivery_date <= ?", from, to).
		Where("status NOT IN ?", statusStrings(entity.TerminalStatuses())).
		Order("estimated_delivery_date ASC").
		Find(&shipmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find overdue shipments")
	}

	shipments := make([]*entity.Shipment, 0, len(shipmentModels))
	for _, shipmentM := range shipmentModels {
		shipments = append(shipments, toShipmentDomain(shipmentM))
	}

	return shipments, nil
}

func statusStrings(statuses []entity.ShipmentStatus) []string {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}

	return values
}

// --- Mapper Functions ---

func toShipmentDomain(data *model.ShipmentModel) *entity.Shipment {
	if data == nil {
		return nil
	}

	return &entity.Shipment{
		ID:             data.ID,
		TrackingNumber: data.TrackingNumber,
		SenderID:       data.SenderID,
		Receiver: entity.Receiver{
			FirstName:     data.Receiver.FirstName,
			LastName:      data.Receiver.LastName,
			Email:         data.Receiver.Email,
			ContactNumber: data.Receiver.ContactNumber,
			Street:        data.Receiver.Street,
			City:          data.Receiver.City,
			State:         data.Receiver.State,
			ZipCode:       data.Receiver.ZipCode,
			CountryID:     data.ReceiverCountryID,
		},
		BoxTypeID:             data.BoxTypeID,
		Weight:                data.Weight,
		Contents:              data.Contents,
		ShippingCost:          data.ShippingCost,
		Priority:              entity.Priority(data.Priority),
		IsFragile:             data.IsFragile,
		Status:                entity.ShipmentStatus(data.Status),
		EstimatedDeliveryDate: data.EstimatedDeliveryDate,
		ActualDeliveryDate:    data.ActualDeliveryDate,
		PaymentStatus:         entity.PaymentStatus(data.PaymentStatus),
		PaymentMethod:         data.PaymentMethod,
		IsInsured:             data.IsInsured,
		InsuranceValue:        data.InsuranceValue,
		Notes:                 data.Notes,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromShipmentDomain(data *entity.Shipment) *model.ShipmentModel {
	if data == nil {
		return nil
	}

	return &model.ShipmentModel{
		ID:             data.ID,
		TrackingNumber: data.TrackingNumber,
		SenderID:       data.SenderID,
		Receiver: model.ReceiverModel{
			FirstName:     data.Receiver.FirstName,
			LastName:      data.Receiver.LastName,
			Email:         data.Receiver.Email,
			ContactNumber: data.Receiver.ContactNumber,
			Street:        data.Receiver.Street,
			City:          data.Receiver.City,
			State:         data.Receiver.State,
			ZipCode:       data.Receiver.ZipCode,
		},
		ReceiverCountryID:     data.Receiver.CountryID,
		BoxTypeID:             data.BoxTypeID,
		Weight:                data.Weight,
		Contents:              data.Contents,
		ShippingCost:          data.ShippingCost,
		Priority:              string(data.Priority),
		IsFragile:             data.IsFragile,
		Status:                string(data.Status),
		EstimatedDeliveryDate: data.EstimatedDeliveryDate,
		ActualDeliveryDate:    data.ActualDeliveryDate,
		PaymentStatus:         string(data.PaymentStatus),
		PaymentMethod:         data.PaymentMethod,
		IsInsured:             data.IsInsured,
		InsuranceValue:        data.InsuranceValue,
		Notes:                 data.Notes,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
