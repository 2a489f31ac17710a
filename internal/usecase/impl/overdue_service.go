package impl

import (
	"context"
	"log/slog"
	"time"

	"boxtrack/internal/domain/repository"
	"boxtrack/internal/domain/service"
	"boxtrack/internal/errors"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type overdueService struct {
	shipmentRepo repository.ShipmentRepository
	ledgerRepo   repository.TrackingEventRepository
	events       eventEmitter
	logger       *slog.Logger
}

// OverdueServiceParams holds dependencies for the overdue sweep, injected by Fx.
type OverdueServiceParams struct {
	fx.In

	ShipmentRepo repository.ShipmentRepository
	LedgerRepo   repository.TrackingEventRepository
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder `optional:"true"`
	Logger       *slog.Logger
}

// NewOverdueService creates the sweep run by the notifier's scheduler.
func NewOverdueService(params OverdueServiceParams) usecase.OverdueSweepUsecase {
	return &overdueService{
		shipmentRepo: params.ShipmentRepo,
		ledgerRepo:   params.LedgerRepo,
		events:       newEventEmitter(params.Publisher, params.Metrics),
		logger:       params.Logger,
	}
}

func (srv *overdueService) SweepOverdue(ctx context.Context, now time.Time, window time.Duration) (int, error) {
	if window <= 0 {
		return 0, errors.New("sweep window must be positive")
	}

	shipments, err := srv.shipmentRepo.FindOverdue(ctx, now.Add(-window), now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find overdue shipments")
	}

	for _, shipment := range shipments {
		event := newShipmentEvent(ctx, service.EventShipmentOverdue, shipment, now)
		event.Description = "Estimated delivery date has passed"
		event.Location = srv.lastKnownLocation(ctx, shipment.ID)
		srv.events.emit(ctx, srv.logger, event)
	}

	if len(shipments) > 0 {
		srv.logger.Info("Overdue sweep finished", slog.Int("overdue", len(shipments)), slog.Time("until", now))
	}

	return len(shipments), nil
}

// lastKnownLocation is empty when the ledger cannot be read; the overdue notice still goes out.
func (srv *overdueService) lastKnownLocation(ctx context.Context, shipmentID uuid.UUID) string {
	latest, err := srv.ledgerRepo.Latest(ctx, shipmentID)
	if err != nil {
		srv.logger.Warn("Failed to read latest ledger entry", slog.Any("shipmentID", shipmentID), slog.Any("error", err))

		return ""
	}

	return latest.Location
}
