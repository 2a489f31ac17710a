package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	deliverycontext "boxtrack/internal/delivery/context"
	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/domain/policy"
	"boxtrack/internal/domain/repository"
	"boxtrack/internal/domain/service"
	"boxtrack/internal/errors"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type shipmentDirectoryService struct {
	shipmentRepo repository.ShipmentRepository
	ledgerRepo   repository.TrackingEventRepository
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// ShipmentDirectoryServiceParams holds dependencies for the directory, injected by Fx.
type ShipmentDirectoryServiceParams struct {
	fx.In

	ShipmentRepo repository.ShipmentRepository
	LedgerRepo   repository.TrackingEventRepository
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewShipmentDirectoryService creates the read side of the shipment lifecycle.
func NewShipmentDirectoryService(params ShipmentDirectoryServiceParams) usecase.ShipmentDirectoryUsecase {
	return &shipmentDirectoryService{
		shipmentRepo: params.ShipmentRepo,
		ledgerRepo:   params.LedgerRepo,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

func (srv *shipmentDirectoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *shipmentDirectoryService) Get(ctx context.Context, actor entity.Actor, shipmentID uuid.UUID) (*entity.Shipment, error) {
	shipment, err := findShipment(ctx, srv.shipmentRepo, shipmentID)
	if err != nil {
		return nil, err
	}
	if err := policy.CanRead(actor, shipment); err != nil {
		return nil, err
	}

	return shipment, nil
}

func (srv *shipmentDirectoryService) GetByTrackingNumber(ctx context.Context, actor entity.Actor, trackingNumber string) (*entity.Shipment, error) {
	shipment, err := srv.shipmentRepo.FindByTrackingNumber(ctx, strings.TrimSpace(trackingNumber))
	if err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return nil, domainerrors.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to load shipment by tracking number")
	}
	if err := policy.CanRead(actor, shipment); err != nil {
		return nil, err
	}

	return shipment, nil
}

// History returns the ledger of a shipment, oldest entry first.
func (srv *shipmentDirectoryService) History(ctx context.Context, actor entity.Actor, shipmentID uuid.UUID) ([]*entity.TrackingEvent, error) {
	if _, err := srv.Get(ctx, actor, shipmentID); err != nil {
		return nil, err
	}

	events, err := srv.ledgerRepo.ListByShipment(ctx, shipmentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipment ledger")
	}

	return events, nil
}

// List pages through the shipments visible to actor. Customers only ever see
// their own; administrators see open shipments unless they filter by status.
func (srv *shipmentDirectoryService) List(
	ctx context.Context,
	actor entity.Actor,
	filter usecase.ShipmentFilter,
	page usecase.PageRequest,
) (*usecase.ShipmentPage, error) {
	if actor.IsAnonymous() {
		return nil, domainerrors.ErrForbidden.WithDetails("authentication required")
	}

	page = page.Normalize()
	query := repository.ShipmentQuery{
		Search: strings.TrimSpace(filter.Search),
		Offset: page.Offset(),
		Limit:  page.PageSize,
	}

	if filter.Status != nil {
		if !filter.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown status %q", *filter.Status))
		}
		query.Statuses = []entity.ShipmentStatus{*filter.Status}
	}
	if filter.Priority != nil {
		if !filter.Priority.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown priority %q", *filter.Priority))
		}
		query.Priority = filter.Priority
	}

	if actor.IsAdmin() {
		query.SenderID = filter.SenderID
		if filter.Status == nil && !filter.IncludeClosed {
			query.ExcludeStatuses = entity.TerminalStatuses()
		}
	} else {
		senderID := actor.ID
		query.SenderID = &senderID
	}

	items, total, err := srv.shipmentRepo.List(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Failed to list shipments", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list shipments")
	}

	return &usecase.ShipmentPage{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(page.PageSize))),
	}, nil
}

// Label renders a QR code of the public tracking URL.
func (srv *shipmentDirectoryService) Label(ctx context.Context, actor entity.Actor, shipmentID uuid.UUID) (*usecase.ShipmentLabel, error) {
	shipment, err := srv.Get(ctx, actor, shipmentID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateTrackingQR(shipment.TrackingNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render shipment label")
	}

	return &usecase.ShipmentLabel{Shipment: shipment, PNG: png}, nil
}
