package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"boxtrack/config"
	deliverycontext "boxtrack/internal/delivery/context"
	"boxtrack/internal/domain/constants"
	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/domain/policy"
	"boxtrack/internal/domain/pricing"
	"boxtrack/internal/domain/repository"
	"boxtrack/internal/domain/service"
	"boxtrack/internal/errors"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// shipmentService implements the ShipmentUsecase interface.
type shipmentService struct {
	txManager       repository.TransactionManager
	trackingNumbers service.TrackingNumberGenerator
	events          eventEmitter
	metrics         service.MetricsRecorder
	minDays         int
	maxDays         int
	now             func() time.Time
	intN            func(n int) int
	logger          *slog.Logger
}

// ShipmentServiceParams holds dependencies for ShipmentService, injected by Fx.
type ShipmentServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	TrackingNumbers service.TrackingNumberGenerator
	Publisher       service.EventPublisher
	Metrics         service.MetricsRecorder `optional:"true"`
	Config          *config.Config
	Logger          *slog.Logger
}

// NewShipmentService is the constructor for shipmentService.
func NewShipmentService(params ShipmentServiceParams) usecase.ShipmentUsecase {
	return newShipmentService(params)
}

func newShipmentService(params ShipmentServiceParams) *shipmentService {
	minDays, maxDays := 5, 10
	if params.Config != nil && params.Config.Shipping != nil {
		minDays = params.Config.Shipping.MinDeliveryDays
		maxDays = params.Config.Shipping.MaxDeliveryDays
	}

	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetricsRecorder{}
	}

	return &shipmentService{
		txManager:       params.TxManager,
		trackingNumbers: params.TrackingNumbers,
		events:          newEventEmitter(params.Publisher, metrics),
		metrics:         metrics,
		minDays:         minDays,
		maxDays:         maxDays,
		now:             time.Now,
		intN:            rand.IntN,
		logger:          params.Logger,
	}
}

func (srv *shipmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create books a shipment in CREATED status together with its first ledger entry.
func (srv *shipmentService) Create(ctx context.Context, actor entity.Actor, input *usecase.CreateShipmentInput) (*entity.Shipment, error) {
	if err := policy.CanCreate(actor); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}
	if !priority.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown priority %q", input.Priority))
	}

	var created *entity.Shipment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		box, err := findActiveReference(ctx, repoFactory.BoxTypeRepo().FindByID, input.BoxTypeID, repository.ErrBoxTypeNotFound, "box type")
		if err != nil {
			return err
		}
		country, err := findActiveReference(ctx, repoFactory.CountryRepo().FindByID, input.Receiver.CountryID, repository.ErrCountryNotFound, "country")
		if err != nil {
			return err
		}

		cost, err := pricing.CalculateActive(box, country)
		if err != nil {
			return err
		}

		now := srv.now()
		shipment := &entity.Shipment{
			ID:                    uuid.New(),
			TrackingNumber:        srv.trackingNumbers.Generate(),
			SenderID:              actor.ID,
			Receiver:              input.Receiver,
			BoxTypeID:             box.ID,
			Weight:                input.Weight,
			Contents:              input.Contents,
			ShippingCost:          cost,
			Priority:              priority,
			IsFragile:             input.IsFragile,
			Status:                entity.StatusCreated,
			EstimatedDeliveryDate: addBusinessDays(now, srv.deliveryDays()),
			PaymentStatus:         entity.PaymentPending,
			IsInsured:             input.IsInsured,
			InsuranceValue:        input.InsuranceValue,
			Notes:                 input.Notes,
			CreatedAt:             now,
			UpdatedAt:             now,
		}

		if err := repoFactory.ShipmentRepo().Create(ctx, shipment); err != nil {
			if errors.Is(err, repository.ErrDuplicateTrackingNumber) {
				return domainerrors.ErrConflict.WithDetails("tracking number already issued")
			}

			return errors.Wrap(err, "failed to create shipment")
		}

		entry := &entity.TrackingEvent{
			ID:          uuid.New(),
			ShipmentID:  shipment.ID,
			Status:      entity.StatusCreated,
			Location:    constants.OriginLocation,
			Description: constants.OriginDescription,
			Timestamp:   now,
		}
		if err := repoFactory.TrackingEventRepo().Append(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to append creation ledger entry")
		}

		created = shipment

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create shipment", slog.Any("senderID", actor.ID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.ShipmentCreated(string(created.Priority))
	srv.log(ctx).Info("Shipment created",
		slog.Any("shipmentID", created.ID),
		slog.String("trackingNumber", created.TrackingNumber),
		slog.Float64("shippingCost", created.ShippingCost),
	)

	event := newShipmentEvent(ctx, service.EventShipmentCreated, created, created.CreatedAt)
	event.Location = constants.OriginLocation
	event.Description = constants.OriginDescription
	srv.events.emit(ctx, srv.log(ctx), event)

	return created, nil
}

// Transition moves a shipment along the status table. The status write is
// conditional on the status that was read, so of two racing requests at most
// one commits.
func (srv *shipmentService) Transition(ctx context.Context, actor entity.Actor, input *usecase.TransitionInput) (*entity.Shipment, error) {
	if actor.IsAnonymous() {
		return nil, domainerrors.ErrForbidden.WithDetails("authentication required")
	}
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown status %q", input.Status))
	}

	var (
		updated  *entity.Shipment
		previous entity.ShipmentStatus
		entry    *entity.TrackingEvent
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shipment, err := findShipment(ctx, repoFactory.ShipmentRepo(), input.ShipmentID)
		if err != nil {
			return err
		}

		if shipment.Status.IsTerminal() {
			return domainerrors.ErrIllegalTransition.WithDetails(fmt.Sprintf("shipment is already %s", shipment.Status))
		}
		if err := policy.CanTransition(actor, shipment, input.Status); err != nil {
			return err
		}
		if !shipment.Status.CanTransitionTo(input.Status) {
			return domainerrors.ErrIllegalTransition.WithDetails(fmt.Sprintf("cannot move from %s to %s", shipment.Status, input.Status))
		}

		previous = shipment.Status
		now := srv.now()
		shipment.ApplyStatus(input.Status, now)

		if err := repoFactory.ShipmentRepo().UpdateStatus(ctx, shipment, previous); err != nil {
			switch {
			case errors.Is(err, repository.ErrStatusConflict):
				return domainerrors.ErrConflict.WithDetails("shipment status changed concurrently")
			case errors.Is(err, repository.ErrShipmentNotFound):
				return domainerrors.ErrShipmentNotFound
			default:
				return errors.Wrap(err, "failed to update shipment status")
			}
		}

		entry = &entity.TrackingEvent{
			ID:          uuid.New(),
			ShipmentID:  shipment.ID,
			Status:      input.Status,
			Location:    defaultString(input.Location, constants.DefaultTransitionLocation),
			Description: defaultString(input.Description, "Status updated to "+input.Status.String()),
			Timestamp:   now,
		}
		if err := repoFactory.TrackingEventRepo().Append(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to append ledger entry")
		}

		updated = shipment

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Shipment transition rejected",
			slog.Any("shipmentID", input.ShipmentID),
			slog.String("requested", input.Status.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.metrics.ShipmentTransitioned(previous.String(), updated.Status.String())
	srv.log(ctx).Info("Shipment status changed",
		slog.Any("shipmentID", updated.ID),
		slog.String("from", previous.String()),
		slog.String("to", updated.Status.String()),
	)

	event := newShipmentEvent(ctx, service.EventShipmentStatusChanged, updated, entry.Timestamp)
	event.PreviousStatus = previous.String()
	event.Location = entry.Location
	event.Description = entry.Description
	srv.events.emit(ctx, srv.log(ctx), event)

	return updated, nil
}

// Delete removes a shipment and its whole ledger. Administrators only.
func (srv *shipmentService) Delete(ctx context.Context, actor entity.Actor, shipmentID uuid.UUID) error {
	if err := policy.CanDelete(actor); err != nil {
		return err
	}

	var (
		deleted *entity.Shipment
		removed int64
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shipment, err := findShipment(ctx, repoFactory.ShipmentRepo(), shipmentID)
		if err != nil {
			return err
		}

		removed, err = repoFactory.TrackingEventRepo().DeleteByShipment(ctx, shipmentID)
		if err != nil {
			return errors.Wrap(err, "failed to delete shipment ledger")
		}

		if err := repoFactory.ShipmentRepo().Delete(ctx, shipmentID); err != nil {
			if errors.Is(err, repository.ErrShipmentNotFound) {
				return domainerrors.ErrShipmentNotFound
			}

			return errors.Wrap(err, "failed to delete shipment")
		}

		deleted = shipment

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete shipment", slog.Any("shipmentID", shipmentID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Shipment deleted", slog.Any("shipmentID", shipmentID), slog.Int64("ledgerEntries", removed))
	srv.events.emit(ctx, srv.log(ctx), newShipmentEvent(ctx, service.EventShipmentDeleted, deleted, srv.now()))

	return nil
}

// MarkPaid records payment. It does not touch the status or the ledger.
func (srv *shipmentService) MarkPaid(ctx context.Context, actor entity.Actor, input *usecase.MarkPaidInput) (*entity.Shipment, error) {
	if actor.IsAnonymous() {
		return nil, domainerrors.ErrForbidden.WithDetails("authentication required")
	}

	method := strings.TrimSpace(input.PaymentMethod)
	var paid *entity.Shipment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shipment, err := findShipment(ctx, repoFactory.ShipmentRepo(), input.ShipmentID)
		if err != nil {
			return err
		}
		if err := policy.CanPay(actor, shipment); err != nil {
			return err
		}
		if shipment.Status == entity.StatusCancelled {
			return domainerrors.ErrIllegalTransition.WithDetails("cancelled shipments cannot be paid")
		}
		if shipment.PaymentStatus == entity.PaymentPaid {
			return domainerrors.ErrIllegalTransition.WithDetails("shipment is already paid")
		}

		if err := repoFactory.ShipmentRepo().UpdatePayment(ctx, shipment.ID, entity.PaymentPaid, method); err != nil {
			return errors.Wrap(err, "failed to record payment")
		}

		shipment.PaymentStatus = entity.PaymentPaid
		shipment.PaymentMethod = method
		paid = shipment

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Shipment paid", slog.Any("shipmentID", paid.ID), slog.String("method", method))

	return paid, nil
}

func (srv *shipmentService) deliveryDays() int {
	if srv.maxDays <= srv.minDays {
		return srv.minDays
	}

	return srv.minDays + srv.intN(srv.maxDays-srv.minDays+1)
}

// addBusinessDays advances start by days weekdays, skipping Saturdays and Sundays.
func addBusinessDays(start time.Time, days int) time.Time {
	current := start
	for added := 0; added < days; {
		current = current.AddDate(0, 0, 1)
		if current.Weekday() != time.Saturday && current.Weekday() != time.Sunday {
			added++
		}
	}

	return current
}

func findShipment(ctx context.Context, repo repository.ShipmentRepository, id uuid.UUID) (*entity.Shipment, error) {
	shipment, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return nil, domainerrors.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to load shipment")
	}

	return shipment, nil
}

type activatable interface {
	*entity.BoxType | *entity.Country
}

// findActiveReference loads a catalogue record for a new shipment. Missing
// records surface as ErrInvalidReference; the active check is left to pricing.
func findActiveReference[T activatable](
	ctx context.Context,
	find func(context.Context, uuid.UUID) (T, error),
	id uuid.UUID,
	notFound error,
	kind string,
) (T, error) {
	record, err := find(ctx, id)
	if err != nil {
		if errors.Is(err, notFound) {
			return nil, domainerrors.ErrInvalidReference.WithDetails(fmt.Sprintf("%s %s does not exist", kind, id))
		}

		return nil, errors.Wrapf(err, "failed to load %s", kind)
	}

	return record, nil
}

func defaultString(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}

	return fallback
}
