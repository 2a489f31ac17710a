package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"boxtrack/internal/domain/constants"
	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/domain/repository"
	"boxtrack/internal/domain/service"
	"boxtrack/internal/infra/persistence/memory"
	mockRepo "boxtrack/internal/mocks/repository"
	mockService "boxtrack/internal/mocks/service"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Monday, so five business days later is the following Monday.
var fixedNow = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

type eventRecorder struct {
	mu     sync.Mutex
	events []*service.ShipmentEvent
}

func (r *eventRecorder) record(_ context.Context, event *service.ShipmentEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)

	return nil
}

func (r *eventRecorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	types := make([]string, 0, len(r.events))
	for _, event := range r.events {
		types = append(types, event.Type)
	}

	return types
}

func (r *eventRecorder) last() *service.ShipmentEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return nil
	}

	return r.events[len(r.events)-1]
}

type shipmentFixture struct {
	store   *memory.Store
	svc     *shipmentService
	country *entity.Country
	box     *entity.BoxType
	sender  entity.Actor
	other   entity.Actor
	admin   entity.Actor
	events  *eventRecorder
}

func newShipmentFixture(t *testing.T) *shipmentFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	country := &entity.Country{
		Name: "Canada", Code: "CA", CurrencyCode: "CAD", Multiplier: 2.0,
		Continent: entity.ContinentNorthAmerica, ShippingZone: entity.ShippingZone1, IsActive: true,
	}
	require.NoError(t, store.Countries().Create(ctx, country))
	box := &entity.BoxType{Name: "Medium", Length: 40, Width: 30, Height: 20, Weight: 5, BasePrice: 49, IsActive: true}
	require.NoError(t, store.BoxTypes().Create(ctx, box))

	var sequence atomic.Int64
	trackingNumbers := mockService.NewMockTrackingNumberGenerator(t)
	trackingNumbers.EXPECT().Generate().RunAndReturn(func() string {
		return fmt.Sprintf("BOX-TEST-%06d", sequence.Add(1))
	}).Maybe()

	recorder := &eventRecorder{}
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishShipmentEvent(mock.Anything, mock.Anything).RunAndReturn(recorder.record).Maybe()

	svc := newShipmentService(ShipmentServiceParams{
		TxManager:       store,
		TrackingNumbers: trackingNumbers,
		Publisher:       publisher,
		Logger:          slog.New(slog.DiscardHandler),
	})
	svc.now = func() time.Time { return fixedNow }
	svc.intN = func(int) int { return 0 }

	return &shipmentFixture{
		store:   store,
		svc:     svc,
		country: country,
		box:     box,
		sender:  entity.Actor{ID: uuid.New(), Role: entity.RoleRegisteredUser},
		other:   entity.Actor{ID: uuid.New(), Role: entity.RoleRegisteredUser},
		admin:   entity.Actor{ID: uuid.New(), Role: entity.RoleAdministrator},
		events:  recorder,
	}
}

func (f *shipmentFixture) createInput() *usecase.CreateShipmentInput {
	return &usecase.CreateShipmentInput{
		Receiver: entity.Receiver{
			FirstName: "Grace",
			LastName:  "Hopper",
			Email:     "grace@example.com",
			Street:    "1 Harbour St",
			City:      "Toronto",
			CountryID: f.country.ID,
		},
		BoxTypeID: f.box.ID,
		Weight:    3.5,
		Contents:  "Books",
	}
}

func (f *shipmentFixture) create(t *testing.T) *entity.Shipment {
	t.Helper()
	shipment, err := f.svc.Create(context.Background(), f.sender, f.createInput())
	require.NoError(t, err)

	return shipment
}

func (f *shipmentFixture) ledger(t *testing.T, shipmentID uuid.UUID) []*entity.TrackingEvent {
	t.Helper()
	events, err := f.store.TrackingEvents().ListByShipment(context.Background(), shipmentID)
	require.NoError(t, err)

	return events
}

func (f *shipmentFixture) transition(shipmentID uuid.UUID, actor entity.Actor, status entity.ShipmentStatus) (*entity.Shipment, error) {
	return f.svc.Transition(context.Background(), actor, &usecase.TransitionInput{ShipmentID: shipmentID, Status: status})
}

func TestShipmentService_Create(t *testing.T) {
	f := newShipmentFixture(t)

	shipment := f.create(t)

	assert.Equal(t, "BOX-TEST-000001", shipment.TrackingNumber)
	assert.Equal(t, f.sender.ID, shipment.SenderID)
	assert.Equal(t, entity.StatusCreated, shipment.Status)
	assert.Equal(t, entity.PriorityNormal, shipment.Priority)
	assert.Equal(t, entity.PaymentPending, shipment.PaymentStatus)
	assert.InDelta(t, 98.0, shipment.ShippingCost, 1e-9)
	assert.Equal(t, time.Date(2024, time.January, 8, 9, 0, 0, 0, time.UTC), shipment.EstimatedDeliveryDate)
	assert.Nil(t, shipment.ActualDeliveryDate)

	stored, err := f.store.Shipments().FindByID(context.Background(), shipment.ID)
	require.NoError(t, err)
	assert.Equal(t, shipment.TrackingNumber, stored.TrackingNumber)

	ledger := f.ledger(t, shipment.ID)
	require.Len(t, ledger, 1)
	assert.Equal(t, entity.StatusCreated, ledger[0].Status)
	assert.Equal(t, constants.OriginLocation, ledger[0].Location)

	assert.Equal(t, []string{service.EventShipmentCreated}, f.events.types())
	assert.Equal(t, shipment.ID.String(), f.events.last().ShipmentID)
}

func TestShipmentService_Create_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous actor", func(t *testing.T) {
		f := newShipmentFixture(t)
		_, err := f.svc.Create(ctx, entity.AnonymousActor(), f.createInput())
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown priority", func(t *testing.T) {
		f := newShipmentFixture(t)
		input := f.createInput()
		input.Priority = "OVERNIGHT"
		_, err := f.svc.Create(ctx, f.sender, input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing box type", func(t *testing.T) {
		f := newShipmentFixture(t)
		input := f.createInput()
		input.BoxTypeID = uuid.New()
		_, err := f.svc.Create(ctx, f.sender, input)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
	})

	t.Run("missing country", func(t *testing.T) {
		f := newShipmentFixture(t)
		input := f.createInput()
		input.Receiver.CountryID = uuid.New()
		_, err := f.svc.Create(ctx, f.sender, input)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
	})

	t.Run("inactive country", func(t *testing.T) {
		f := newShipmentFixture(t)
		f.country.IsActive = false
		require.NoError(t, f.store.Countries().Update(ctx, f.country))

		_, err := f.svc.Create(ctx, f.sender, f.createInput())
		assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)

		items, total, listErr := f.store.Shipments().List(ctx, repository.ShipmentQuery{Limit: 10})
		require.NoError(t, listErr)
		assert.Empty(t, items)
		assert.Zero(t, total)
		assert.Empty(t, f.events.types())
	})
}

func TestShipmentService_Transition_FullLifecycle(t *testing.T) {
	f := newShipmentFixture(t)
	shipment := f.create(t)

	for _, status := range []entity.ShipmentStatus{entity.StatusReceived, entity.StatusInTransit} {
		updated, err := f.transition(shipment.ID, f.admin, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
		assert.Nil(t, updated.ActualDeliveryDate)
	}

	completed, err := f.svc.Transition(context.Background(), f.admin, &usecase.TransitionInput{
		ShipmentID:  shipment.ID,
		Status:      entity.StatusCompleted,
		Location:    "Toronto",
		Description: "Left at front desk",
	})
	require.NoError(t, err)
	require.NotNil(t, completed.ActualDeliveryDate)
	assert.Equal(t, fixedNow, *completed.ActualDeliveryDate)

	ledger := f.ledger(t, shipment.ID)
	require.Len(t, ledger, 4)
	assert.Equal(t, entity.StatusReceived, ledger[1].Status)
	assert.Equal(t, constants.DefaultTransitionLocation, ledger[1].Location)
	assert.Equal(t, "Status updated to RECEIVED", ledger[1].Description)
	assert.Equal(t, "Toronto", ledger[3].Location)

	last := f.events.last()
	assert.Equal(t, service.EventShipmentStatusChanged, last.Type)
	assert.Equal(t, entity.StatusInTransit.String(), last.PreviousStatus)
	assert.Equal(t, entity.StatusCompleted.String(), last.Status)
}

func TestShipmentService_Transition_TerminalIsFinal(t *testing.T) {
	f := newShipmentFixture(t)
	shipment := f.create(t)

	_, err := f.transition(shipment.ID, f.admin, entity.StatusCancelled)
	require.NoError(t, err)

	for _, status := range entity.AllShipmentStatuses {
		_, err := f.transition(shipment.ID, f.admin, status)
		assert.ErrorIs(t, err, domainerrors.ErrIllegalTransition, "status %s", status)
	}

	stored, err := f.store.Shipments().FindByID(context.Background(), shipment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, stored.Status)
	assert.Len(t, f.ledger(t, shipment.ID), 2)
}

func TestShipmentService_Transition_Rules(t *testing.T) {
	ctx := context.Background()

	t.Run("same status is illegal", func(t *testing.T) {
		f := newShipmentFixture(t)
		shipment := f.create(t)
		_, err := f.transition(shipment.ID, f.admin, entity.StatusCreated)
		assert.ErrorIs(t, err, domainerrors.ErrIllegalTransition)
	})

	t.Run("no going back", func(t *testing.T) {
		f := newShipmentFixture(t)
		shipment := f.create(t)
		_, err := f.transition(shipment.ID, f.admin, entity.StatusInTransit)
		require.NoError(t, err)
		_, err = f.transition(shipment.ID, f.admin, entity.StatusReceived)
		assert.ErrorIs(t, err, domainerrors.ErrIllegalTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newShipmentFixture(t)
		shipment := f.create(t)
		_, err := f.transition(shipment.ID, f.admin, "LOST")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown shipment", func(t *testing.T) {
		f := newShipmentFixture(t)
		_, err := f.transition(uuid.New(), f.admin, entity.StatusReceived)
		assert.ErrorIs(t, err, domainerrors.ErrShipmentNotFound)
	})

	t.Run("anonymous", func(t *testing.T) {
		f := newShipmentFixture(t)
		shipment := f.create(t)
		_, err := f.svc.Transition(ctx, entity.AnonymousActor(), &usecase.TransitionInput{ShipmentID: shipment.ID, Status: entity.StatusCancelled})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestShipmentService_Transition_CustomerMayOnlyCancelOwn(t *testing.T) {
	f := newShipmentFixture(t)
	shipment := f.create(t)

	_, err := f.transition(shipment.ID, f.sender, entity.StatusReceived)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = f.transition(shipment.ID, f.other, entity.StatusCancelled)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	cancelled, err := f.transition(shipment.ID, f.sender, entity.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, cancelled.Status)
	assert.Len(t, f.ledger(t, shipment.ID), 2)
}

func TestShipmentService_Transition_ConcurrentRequests(t *testing.T) {
	f := newShipmentFixture(t)
	shipment := f.create(t)
	_, err := f.transition(shipment.ID, f.admin, entity.StatusInTransit)
	require.NoError(t, err)

	targets := []entity.ShipmentStatus{entity.StatusCompleted, entity.StatusCancelled}
	errs := make([]error, len(targets))

	var wg sync.WaitGroup
	for i, status := range targets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.transition(shipment.ID, f.admin, status)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++

			continue
		}
		assert.True(t,
			errors.Is(err, domainerrors.ErrIllegalTransition) || errors.Is(err, domainerrors.ErrConflict),
			"unexpected error %v", err)
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, f.ledger(t, shipment.ID), 3)
}

func TestShipmentService_Transition_StatusConflict(t *testing.T) {
	ctx := context.Background()
	shipmentID := uuid.New()

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	shipmentRepo := mockRepo.NewMockShipmentRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().ShipmentRepo().Return(shipmentRepo)
	shipmentRepo.EXPECT().FindByID(ctx, shipmentID).
		Return(&entity.Shipment{ID: shipmentID, Status: entity.StatusCreated}, nil)
	shipmentRepo.EXPECT().UpdateStatus(ctx, mock.Anything, entity.StatusCreated).
		Return(repository.ErrStatusConflict)

	svc := NewShipmentService(ShipmentServiceParams{
		TxManager: txManager,
		Publisher: publisher,
		Logger:    slog.New(slog.DiscardHandler),
	})

	_, err := svc.Transition(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleAdministrator},
		&usecase.TransitionInput{ShipmentID: shipmentID, Status: entity.StatusReceived})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestShipmentService_Create_TrackingNumberCollision(t *testing.T) {
	ctx := context.Background()
	f := newShipmentFixture(t)
	first := f.create(t)

	reused := mockService.NewMockTrackingNumberGenerator(t)
	reused.EXPECT().Generate().Return(first.TrackingNumber)
	f.svc.trackingNumbers = reused

	// No TrackingEventRepo expectation: a ledger append after the failed insert fails the test.
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return f.store.Execute(ctx, func(inner repository.RepositoryFactory) error {
				factory := mockRepo.NewMockRepositoryFactory(t)
				factory.EXPECT().ShipmentRepo().Return(inner.ShipmentRepo())
				factory.EXPECT().BoxTypeRepo().Return(inner.BoxTypeRepo())
				factory.EXPECT().CountryRepo().Return(inner.CountryRepo())

				return fn(factory)
			})
		})
	f.svc.txManager = txManager

	_, err := f.svc.Create(ctx, f.sender, f.createInput())
	assert.ErrorIs(t, err, domainerrors.ErrConflict)

	shipments, total, err := f.store.Shipments().List(ctx, repository.ShipmentQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, shipments, 1)
	assert.Equal(t, first.ID, shipments[0].ID)
	assert.Len(t, f.ledger(t, first.ID), 1)
	assert.Equal(t, []string{service.EventShipmentCreated}, f.events.types())
}

func TestShipmentService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newShipmentFixture(t)
	shipment := f.create(t)
	_, err := f.transition(shipment.ID, f.admin, entity.StatusReceived)
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(ctx, f.sender, shipment.ID), domainerrors.ErrForbidden)

	require.NoError(t, f.svc.Delete(ctx, f.admin, shipment.ID))

	_, err = f.store.Shipments().FindByID(ctx, shipment.ID)
	assert.ErrorIs(t, err, repository.ErrShipmentNotFound)
	assert.Empty(t, f.ledger(t, shipment.ID))
	assert.Equal(t, service.EventShipmentDeleted, f.events.last().Type)

	assert.ErrorIs(t, f.svc.Delete(ctx, f.admin, shipment.ID), domainerrors.ErrShipmentNotFound)
}

func TestShipmentService_MarkPaid(t *testing.T) {
	ctx := context.Background()
	f := newShipmentFixture(t)
	shipment := f.create(t)

	_, err := f.svc.MarkPaid(ctx, f.other, &usecase.MarkPaidInput{ShipmentID: shipment.ID, PaymentMethod: "card"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	paid, err := f.svc.MarkPaid(ctx, f.sender, &usecase.MarkPaidInput{ShipmentID: shipment.ID, PaymentMethod: " card "})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, paid.PaymentStatus)
	assert.Equal(t, "card", paid.PaymentMethod)
	assert.Equal(t, entity.StatusCreated, paid.Status)
	assert.Len(t, f.ledger(t, shipment.ID), 1)

	_, err = f.svc.MarkPaid(ctx, f.sender, &usecase.MarkPaidInput{ShipmentID: shipment.ID, PaymentMethod: "card"})
	assert.ErrorIs(t, err, domainerrors.ErrIllegalTransition)

	cancelled := f.create(t)
	_, err = f.transition(cancelled.ID, f.sender, entity.StatusCancelled)
	require.NoError(t, err)
	_, err = f.svc.MarkPaid(ctx, f.sender, &usecase.MarkPaidInput{ShipmentID: cancelled.ID, PaymentMethod: "card"})
	assert.ErrorIs(t, err, domainerrors.ErrIllegalTransition)
}

func TestShipmentService_PublishFailureDoesNotFailOperation(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	country := &entity.Country{Name: "Japan", Code: "JP", CurrencyCode: "JPY", Multiplier: 1.5, IsActive: true}
	require.NoError(t, store.Countries().Create(ctx, country))
	box := &entity.BoxType{Name: "Small", Length: 1, Width: 1, Height: 1, Weight: 1, BasePrice: 10, IsActive: true}
	require.NoError(t, store.BoxTypes().Create(ctx, box))

	trackingNumbers := mockService.NewMockTrackingNumberGenerator(t)
	trackingNumbers.EXPECT().Generate().Return("BOX-TEST-1")
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishShipmentEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	metrics := mockService.NewMockMetricsRecorder(t)
	metrics.EXPECT().ShipmentCreated(string(entity.PriorityExpress))
	metrics.EXPECT().EventPublished(service.EventShipmentCreated, mock.Anything)

	svc := NewShipmentService(ShipmentServiceParams{
		TxManager:       store,
		TrackingNumbers: trackingNumbers,
		Publisher:       publisher,
		Metrics:         metrics,
		Logger:          slog.New(slog.DiscardHandler),
	})

	shipment, err := svc.Create(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleRegisteredUser}, &usecase.CreateShipmentInput{
		Receiver:  entity.Receiver{FirstName: "Ada", Email: "ada@example.com", CountryID: country.ID},
		BoxTypeID: box.ID,
		Weight:    1,
		Priority:  entity.PriorityExpress,
	})
	require.NoError(t, err)
	assert.InDelta(t, 15.0, shipment.ShippingCost, 1e-9)
}

func TestAddBusinessDays(t *testing.T) {
	friday := time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.January, 8, 12, 0, 0, 0, time.UTC), addBusinessDays(friday, 1))
	assert.Equal(t, time.Date(2024, time.January, 19, 12, 0, 0, 0, time.UTC), addBusinessDays(friday, 10))
	assert.Equal(t, friday, addBusinessDays(friday, 0))
}

func TestShipmentService_DeliveryDaysWindow(t *testing.T) {
	svc := &shipmentService{minDays: 5, maxDays: 10, intN: func(n int) int { return n - 1 }}
	assert.Equal(t, 10, svc.deliveryDays())

	svc.intN = func(int) int { return 0 }
	assert.Equal(t, 5, svc.deliveryDays())

	svc.maxDays = 3
	assert.Equal(t, 5, svc.deliveryDays())
}
