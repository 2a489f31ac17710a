package memory

import (
	"context"
	"testing"
	"time"

	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReferences(t *testing.T, store *Store) (*entity.Country, *entity.BoxType) {
	t.Helper()
	ctx := context.Background()

	country := &entity.Country{Name: "Canada", Code: "CA", CurrencyCode: "CAD", Multiplier: 2, IsActive: true}
	require.NoError(t, store.Countries().Create(ctx, country))
	box := &entity.BoxType{Name: "Medium", Length: 1, Width: 1, Height: 1, Weight: 1, BasePrice: 49, IsActive: true}
	require.NoError(t, store.BoxTypes().Create(ctx, box))

	return country, box
}

func shipmentFor(country *entity.Country, box *entity.BoxType, tn string, createdAt time.Time) *entity.Shipment {
	return &entity.Shipment{
		TrackingNumber: tn,
		SenderID:       uuid.New(),
		Receiver:       entity.Receiver{Email: "grace@example.com", CountryID: country.ID},
		BoxTypeID:      box.ID,
		Status:         entity.StatusCreated,
		Priority:       entity.PriorityNormal,
		PaymentStatus:  entity.PaymentPending,
		CreatedAt:      createdAt,
	}
}

func TestStore_ExecuteRollsBackOnError(t *testing.T) {
	store := NewStore()
	country, box := seedReferences(t, store)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		require.NoError(t, repos.ShipmentRepo().Create(ctx, shipmentFor(country, box, "BOX-1", time.Now())))

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = store.Shipments().FindByTrackingNumber(ctx, "BOX-1")
	assert.ErrorIs(t, err, repository.ErrShipmentNotFound)
}

func TestStore_ExecuteCommits(t *testing.T) {
	store := NewStore()
	country, box := seedReferences(t, store)
	ctx := context.Background()

	shipment := shipmentFor(country, box, "BOX-1", time.Now())
	err := store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.ShipmentRepo().Create(ctx, shipment); err != nil {
			return err
		}

		return repos.TrackingEventRepo().Append(ctx, &entity.TrackingEvent{ShipmentID: shipment.ID, Status: entity.StatusCreated})
	})
	require.NoError(t, err)

	events, err := store.TrackingEvents().ListByShipment(ctx, shipment.ID)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestStore_ReturnedEntitiesAreCopies(t *testing.T) {
	store := NewStore()
	country, box := seedReferences(t, store)
	ctx := context.Background()

	shipment := shipmentFor(country, box, "BOX-1", time.Now())
	require.NoError(t, store.Shipments().Create(ctx, shipment))

	found, err := store.Shipments().FindByID(ctx, shipment.ID)
	require.NoError(t, err)
	found.Status = entity.StatusCancelled

	again, err := store.Shipments().FindByID(ctx, shipment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCreated, again.Status)
}

func TestStore_ShipmentConstraints(t *testing.T) {
	store := NewStore()
	country, box := seedReferences(t, store)
	ctx := context.Background()
	shipments := store.Shipments()

	shipment := shipmentFor(country, box, "BOX-1", time.Now())
	require.NoError(t, shipments.Create(ctx, shipment))
	assert.ErrorIs(t, shipments.Create(ctx, shipmentFor(country, box, "BOX-1", time.Now())), repository.ErrDuplicateTrackingNumber)

	orphan := shipmentFor(country, box, "BOX-2", time.Now())
	orphan.BoxTypeID = uuid.New()
	assert.ErrorIs(t, shipments.Create(ctx, orphan), domainerrors.ErrInvalidReference)

	moved := *shipment
	moved.ApplyStatus(entity.StatusReceived, time.Now())
	require.NoError(t, shipments.UpdateStatus(ctx, &moved, entity.StatusCreated))
	assert.ErrorIs(t, shipments.UpdateStatus(ctx, &moved, entity.StatusCreated), repository.ErrStatusConflict)

	assert.ErrorIs(t, store.Countries().Delete(ctx, country.ID), repository.ErrReferenced)
	assert.ErrorIs(t, store.BoxTypes().Delete(ctx, box.ID), repository.ErrReferenced)
}

func TestStore_ListOrderingAndPaging(t *testing.T) {
	store := NewStore()
	country, box := seedReferences(t, store)
	ctx := context.Background()
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	for i, tn := range []string{"BOX-A", "BOX-B", "BOX-C"} {
		require.NoError(t, store.Shipments().Create(ctx, shipmentFor(country, box, tn, base.Add(time.Duration(i)*time.Hour))))
	}

	page, total, err := store.Shipments().List(ctx, repository.ShipmentQuery{Offset: 1, Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "BOX-B", page[0].TrackingNumber)

	page, total, err = store.Shipments().List(ctx, repository.ShipmentQuery{Search: "box-c"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "BOX-C", page[0].TrackingNumber)

	page, _, err = store.Shipments().List(ctx, repository.ShipmentQuery{Offset: 10, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, page)
	page, _, err = store.Shipments().List(ctx, repository.ShipmentQuery{Offset: -5, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "BOX-C", page[0].TrackingNumber)
}

func TestStore_ReferenceUniqueness(t *testing.T) {
	store := NewStore()
	seedReferences(t, store)
	ctx := context.Background()

	assert.ErrorIs(t, store.Countries().Create(ctx, &entity.Country{Name: "Other", Code: "CA"}), repository.ErrDuplicateCountry)
	assert.ErrorIs(t, store.BoxTypes().Create(ctx, &entity.BoxType{Name: "medium"}), repository.ErrDuplicateBoxType)

	active, err := store.Countries().CountActive(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, active)
}

func TestStore_Devices(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	devices := store.Devices()
	userID := uuid.New()

	device := &entity.UserDevice{UserID: userID, DeviceID: "phone", FCMToken: "t1", IsActive: true}
	require.NoError(t, devices.CreateDevice(ctx, device))
	assert.ErrorIs(t, devices.CreateDevice(ctx, &entity.UserDevice{UserID: userID, DeviceID: "phone"}), repository.ErrDuplicateDevice)

	require.NoError(t, devices.DeactivateDevice(ctx, device.ID))
	active, err := devices.FindActiveDevicesByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, devices.UpdateFCMToken(ctx, device.ID, "t2"))
	active, err = devices.FindActiveDevicesByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "t2", active[0].FCMToken)
}

func TestStore_UserDelete(t *testing.T) {
	store := NewStore()
	country, box := seedReferences(t, store)
	ctx := context.Background()

	sender := &entity.User{FirstName: "Ada", Email: "ada@example.com", Role: entity.RoleRegisteredUser, IsActive: true}
	require.NoError(t, store.Users().Create(ctx, sender))
	idle := &entity.User{FirstName: "Bob", Email: "bob@example.com", Role: entity.RoleRegisteredUser, IsActive: true}
	require.NoError(t, store.Users().Create(ctx, idle))
	require.NoError(t, store.Devices().CreateDevice(ctx, &entity.UserDevice{UserID: idle.ID, DeviceID: "phone", IsActive: true}))

	shipment := shipmentFor(country, box, "BOX-1", time.Now())
	shipment.SenderID = sender.ID
	require.NoError(t, store.Shipments().Create(ctx, shipment))

	assert.ErrorIs(t, store.Users().Delete(ctx, sender.ID), repository.ErrUserHasShipments)
	assert.ErrorIs(t, store.Users().Delete(ctx, uuid.New()), repository.ErrUserNotFound)

	require.NoError(t, store.Users().Delete(ctx, idle.ID))
	_, err := store.Users().FindByID(ctx, idle.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	devices, err := store.Devices().FindActiveDevicesByUser(ctx, idle.ID)
	require.NoError(t, err)
	assert.Empty(t, devices)

	_, err = store.Users().FindByID(ctx, sender.ID)
	assert.NoError(t, err)
}
