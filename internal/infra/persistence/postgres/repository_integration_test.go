//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"boxtrack/internal/domain/entity"
	"boxtrack/internal/domain/pricing"
	"boxtrack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "boxtrack",
				"POSTGRES_PASSWORD": "boxtrack",
				"POSTGRES_DB":       "boxtrack",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=boxtrack password=boxtrack dbname=boxtrack sslmode=disable", host, port.Port())
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db))

	return db
}

type fixture struct {
	sender  *entity.User
	country *entity.Country
	box     *entity.BoxType
}

func seedFixture(t *testing.T, ctx context.Context, db *gorm.DB) fixture {
	t.Helper()

	country := &entity.Country{
		Name: "Canada", Code: "CA", CurrencyCode: "CAD", Multiplier: 2.0,
		Continent: entity.ContinentNorthAmerica, ShippingZone: entity.ShippingZone1, IsActive: true,
	}
	require.NoError(t, NewCountryRepository(db).Create(ctx, country))

	box := &entity.BoxType{
		Name: "Medium", Length: 40, Width: 30, Height: 20, Weight: 5, BasePrice: 49, Color: "#3366FF", IsActive: true,
	}
	require.NoError(t, NewBoxTypeRepository(db).Create(ctx, box))

	sender := &entity.User{
		FirstName: "Ada", LastName: "Lovelace", Email: "Ada@Example.com", PasswordHash: "hash",
		Role: entity.RoleRegisteredUser, IsActive: true,
	}
	require.NoError(t, NewUserRepository(db).Create(ctx, sender))

	return fixture{sender: sender, country: country, box: box}
}

func newTestShipment(f fixture, trackingNumber string, eta time.Time) *entity.Shipment {
	now := time.Now().UTC().Truncate(time.Microsecond)

	return &entity.Shipment{
		TrackingNumber: trackingNumber,
		SenderID:       f.sender.ID,
		Receiver: entity.Receiver{
			FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
			Street: "1 Main St", City: "Toronto", CountryID: f.country.ID,
		},
		BoxTypeID:             f.box.ID,
		Weight:                2.5,
		ShippingCost:          98,
		Priority:              entity.PriorityNormal,
		Status:                entity.StatusCreated,
		EstimatedDeliveryDate: eta,
		PaymentStatus:         entity.PaymentPending,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func TestRepositories_Postgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	f := seedFixture(t, ctx, db)

	shipments := NewShipmentRepository(db)
	ledger := NewTrackingEventRepository(db)

	t.Run("user email is normalized", func(t *testing.T) {
		found, err := NewUserRepository(db).FindByEmail(ctx, "ADA@example.com ")
		require.NoError(t, err)
		assert.Equal(t, f.sender.ID, found.ID)
		assert.Equal(t, "ada@example.com", found.Email)

		dup := &entity.User{FirstName: "X", Email: "ada@example.com", PasswordHash: "h", Role: entity.RoleRegisteredUser}
		assert.ErrorIs(t, NewUserRepository(db).Create(ctx, dup), repository.ErrDuplicateEmail)
	})

	t.Run("inactive reference stays inactive", func(t *testing.T) {
		box := &entity.BoxType{Name: "Retired", Length: 1, Width: 1, Height: 1, Weight: 1, BasePrice: 1, IsActive: false}
		require.NoError(t, NewBoxTypeRepository(db).Create(ctx, box))

		found, err := NewBoxTypeRepository(db).FindByID(ctx, box.ID)
		require.NoError(t, err)
		assert.False(t, found.IsActive)
	})

	t.Run("conditional status update", func(t *testing.T) {
		shipment := newTestShipment(f, "BOX-IT-0001", time.Now().Add(48*time.Hour))
		require.NoError(t, shipments.Create(ctx, shipment))

		moved := *shipment
		moved.ApplyStatus(entity.StatusInTransit, time.Now())
		require.NoError(t, shipments.UpdateStatus(ctx, &moved, entity.StatusCreated))

		stale := *shipment
		stale.ApplyStatus(entity.StatusCancelled, time.Now())
		assert.ErrorIs(t, shipments.UpdateStatus(ctx, &stale, entity.StatusCreated), repository.ErrStatusConflict)

		missing := *shipment
		missing.ID = uuid.New()
		assert.ErrorIs(t, shipments.UpdateStatus(ctx, &missing, entity.StatusCreated), repository.ErrShipmentNotFound)

		stored, err := shipments.FindByTrackingNumber(ctx, "BOX-IT-0001")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusInTransit, stored.Status)
	})

	t.Run("duplicate tracking number", func(t *testing.T) {
		shipment := newTestShipment(f, "BOX-IT-0001", time.Now())
		assert.ErrorIs(t, shipments.Create(ctx, shipment), repository.ErrDuplicateTrackingNumber)
	})

	t.Run("ledger is ordered oldest first", func(t *testing.T) {
		shipment := newTestShipment(f, "BOX-IT-0002", time.Now().Add(time.Hour))
		require.NoError(t, shipments.Create(ctx, shipment))

		base := time.Now().UTC().Truncate(time.Microsecond)
		require.NoError(t, ledger.Append(ctx, &entity.TrackingEvent{
			ShipmentID: shipment.ID, Status: entity.StatusReceived, Location: "Hub", Description: "second", Timestamp: base.Add(time.Minute),
		}))
		require.NoError(t, ledger.Append(ctx, &entity.TrackingEvent{
			ShipmentID: shipment.ID, Status: entity.StatusCreated, Location: "Origin", Description: "first", Timestamp: base,
		}))

		events, err := ledger.ListByShipment(ctx, shipment.ID)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "first", events[0].Description)

		latest, err := ledger.Latest(ctx, shipment.ID)
		require.NoError(t, err)
		assert.Equal(t, "second", latest.Description)

		tied := base.Add(2 * time.Minute)
		for _, description := range []string{"third", "fourth"} {
			require.NoError(t, ledger.Append(ctx, &entity.TrackingEvent{
				ShipmentID: shipment.ID, Status: entity.StatusInTransit, Location: "Hub", Description: description, Timestamp: tied,
			}))
		}
		events, err = ledger.ListByShipment(ctx, shipment.ID)
		require.NoError(t, err)
		require.Len(t, events, 4)
		latest, err = ledger.Latest(ctx, shipment.ID)
		require.NoError(t, err)
		assert.Equal(t, events[3].ID, latest.ID)
	})

	t.Run("listing and aggregates", func(t *testing.T) {
		all, total, err := shipments.List(ctx, repository.ShipmentQuery{SenderID: &f.sender.ID, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, all, 2)

		open, total, err := shipments.List(ctx, repository.ShipmentQuery{
			ExcludeStatuses: entity.TerminalStatuses(),
			Search:          "it-0002",
			Limit:           10,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, open, 1)
		assert.Equal(t, "BOX-IT-0002", open[0].TrackingNumber)

		counts, err := shipments.CountByStatus(ctx, nil)
		require.NoError(t, err)
		assert.ElementsMatch(t, []repository.StatusCount{
			{Status: entity.StatusCreated, Count: 1},
			{Status: entity.StatusInTransit, Count: 1},
		}, counts)

		require.NoError(t, shipments.UpdatePayment(ctx, open[0].ID, entity.PaymentPaid, "card"))
		revenue, err := shipments.SumPaid(ctx, nil)
		require.NoError(t, err)
		assert.InDelta(t, 98.0, revenue.Total, 1e-9)
		assert.EqualValues(t, 1, revenue.Count)

		top, err := shipments.TopDestinations(ctx, 5)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, "Canada", top[0].Name)
		assert.EqualValues(t, 2, top[0].Count)

		n, err := shipments.CountByBoxType(ctx, f.box.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)
	})

	t.Run("overdue window", func(t *testing.T) {
		now := time.Now()
		late := newTestShipment(f, "BOX-IT-0003", now.Add(-30*time.Minute))
		require.NoError(t, shipments.Create(ctx, late))

		overdue, err := shipments.FindOverdue(ctx, now.Add(-time.Hour), now)
		require.NoError(t, err)
		require.Len(t, overdue, 1)
		assert.Equal(t, late.ID, overdue[0].ID)
	})

	t.Run("referenced country cannot be deleted", func(t *testing.T) {
		assert.ErrorIs(t, NewCountryRepository(db).Delete(ctx, f.country.ID), repository.ErrReferenced)
	})

	t.Run("delete removes shipment and ledger", func(t *testing.T) {
		shipment, err := shipments.FindByTrackingNumber(ctx, "BOX-IT-0002")
		require.NoError(t, err)

		removed, err := ledger.DeleteByShipment(ctx, shipment.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 4, removed)
		require.NoError(t, shipments.Delete(ctx, shipment.ID))

		_, err = shipments.FindByID(ctx, shipment.ID)
		assert.ErrorIs(t, err, repository.ErrShipmentNotFound)
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		boom := fmt.Errorf("boom")
		err := NewTransactionManager(db).Execute(ctx, func(repos repository.RepositoryFactory) error {
			if err := repos.ShipmentRepo().Create(ctx, newTestShipment(f, "BOX-IT-ROLLBACK", time.Now())); err != nil {
				return err
			}

			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = shipments.FindByTrackingNumber(ctx, "BOX-IT-ROLLBACK")
		assert.ErrorIs(t, err, repository.ErrShipmentNotFound)
	})

	t.Run("devices and notification logs", func(t *testing.T) {
		devices := NewDeviceRepository(db)
		device := &entity.UserDevice{UserID: f.sender.ID, FCMToken: "tok-1", DeviceID: "phone", Platform: "ios", IsActive: true}
		require.NoError(t, devices.CreateDevice(ctx, device))
		assert.ErrorIs(t, devices.CreateDevice(ctx, &entity.UserDevice{
			UserID: f.sender.ID, FCMToken: "tok-2", DeviceID: "phone", Platform: "ios", IsActive: true,
		}), repository.ErrDuplicateDevice)

		require.NoError(t, devices.DeactivateDevice(ctx, device.ID))
		active, err := devices.FindActiveDevicesByUser(ctx, f.sender.ID)
		require.NoError(t, err)
		assert.Empty(t, active)

		require.NoError(t, devices.UpdateFCMToken(ctx, device.ID, "tok-3"))
		active, err = devices.FindActiveDevicesByUser(ctx, f.sender.ID)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "tok-3", active[0].FCMToken)

		notifications := NewNotificationRepository(db)
		eventID := uuid.New()
		require.NoError(t, notifications.BatchCreateNotificationLogs(ctx, []*entity.NotificationLog{{
			EventID: eventID, EventType: "shipment.created", ShipmentID: uuid.New(),
			UserID: f.sender.ID, DeviceID: device.ID, Status: entity.NotificationStatusSent, SentAt: time.Now(),
		}}))
		count, err := notifications.CountByEvent(ctx, eventID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})
}

func TestRepositories_Postgres_CostAndAnalytics(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	f := seedFixture(t, ctx, db)
	shipments := NewShipmentRepository(db)

	country := &entity.Country{
		Name: "Portugal", Code: "PT", CurrencyCode: "EUR", Multiplier: 1.2345,
		Continent: entity.ContinentEurope, ShippingZone: entity.ShippingZone2, IsActive: true,
	}
	require.NoError(t, NewCountryRepository(db).Create(ctx, country))
	box := &entity.BoxType{Name: "Odd", Length: 1, Width: 1, Height: 1, Weight: 1, BasePrice: 49.99, IsActive: true}
	require.NoError(t, NewBoxTypeRepository(db).Create(ctx, box))

	t.Run("cost survives a round trip unrounded", func(t *testing.T) {
		storedBox, err := NewBoxTypeRepository(db).FindByID(ctx, box.ID)
		require.NoError(t, err)
		storedCountry, err := NewCountryRepository(db).FindByID(ctx, country.ID)
		require.NoError(t, err)
		cost, err := pricing.Calculate(storedBox, storedCountry)
		require.NoError(t, err)
		assert.InDelta(t, 61.712655, cost, 1e-9)

		shipment := newTestShipment(f, "BOX-IT-COST", time.Now().Add(time.Hour))
		shipment.BoxTypeID = box.ID
		shipment.Receiver.CountryID = country.ID
		shipment.ShippingCost = cost
		require.NoError(t, shipments.Create(ctx, shipment))

		found, err := shipments.FindByID(ctx, shipment.ID)
		require.NoError(t, err)
		assert.InDelta(t, cost, found.ShippingCost, 1e-9)
	})

	t.Run("analytics", func(t *testing.T) {
		created := time.Now().UTC().Add(-72 * time.Hour).Truncate(time.Microsecond)
		express := newTestShipment(f, "BOX-IT-EXP", time.Now())
		express.Priority = entity.PriorityExpress
		express.CreatedAt = created
		require.NoError(t, shipments.Create(ctx, express))

		delivered := *express
		delivered.ApplyStatus(entity.StatusCompleted, created.Add(48*time.Hour))
		require.NoError(t, shipments.UpdateStatus(ctx, &delivered, entity.StatusCreated))

		counts, err := shipments.CountByPriority(ctx, repository.CreatedRange{})
		require.NoError(t, err)
		assert.ElementsMatch(t, []repository.PriorityCount{
			{Priority: entity.PriorityNormal, Count: 1},
			{Priority: entity.PriorityExpress, Count: 1},
		}, counts)

		destinations, err := shipments.RevenueByDestination(ctx, repository.CreatedRange{})
		require.NoError(t, err)
		require.Len(t, destinations, 2)
		assert.Equal(t, "Canada", destinations[0].Name)
		assert.InDelta(t, 98.0, destinations[0].Revenue, 1e-9)
		assert.Equal(t, "Portugal", destinations[1].Name)
		assert.InDelta(t, 61.712655, destinations[1].Revenue, 1e-9)

		times, err := shipments.DeliveryTimes(ctx, repository.CreatedRange{})
		require.NoError(t, err)
		assert.EqualValues(t, 1, times.Count)
		assert.InDelta(t, 2.0, times.AverageDays, 1e-6)

		from := created.Add(time.Hour)
		times, err = shipments.DeliveryTimes(ctx, repository.CreatedRange{From: &from})
		require.NoError(t, err)
		assert.Zero(t, times.Count)
	})

	t.Run("sender of shipments cannot be deleted", func(t *testing.T) {
		users := NewUserRepository(db)
		assert.ErrorIs(t, users.Delete(ctx, f.sender.ID), repository.ErrUserHasShipments)
		assert.ErrorIs(t, users.Delete(ctx, uuid.New()), repository.ErrUserNotFound)

		idle := &entity.User{FirstName: "Bob", Email: "bob@example.com", PasswordHash: "h", Role: entity.RoleRegisteredUser, IsActive: true}
		require.NoError(t, users.Create(ctx, idle))
		require.NoError(t, users.Delete(ctx, idle.ID))
		_, err := users.FindByID(ctx, idle.ID)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}
