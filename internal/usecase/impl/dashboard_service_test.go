package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboard(f *shipmentFixture) usecase.DashboardUsecase {
	return NewDashboardService(DashboardServiceParams{
		ShipmentRepo: f.store.Shipments(),
		UserRepo:     f.store.Users(),
		CountryRepo:  f.store.Countries(),
		BoxTypeRepo:  f.store.BoxTypes(),
		Logger:       slog.New(slog.DiscardHandler),
	})
}

func TestDashboardService_UserDashboard(t *testing.T) {
	ctx := context.Background()
	f := newShipmentFixture(t)
	dashboard := newDashboard(f)

	paid := f.create(t)
	_, err := f.svc.MarkPaid(ctx, f.sender, &usecase.MarkPaidInput{ShipmentID: paid.ID, PaymentMethod: "card"})
	require.NoError(t, err)
	cancelled := f.create(t)
	_, err = f.transition(cancelled.ID, f.sender, entity.StatusCancelled)
	require.NoError(t, err)
	f.create(t)

	_, err = f.svc.Create(ctx, f.other, f.createInput())
	require.NoError(t, err)

	summary, err := dashboard.UserDashboard(ctx, f.sender)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalShipments)
	assert.Equal(t, int64(2), summary.StatusCounts[entity.StatusCreated])
	assert.Equal(t, int64(1), summary.StatusCounts[entity.StatusCancelled])
	assert.Equal(t, int64(0), summary.StatusCounts[entity.StatusInTransit])
	assert.Len(t, summary.StatusCounts, len(entity.AllShipmentStatuses))
	assert.InDelta(t, 98.0, summary.TotalSpent, 1e-9)
	assert.Len(t, summary.RecentShipments, 3)
	for _, shipment := range summary.RecentShipments {
		assert.Equal(t, f.sender.ID, shipment.SenderID)
	}

	_, err = dashboard.UserDashboard(ctx, entity.AnonymousActor())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDashboardService_AdminDashboard(t *testing.T) {
	ctx := context.Background()
	f := newShipmentFixture(t)
	dashboard := newDashboard(f)

	second := &entity.Country{Name: "Mexico", Code: "MX", CurrencyCode: "MXN", Multiplier: 1.5, IsActive: false}
	require.NoError(t, f.store.Countries().Create(ctx, second))
	require.NoError(t, f.store.Users().Create(ctx, &entity.User{
		FirstName: "Ada", Email: "ada@example.com", PasswordHash: "x", Role: entity.RoleRegisteredUser, IsActive: true,
	}))
	require.NoError(t, f.store.Users().Create(ctx, &entity.User{
		FirstName: "Bob", Email: "bob@example.com", PasswordHash: "x", Role: entity.RoleRegisteredUser, IsActive: false,
	}))

	for range 2 {
		shipment := f.create(t)
		_, err := f.svc.MarkPaid(ctx, f.admin, &usecase.MarkPaidInput{ShipmentID: shipment.ID, PaymentMethod: "cash"})
		require.NoError(t, err)
	}

	summary, err := dashboard.AdminDashboard(ctx, f.admin)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalShipments)
	assert.Equal(t, int64(2), summary.StatusCounts[entity.StatusCreated])
	assert.InDelta(t, 196.0, summary.Revenue.Total, 1e-9)
	assert.InDelta(t, 98.0, summary.Revenue.Average, 1e-9)
	assert.Equal(t, int64(2), summary.Revenue.Count)
	require.Len(t, summary.TopDestinations, 1)
	assert.Equal(t, "Canada", summary.TopDestinations[0].Name)
	assert.Equal(t, int64(2), summary.TopDestinations[0].Count)
	require.Len(t, summary.TopBoxTypes, 1)
	assert.Equal(t, "Medium", summary.TopBoxTypes[0].Name)
	assert.Equal(t, int64(1), summary.ActiveUsers)
	assert.Equal(t, int64(1), summary.ActiveCountries)
	assert.Equal(t, int64(1), summary.ActiveBoxTypes)

	_, err = dashboard.AdminDashboard(ctx, f.sender)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDashboardService_Analytics(t *testing.T) {
	ctx := context.Background()
	f := newShipmentFixture(t)
	dashboard := newDashboard(f)

	mexico := &entity.Country{Name: "Mexico", Code: "MX", CurrencyCode: "MXN", Multiplier: 1.5, IsActive: true}
	require.NoError(t, f.store.Countries().Create(ctx, mexico))

	slow := f.create(t)
	fast := f.create(t)
	express := f.createInput()
	express.Priority = entity.PriorityExpress
	_, err := f.svc.Create(ctx, f.sender, express)
	require.NoError(t, err)
	abroad := f.createInput()
	abroad.Receiver.CountryID = mexico.ID
	_, err = f.svc.Create(ctx, f.other, abroad)
	require.NoError(t, err)

	f.svc.now = func() time.Time { return fixedNow.Add(72 * time.Hour) }
	_, err = f.transition(slow.ID, f.admin, entity.StatusCompleted)
	require.NoError(t, err)
	f.svc.now = func() time.Time { return fixedNow.Add(24 * time.Hour) }
	_, err = f.transition(fast.ID, f.admin, entity.StatusCompleted)
	require.NoError(t, err)

	analytics, err := dashboard.Analytics(ctx, f.admin, usecase.AnalyticsFilter{})
	require.NoError(t, err)
	assert.Equal(t, map[entity.Priority]int64{
		entity.PriorityNormal:  3,
		entity.PriorityExpress: 1,
		entity.PriorityUrgent:  0,
	}, analytics.PriorityCounts)

	require.Len(t, analytics.Destinations, 2)
	assert.Equal(t, "Canada", analytics.Destinations[0].Name)
	assert.Equal(t, int64(3), analytics.Destinations[0].Count)
	assert.InDelta(t, 294.0, analytics.Destinations[0].Revenue, 1e-9)
	assert.Equal(t, "Mexico", analytics.Destinations[1].Name)
	assert.InDelta(t, 73.5, analytics.Destinations[1].Revenue, 1e-9)

	assert.Equal(t, int64(2), analytics.DeliveryTime.Count)
	assert.InDelta(t, 2.0, analytics.DeliveryTime.AverageDays, 1e-9)
	assert.InDelta(t, 1.0, analytics.DeliveryTime.MinDays, 1e-9)
	assert.InDelta(t, 3.0, analytics.DeliveryTime.MaxDays, 1e-9)

	later := fixedNow.Add(time.Hour)
	empty, err := dashboard.Analytics(ctx, f.admin, usecase.AnalyticsFilter{From: &later})
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.PriorityCounts[entity.PriorityNormal])
	assert.Len(t, empty.PriorityCounts, len(entity.AllPriorities))
	assert.Empty(t, empty.Destinations)
	assert.Zero(t, empty.DeliveryTime.Count)

	_, err = dashboard.Analytics(ctx, f.admin, usecase.AnalyticsFilter{From: &later, To: &later})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = dashboard.Analytics(ctx, f.sender, usecase.AnalyticsFilter{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
