package impl

import (
	"context"
	"log/slog"

	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/domain/policy"
	"boxtrack/internal/domain/repository"
	"boxtrack/internal/errors"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	topDestinationsLimit = 10
	topBoxTypesLimit     = 5
)

type dashboardService struct {
	shipmentRepo repository.ShipmentRepository
	userRepo     repository.UserRepository
	countryRepo  repository.CountryRepository
	boxTypeRepo  repository.BoxTypeRepository
	logger       *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	ShipmentRepo repository.ShipmentRepository
	UserRepo     repository.UserRepository
	CountryRepo  repository.CountryRepository
	BoxTypeRepo  repository.BoxTypeRepository
	Logger       *slog.Logger
}

func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		shipmentRepo: params.ShipmentRepo,
		userRepo:     params.UserRepo,
		countryRepo:  params.CountryRepo,
		boxTypeRepo:  params.BoxTypeRepo,
		logger:       params.Logger,
	}
}

func (srv *dashboardService) UserDashboard(ctx context.Context, actor entity.Actor) (*usecase.UserDashboard, error) {
	if actor.IsAnonymous() {
		return nil, domainerrors.ErrForbidden.WithDetails("authentication required")
	}

	senderID := actor.ID
	counts, total, err := srv.statusCounts(ctx, &senderID)
	if err != nil {
		return nil, err
	}

	revenue, err := srv.shipmentRepo.SumPaid(ctx, &senderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum paid shipments")
	}

	recent, _, err := srv.shipmentRepo.List(ctx, repository.ShipmentQuery{
		SenderID: &senderID,
		Limit:    usecase.RecentShipmentsLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent shipments")
	}

	return &usecase.UserDashboard{
		StatusCounts:    counts,
		TotalShipments:  total,
		TotalSpent:      revenue.Total,
		RecentShipments: recent,
	}, nil
}

func (srv *dashboardService) AdminDashboard(ctx context.Context, actor entity.Actor) (*usecase.AdminDashboard, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	counts, total, err := srv.statusCounts(ctx, nil)
	if err != nil {
		return nil, err
	}

	revenue, err := srv.shipmentRepo.SumPaid(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	destinations, err := srv.shipmentRepo.TopDestinations(ctx, topDestinationsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank destinations")
	}

	boxTypes, err := srv.shipmentRepo.TopBoxTypes(ctx, topBoxTypesLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank box types")
	}

	activeUsers, err := srv.userRepo.CountActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active users")
	}
	activeCountries, err := srv.countryRepo.CountActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active countries")
	}
	activeBoxTypes, err := srv.boxTypeRepo.CountActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active box types")
	}

	return &usecase.AdminDashboard{
		StatusCounts:    counts,
		TotalShipments:  total,
		Revenue:         *revenue,
		TopDestinations: destinations,
		TopBoxTypes:     boxTypes,
		ActiveUsers:     activeUsers,
		ActiveCountries: activeCountries,
		ActiveBoxTypes:  activeBoxTypes,
	}, nil
}

// Analytics is the administrator's breakdown of shipments created in the filter's range.
func (srv *dashboardService) Analytics(ctx context.Context, actor entity.Actor, filter usecase.AnalyticsFilter) (*usecase.Analytics, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("start date must be before end date")
	}

	rng := repository.CreatedRange{From: filter.From, To: filter.To}

	rows, err := srv.shipmentRepo.CountByPriority(ctx, rng)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count shipments by priority")
	}
	priorities := make(map[entity.Priority]int64, len(entity.AllPriorities))
	for _, priority := range entity.AllPriorities {
		priorities[priority] = 0
	}
	for _, row := range rows {
		priorities[row.Priority] = row.Count
	}

	destinations, err := srv.shipmentRepo.RevenueByDestination(ctx, rng)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue by destination")
	}

	deliveryTime, err := srv.shipmentRepo.DeliveryTimes(ctx, rng)
	if err != nil {
		return nil, errors.Wrap(err, "failed to measure delivery times")
	}

	return &usecase.Analytics{
		PriorityCounts: priorities,
		Destinations:   destinations,
		DeliveryTime:   *deliveryTime,
	}, nil
}

// statusCounts reports every status, including those with no shipments.
func (srv *dashboardService) statusCounts(ctx context.Context, senderID *uuid.UUID) (map[entity.ShipmentStatus]int64, int64, error) {
	rows, err := srv.shipmentRepo.CountByStatus(ctx, senderID)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count shipments by status")
	}

	counts := make(map[entity.ShipmentStatus]int64, len(entity.AllShipmentStatuses))
	for _, status := range entity.AllShipmentStatuses {
		counts[status] = 0
	}

	var total int64
	for _, row := range rows {
		counts[row.Status] = row.Count
		total += row.Count
	}

	return counts, total, nil
}
