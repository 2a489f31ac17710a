package usecase

import (
	"context"
	"time"

	"boxtrack/internal/domain/entity"
	"boxtrack/internal/domain/repository"
)

// UserDashboard summarises one sender's shipments.
type UserDashboard struct {
	StatusCounts    map[entity.ShipmentStatus]int64 `json:"status_counts"`
	TotalShipments  int64                           `json:"total_shipments"`
	TotalSpent      float64                         `json:"total_spent"`
	RecentShipments []*entity.Shipment              `json:"recent_shipments"`
}

// AdminDashboard summarises the whole system.
type AdminDashboard struct {
	StatusCounts    map[entity.ShipmentStatus]int64 `json:"status_counts"`
	TotalShipments  int64                           `json:"total_shipments"`
	Revenue         repository.RevenueSummary       `json:"revenue"`
	TopDestinations []repository.ReferenceUsage     `json:"top_destinations"`
	TopBoxTypes     []repository.ReferenceUsage     `json:"top_box_types"`
	ActiveUsers     int64                           `json:"active_users"`
	ActiveCountries int64                           `json:"active_countries"`
	ActiveBoxTypes  int64                           `json:"active_box_types"`
}

// AnalyticsFilter restricts analytics to shipments created in [From, To).
type AnalyticsFilter struct {
	From *time.Time
	To   *time.Time
}

// Analytics breaks shipments down by priority and destination and measures delivery time.
type Analytics struct {
	PriorityCounts map[entity.Priority]int64       `json:"priority_counts"`
	Destinations   []repository.DestinationRevenue `json:"destinations"`
	DeliveryTime   repository.DeliveryTimeSummary  `json:"delivery_time"`
}

// DashboardUsecase builds the summary screens.
type DashboardUsecase interface {
	UserDashboard(ctx context.Context, actor entity.Actor) (*UserDashboard, error)
	AdminDashboard(ctx context.Context, actor entity.Actor) (*AdminDashboard, error)
	Analytics(ctx context.Context, actor entity.Actor, filter AnalyticsFilter) (*Analytics, error)
}
