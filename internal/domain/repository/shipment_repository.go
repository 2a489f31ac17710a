// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"boxtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for shipment persistence.
var (
	// ErrShipmentNotFound is returned when no shipment matches the lookup.
	ErrShipmentNotFound = errors.New("shipment not found")
	// ErrDuplicateTrackingNumber is returned when a generated tracking number already exists.
	ErrDuplicateTrackingNumber = errors.New("tracking number already exists")
	// ErrStatusConflict is returned when a conditional status update matched no row
	// because the stored status no longer equals the expected one.
	ErrStatusConflict = errors.New("shipment status changed concurrently")
)

// ShipmentQuery narrows a shipment listing. Zero values mean "no constraint".
type ShipmentQuery struct {
	SenderID        *uuid.UUID
	Statuses        []entity.ShipmentStatus
	ExcludeStatuses []entity.ShipmentStatus
	Priority        *entity.Priority
	Search          string // Case-insensitive substring of tracking number or receiver email.
	Offset          int
	Limit           int
}

// StatusCount is the number of shipments in one status.
type StatusCount struct {
	Status entity.ShipmentStatus
	Count  int64
}

// ReferenceUsage counts shipments per referenced country or box type.
type ReferenceUsage struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Count int64     `json:"count"`
}

// RevenueSummary aggregates settled shipping costs.
type RevenueSummary struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// CreatedRange selects shipments created in [From, To). A nil end is unbounded.
type CreatedRange struct {
	From *time.Time
	To   *time.Time
}

// PriorityCount is the number of shipments booked at one priority.
type PriorityCount struct {
	Priority entity.Priority `json:"priority"`
	Count    int64           `json:"count"`
}

// DestinationRevenue counts shipments per destination country and totals their cost.
type DestinationRevenue struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Count   int64     `json:"count"`
	Revenue float64   `json:"revenue"`
}

// DeliveryTimeSummary measures creation-to-delivery time of completed shipments, in days.
type DeliveryTimeSummary struct {
	AverageDays float64 `json:"average_days"`
	MinDays     float64 `json:"min_days"`
	MaxDays     float64 `json:"max_days"`
	Count       int64   `json:"count"`
}

// ShipmentRepository defines persistence for shipments.
type ShipmentRepository interface {
	// Create inserts a shipment. Returns ErrDuplicateTrackingNumber on a tracking number collision.
	Create(ctx context.Context, shipment *entity.Shipment) error

	// FindByID returns ErrShipmentNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shipment, error)

	// FindByTrackingNumber returns ErrShipmentNotFound when absent.
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*entity.Shipment, error)

	// UpdateStatus writes shipment's status, actual delivery date and updated time
	// only if the stored status still equals expected. Returns ErrStatusConflict otherwise.
	UpdateStatus(ctx context.Context, shipment *entity.Shipment, expected entity.ShipmentStatus) error

	// UpdatePayment records payment status and method.
	UpdatePayment(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, method string) error

	// Delete removes the shipment. Returns ErrShipmentNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of matches, newest first, and the total match count.
	List(ctx context.Context, query ShipmentQuery) ([]*entity.Shipment, int64, error)

	// CountByStatus groups shipments by status, optionally for one sender.
	CountByStatus(ctx context.Context, senderID *uuid.UUID) ([]StatusCount, error)

	// SumPaid aggregates costs of paid shipments, optionally for one sender.
	SumPaid(ctx context.Context, senderID *uuid.UUID) (*RevenueSummary, error)

	// TopDestinations returns the most shipped-to countries.
	TopDestinations(ctx context.Context, limit int) ([]ReferenceUsage, error)

	// TopBoxTypes returns the most used box types.
	TopBoxTypes(ctx context.Context, limit int) ([]ReferenceUsage, error)

	// CountByCountry counts shipments addressed to a country.
	CountByCountry(ctx context.Context, countryID uuid.UUID) (int64, error)

	// CountByBoxType counts shipments using a box type.
	CountByBoxType(ctx context.Context, boxTypeID uuid.UUID) (int64, error)

	// CountByPriority groups shipments created in rng by priority.
	CountByPriority(ctx context.Context, rng CreatedRange) ([]PriorityCount, error)

	// RevenueByDestination groups shipments created in rng by destination country,
	// busiest first.
	RevenueByDestination(ctx context.Context, rng CreatedRange) ([]DestinationRevenue, error)

	// DeliveryTimes summarises completed shipments created in rng that have an actual delivery date.
	DeliveryTimes(ctx context.Context, rng CreatedRange) (*DeliveryTimeSummary, error)

	// FindOverdue returns non-terminal shipments whose estimated delivery falls in (from, to].
	FindOverdue(ctx context.Context, from, to time.Time) ([]*entity.Shipment, error)
}
