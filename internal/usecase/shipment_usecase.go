// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"math"
	"time"

	"boxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	// DefaultPage is used when the caller does not ask for a page.
	DefaultPage = 1
	// DefaultPageSize is used when the caller does not ask for a page size.
	DefaultPageSize = 10
	// MaxPageSize caps the page size a caller may request.
	MaxPageSize = 100
	// MaxPage keeps Offset within int for any page size up to MaxPageSize.
	MaxPage = math.MaxInt / MaxPageSize
	// RecentShipmentsLimit is how many shipments a user dashboard lists.
	RecentShipmentsLimit = 5
)

// --- Input DTOs ---

// CreateShipmentInput defines the data required to book a shipment.
type CreateShipmentInput struct {
	Receiver       entity.Receiver
	BoxTypeID      uuid.UUID
	Weight         float64
	Contents       string
	Priority       entity.Priority
	IsFragile      bool
	IsInsured      bool
	InsuranceValue float64
	Notes          string
}

// TransitionInput asks for a shipment to move to a new status.
// Location and Description are optional; defaults are recorded in the ledger.
type TransitionInput struct {
	ShipmentID  uuid.UUID
	Status      entity.ShipmentStatus
	Location    string
	Description string
}

// MarkPaidInput records a payment against a shipment.
type MarkPaidInput struct {
	ShipmentID    uuid.UUID
	PaymentMethod string
}

// ShipmentFilter narrows a directory listing.
type ShipmentFilter struct {
	Status   *entity.ShipmentStatus
	Priority *entity.Priority
	Search   string
	// SenderID is honoured for administrators only.
	SenderID *uuid.UUID
	// IncludeClosed keeps terminal shipments in an administrator listing
	// even when no status filter is given.
	IncludeClosed bool
}

// PageRequest is a 1-based page selector.
type PageRequest struct {
	Page     int
	PageSize int
}

// Normalize applies the default and maximum page sizes.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}

	return p
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// --- Output DTOs ---

// ShipmentPage is one page of a directory listing.
type ShipmentPage struct {
	Items      []*entity.Shipment
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// ShipmentLabel carries a printable QR code for a shipment.
type ShipmentLabel struct {
	Shipment *entity.Shipment
	PNG      []byte
}

// ShipmentUsecase drives the shipment lifecycle. Every mutation records a
// ledger entry in the same transaction and emits an event after commit.
type ShipmentUsecase interface {
	Create(ctx context.Context, actor entity.Actor, input *CreateShipmentInput) (*entity.Shipment, error)
	Transition(ctx context.Context, actor entity.Actor, input *TransitionInput) (*entity.Shipment, error)
	Delete(ctx context.Context, actor entity.Actor, shipmentID uuid.UUID) error
	MarkPaid(ctx context.Context, actor entity.Actor, input *MarkPaidInput) (*entity.Shipment, error)
}

// ShipmentDirectoryUsecase answers read-side questions about shipments,
// scoped to what the actor may see.
type ShipmentDirectoryUsecase interface {
	Get(ctx context.Context, actor entity.Actor, shipmentID uuid.UUID) (*entity.Shipment, error)
	GetByTrackingNumber(ctx context.Context, actor entity.Actor, trackingNumber string) (*entity.Shipment, error)
	History(ctx context.Context, actor entity.Actor, shipmentID uuid.UUID) ([]*entity.TrackingEvent, error)
	List(ctx context.Context, actor entity.Actor, filter ShipmentFilter, page PageRequest) (*ShipmentPage, error)
	Label(ctx context.Context, actor entity.Actor, shipmentID uuid.UUID) (*ShipmentLabel, error)
}

// OverdueSweepUsecase raises events for shipments that missed their estimate.
type OverdueSweepUsecase interface {
	// SweepOverdue publishes an overdue event for every open shipment whose
	// estimated delivery fell inside (now-window, now]. It returns how many
	// events were published.
	SweepOverdue(ctx context.Context, now time.Time, window time.Duration) (int, error)
}
