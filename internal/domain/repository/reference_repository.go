package repository

import (
	"context"

	"boxtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for reference data persistence.
var (
	ErrCountryNotFound  = errors.New("country not found")
	ErrBoxTypeNotFound  = errors.New("box type not found")
	ErrDuplicateCountry = errors.New("country code or name already exists")
	ErrDuplicateBoxType = errors.New("box type name already exists")
	// ErrReferenced is returned when a delete is blocked by a foreign key from shipments.
	ErrReferenced = errors.New("record is referenced by shipments")
)

// CountryRepository defines persistence for destination countries.
type CountryRepository interface {
	Create(ctx context.Context, country *entity.Country) error
	Update(ctx context.Context, country *entity.Country) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID returns ErrCountryNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Country, error)

	// List returns countries ordered by name; activeOnly filters inactive rows out.
	List(ctx context.Context, activeOnly bool) ([]*entity.Country, error)

	CountActive(ctx context.Context) (int64, error)
}

// BoxTypeRepository defines persistence for box types.
type BoxTypeRepository interface {
	Create(ctx context.Context, box *entity.BoxType) error
	Update(ctx context.Context, box *entity.BoxType) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID returns ErrBoxTypeNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BoxType, error)

	// List returns box types ordered by base price; activeOnly filters inactive rows out.
	List(ctx context.Context, activeOnly bool) ([]*entity.BoxType, error)

	CountActive(ctx context.Context) (int64, error)
}
