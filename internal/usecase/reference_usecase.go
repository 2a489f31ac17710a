package usecase

import (
	"context"

	"boxtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CountryInput carries the editable fields of a destination country.
// A nil IsActive keeps the current value on update and defaults to true on create.
type CountryInput struct {
	Name         string
	Code         string
	CurrencyCode string
	Multiplier   float64
	Continent    entity.Continent
	ShippingZone entity.ShippingZone
	IsActive     *bool
}

// BoxTypeInput carries the editable fields of a box type.
type BoxTypeInput struct {
	Name        string
	Length      float64
	Width       float64
	Height      float64
	Weight      float64
	BasePrice   float64
	Color       string
	Description string
	IsActive    *bool
}

// CostQuote is the price of sending one box type to one country.
type CostQuote struct {
	BoxTypeID   uuid.UUID
	BoxTypeName string
	CountryID   uuid.UUID
	CountryName string
	Currency    string
	BasePrice   float64
	Multiplier  float64
	Cost        float64
}

// CountryUsecase manages the destination catalogue.
type CountryUsecase interface {
	Create(ctx context.Context, actor entity.Actor, input *CountryInput) (*entity.Country, error)
	Update(ctx context.Context, actor entity.Actor, id uuid.UUID, input *CountryInput) (*entity.Country, error)
	ToggleActive(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Country, error)
	Delete(ctx context.Context, actor entity.Actor, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*entity.Country, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.Country, error)
}

// BoxTypeUsecase manages the box catalogue and quotes shipping costs.
type BoxTypeUsecase interface {
	Create(ctx context.Context, actor entity.Actor, input *BoxTypeInput) (*entity.BoxType, error)
	Update(ctx context.Context, actor entity.Actor, id uuid.UUID, input *BoxTypeInput) (*entity.BoxType, error)
	ToggleActive(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.BoxType, error)
	Delete(ctx context.Context, actor entity.Actor, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*entity.BoxType, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.BoxType, error)
	Quote(ctx context.Context, boxTypeID, countryID uuid.UUID) (*CostQuote, error)
}
