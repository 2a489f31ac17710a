package impl

import (
	"context"
	"log/slog"
	"testing"

	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/infra/persistence/memory"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogue(store *memory.Store) (usecase.CountryUsecase, usecase.BoxTypeUsecase) {
	logger := slog.New(slog.DiscardHandler)
	countries := NewCountryService(CountryServiceParams{TxManager: store, CountryRepo: store.Countries(), Logger: logger})
	boxes := NewBoxTypeService(BoxTypeServiceParams{
		TxManager:   store,
		BoxTypeRepo: store.BoxTypes(),
		CountryRepo: store.Countries(),
		Logger:      logger,
	})

	return countries, boxes
}

func canadaInput() *usecase.CountryInput {
	return &usecase.CountryInput{
		Name:         " Canada ",
		Code:         "ca",
		CurrencyCode: "cad",
		Multiplier:   2.0,
		Continent:    entity.ContinentNorthAmerica,
		ShippingZone: entity.ShippingZone1,
	}
}

func mediumBoxInput() *usecase.BoxTypeInput {
	return &usecase.BoxTypeInput{
		Name: "Medium", Length: 40, Width: 30, Height: 20, Weight: 5, BasePrice: 49, Color: "#A0522D",
	}
}

var adminActor = entity.Actor{ID: uuid.MustParse("00000000-0000-0000-0000-0000000000ad"), Role: entity.RoleAdministrator}

func TestCountryService_CRUD(t *testing.T) {
	ctx := context.Background()
	countries, _ := newCatalogue(memory.NewStore())

	country, err := countries.Create(ctx, adminActor, canadaInput())
	require.NoError(t, err)
	assert.Equal(t, "Canada", country.Name)
	assert.Equal(t, "CA", country.Code)
	assert.Equal(t, "CAD", country.CurrencyCode)
	assert.True(t, country.IsActive)

	_, err = countries.Create(ctx, adminActor, canadaInput())
	assert.ErrorIs(t, err, domainerrors.ErrCountryAlreadyExists)

	input := canadaInput()
	input.Multiplier = 2.5
	updated, err := countries.Update(ctx, adminActor, country.ID, input)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, updated.Multiplier, 1e-9)
	assert.True(t, updated.IsActive)

	toggled, err := countries.ToggleActive(ctx, adminActor, country.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	active, err := countries.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)
	all, err := countries.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, countries.Delete(ctx, adminActor, country.ID))
	_, err = countries.Get(ctx, country.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCountryNotFound)
}

func TestCountryService_Validation(t *testing.T) {
	ctx := context.Background()
	countries, _ := newCatalogue(memory.NewStore())

	tests := []struct {
		name   string
		mutate func(*usecase.CountryInput)
	}{
		{name: "empty name", mutate: func(in *usecase.CountryInput) { in.Name = " " }},
		{name: "three letter code", mutate: func(in *usecase.CountryInput) { in.Code = "CAN" }},
		{name: "numeric currency", mutate: func(in *usecase.CountryInput) { in.CurrencyCode = "124" }},
		{name: "negative multiplier", mutate: func(in *usecase.CountryInput) { in.Multiplier = -1 }},
		{name: "unknown continent", mutate: func(in *usecase.CountryInput) { in.Continent = "Atlantis" }},
		{name: "unknown zone", mutate: func(in *usecase.CountryInput) { in.ShippingZone = "zone9" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := canadaInput()
			tt.mutate(input)
			_, err := countries.Create(ctx, adminActor, input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCatalogue_RequiresAdministrator(t *testing.T) {
	ctx := context.Background()
	countries, boxes := newCatalogue(memory.NewStore())
	customer := entity.Actor{ID: uuid.New(), Role: entity.RoleRegisteredUser}

	_, err := countries.Create(ctx, customer, canadaInput())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	_, err = boxes.Create(ctx, entity.AnonymousActor(), mediumBoxInput())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.ErrorIs(t, countries.Delete(ctx, customer, uuid.New()), domainerrors.ErrForbidden)
	_, err = boxes.ToggleActive(ctx, customer, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBoxTypeService_CRUDAndQuote(t *testing.T) {
	ctx := context.Background()
	countries, boxes := newCatalogue(memory.NewStore())

	country, err := countries.Create(ctx, adminActor, canadaInput())
	require.NoError(t, err)
	box, err := boxes.Create(ctx, adminActor, mediumBoxInput())
	require.NoError(t, err)

	_, err = boxes.Create(ctx, adminActor, mediumBoxInput())
	assert.ErrorIs(t, err, domainerrors.ErrBoxTypeAlreadyExists)

	quote, err := boxes.Quote(ctx, box.ID, country.ID)
	require.NoError(t, err)
	assert.InDelta(t, 98.0, quote.Cost, 1e-9)
	assert.Equal(t, "CAD", quote.Currency)
	assert.Equal(t, "Medium", quote.BoxTypeName)

	_, err = boxes.ToggleActive(ctx, adminActor, box.ID)
	require.NoError(t, err)
	_, err = boxes.Quote(ctx, box.ID, country.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)

	_, err = boxes.Quote(ctx, uuid.New(), country.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)

	inactive := false
	input := mediumBoxInput()
	input.Name = "Large"
	input.BasePrice = 79
	input.IsActive = &inactive
	large, err := boxes.Create(ctx, adminActor, input)
	require.NoError(t, err)
	assert.False(t, large.IsActive)

	listed, err := boxes.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Medium", listed[0].Name)
}

func TestBoxTypeService_Validation(t *testing.T) {
	ctx := context.Background()
	_, boxes := newCatalogue(memory.NewStore())

	tests := []struct {
		name   string
		mutate func(*usecase.BoxTypeInput)
	}{
		{name: "empty name", mutate: func(in *usecase.BoxTypeInput) { in.Name = "" }},
		{name: "zero height", mutate: func(in *usecase.BoxTypeInput) { in.Height = 0 }},
		{name: "negative weight", mutate: func(in *usecase.BoxTypeInput) { in.Weight = -2 }},
		{name: "free box", mutate: func(in *usecase.BoxTypeInput) { in.BasePrice = 0 }},
		{name: "bad color", mutate: func(in *usecase.BoxTypeInput) { in.Color = "sienna" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := mediumBoxInput()
			tt.mutate(input)
			_, err := boxes.Create(ctx, adminActor, input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCatalogue_DeleteRefusedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	f := newShipmentFixture(t)
	countries, boxes := newCatalogue(f.store)

	f.create(t)

	assert.ErrorIs(t, countries.Delete(ctx, f.admin, f.country.ID), domainerrors.ErrReferenceInUse)
	assert.ErrorIs(t, boxes.Delete(ctx, f.admin, f.box.ID), domainerrors.ErrReferenceInUse)

	_, err := countries.Get(ctx, f.country.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, boxes.Delete(ctx, f.admin, uuid.New()), domainerrors.ErrBoxTypeNotFound)
}
