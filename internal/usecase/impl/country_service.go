package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	deliverycontext "boxtrack/internal/delivery/context"
	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/domain/policy"
	"boxtrack/internal/domain/repository"
	"boxtrack/internal/errors"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type countryService struct {
	txManager   repository.TransactionManager
	countryRepo repository.CountryRepository
	logger      *slog.Logger
}

// CountryServiceParams holds dependencies for CountryService, injected by Fx.
type CountryServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CountryRepo repository.CountryRepository
	Logger      *slog.Logger
}

func NewCountryService(params CountryServiceParams) usecase.CountryUsecase {
	return &countryService{
		txManager:   params.TxManager,
		countryRepo: params.CountryRepo,
		logger:      params.Logger,
	}
}

func (srv *countryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *countryService) Create(ctx context.Context, actor entity.Actor, input *usecase.CountryInput) (*entity.Country, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	now := time.Now()
	country := &entity.Country{
		ID:        uuid.New(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyCountryInput(country, input)
	if err := validateCountry(country); err != nil {
		return nil, err
	}

	if err := srv.countryRepo.Create(ctx, country); err != nil {
		return nil, mapCountryWriteError(err)
	}

	srv.log(ctx).Info("Country created", slog.Any("countryID", country.ID), slog.String("code", country.Code))

	return country, nil
}

func (srv *countryService) Update(ctx context.Context, actor entity.Actor, id uuid.UUID, input *usecase.CountryInput) (*entity.Country, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var updated *entity.Country
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		country, err := findCountry(ctx, repoFactory.CountryRepo(), id)
		if err != nil {
			return err
		}

		applyCountryInput(country, input)
		country.UpdatedAt = time.Now()
		if err := validateCountry(country); err != nil {
			return err
		}

		if err := repoFactory.CountryRepo().Update(ctx, country); err != nil {
			return mapCountryWriteError(err)
		}
		updated = country

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *countryService) ToggleActive(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Country, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var toggled *entity.Country
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		country, err := findCountry(ctx, repoFactory.CountryRepo(), id)
		if err != nil {
			return err
		}

		country.IsActive = !country.IsActive
		country.UpdatedAt = time.Now()
		if err := repoFactory.CountryRepo().Update(ctx, country); err != nil {
			return mapCountryWriteError(err)
		}
		toggled = country

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Country availability changed", slog.Any("countryID", id), slog.Bool("active", toggled.IsActive))

	return toggled, nil
}

// Delete refuses while any shipment still points at the country.
func (srv *countryService) Delete(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	if err := policy.RequireAdmin(actor); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findCountry(ctx, repoFactory.CountryRepo(), id); err != nil {
			return err
		}

		inUse, err := repoFactory.ShipmentRepo().CountByCountry(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count shipments for country")
		}
		if inUse > 0 {
			return domainerrors.ErrReferenceInUse.WithDetails(fmt.Sprintf("country is used by %d shipments", inUse))
		}

		if err := repoFactory.CountryRepo().Delete(ctx, id); err != nil {
			return mapCountryWriteError(err)
		}

		return nil
	})
}

func (srv *countryService) Get(ctx context.Context, id uuid.UUID) (*entity.Country, error) {
	return findCountry(ctx, srv.countryRepo, id)
}

func (srv *countryService) List(ctx context.Context, activeOnly bool) ([]*entity.Country, error) {
	countries, err := srv.countryRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	return countries, nil
}

func applyCountryInput(country *entity.Country, input *usecase.CountryInput) {
	country.Name = strings.TrimSpace(input.Name)
	country.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	country.CurrencyCode = strings.ToUpper(strings.TrimSpace(input.CurrencyCode))
	country.Multiplier = input.Multiplier
	country.Continent = input.Continent
	country.ShippingZone = input.ShippingZone
	if input.IsActive != nil {
		country.IsActive = *input.IsActive
	}
}

func validateCountry(country *entity.Country) error {
	switch {
	case country.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("country name is required")
	case len(country.Code) != 2 || !isUpperAlpha(country.Code):
		return domainerrors.ErrValidationFailed.WithDetails("country code must be two letters")
	case len(country.CurrencyCode) != 3 || !isUpperAlpha(country.CurrencyCode):
		return domainerrors.ErrValidationFailed.WithDetails("currency code must be three letters")
	case country.Multiplier < 0:
		return domainerrors.ErrValidationFailed.WithDetails("multiplier must not be negative")
	case !country.Continent.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown continent %q", country.Continent))
	case !country.ShippingZone.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown shipping zone %q", country.ShippingZone))
	default:
		return nil
	}
}

func isUpperAlpha(value string) bool {
	for _, r := range value {
		if !unicode.IsUpper(r) || !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}

func findCountry(ctx context.Context, repo repository.CountryRepository, id uuid.UUID) (*entity.Country, error) {
	country, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCountryNotFound) {
			return nil, domainerrors.ErrCountryNotFound
		}

		return nil, errors.Wrap(err, "failed to load country")
	}

	return country, nil
}

func mapCountryWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateCountry):
		return domainerrors.ErrCountryAlreadyExists
	case errors.Is(err, repository.ErrCountryNotFound):
		return domainerrors.ErrCountryNotFound
	case errors.Is(err, repository.ErrReferenced):
		return domainerrors.ErrReferenceInUse
	default:
		return errors.Wrap(err, "failed to write country")
	}
}
