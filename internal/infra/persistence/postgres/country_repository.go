package postgres

import (
	"context"

	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/domain/repository"
	"boxtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// countryRepository implements the repository.CountryRepository interface.
type countryRepository struct {
	db *gorm.DB
}

// NewCountryRepository is the constructor for countryRepository.
func NewCountryRepository(db *gorm.DB) repository.CountryRepository {
	return &countryRepository{db: db}
}

func (repo *countryRepository) Create(ctx context.Context, country *entity.Country) error {
	countryM := fromCountryDomain(country)

	if err := repo.db.WithContext(ctx).Create(countryM).Error; err != nil {
		return mapCountryError(err, "failed to create country")
	}

	country.ID = countryM.ID
	country.CreatedAt = countryM.CreatedAt
	country.UpdatedAt = countryM.UpdatedAt

	return nil
}

func (repo *countryRepository) Update(ctx context.Context, country *entity.Country) error {
	countryM := fromCountryDomain(country)

	result := repo.db.WithContext(ctx).Omit("CreatedAt").Save(countryM)
	if result.Error != nil {
		return mapCountryError(result.Error, "failed to update country")
	}

	country.UpdatedAt = countryM.UpdatedAt

	return nil
}

func (repo *countryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CountryModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrReferenced
		}

		return errors.Wrap(result.Error, "failed to delete country")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCountryNotFound
	}

	return nil
}

func (repo *countryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Country, error) {
	var countryM model.CountryModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&countryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCountryNotFound
		}

		return nil, errors.Wrap(err, "failed to find country")
	}

	return toCountryDomain(&countryM), nil
}

func (repo *countryRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Country, error) {
	var countryModels []*model.CountryModel

	db := repo.db.WithContext(ctx)
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}
	if err := db.Order("name ASC").Find(&countryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	countries := make([]*entity.Country, 0, len(countryModels))
	for _, countryM := range countryModels {
		countries = append(countries, toCountryDomain(countryM))
	}

	return countries, nil
}

func (repo *countryRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CountryModel{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active countries")
	}

	return count, nil
}

func mapCountryError(err error, message string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateCountry
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("country violates a column constraint")
	default:
		return domainerrors.NewDatabaseExecuteError(err, message)
	}
}

func toCountryDomain(data *model.CountryModel) *entity.Country {
	return &entity.Country{
		ID:           data.ID,
		Name:         data.Name,
		Code:         data.Code,
		CurrencyCode: data.CurrencyCode,
		Multiplier:   data.Multiplier,
		Continent:    entity.Continent(data.Continent),
		ShippingZone: entity.ShippingZone(data.ShippingZone),
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCountryDomain(data *entity.Country) *model.CountryModel {
	return &model.CountryModel{
		ID:           data.ID,
		Name:         data.Name,
		Code:         data.Code,
		CurrencyCode: data.CurrencyCode,
		Multiplier:   data.Multiplier,
		Continent:    string(data.Continent),
		ShippingZone: string(data.ShippingZone),
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
