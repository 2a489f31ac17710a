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

// boxTypeRepository implements the repository.BoxTypeRepository interface.
type boxTypeRepository struct {
	db *gorm.DB
}

// NewBoxTypeRepository is the constructor for boxTypeRepository.
func NewBoxTypeRepository(db *gorm.DB) repository.BoxTypeRepository {
	return &boxTypeRepository{db: db}
}

func (repo *boxTypeRepository) Create(ctx context.Context, box *entity.BoxType) error {
	boxM := fromBoxTypeDomain(box)

	if err := repo.db.WithContext(ctx).Create(boxM).Error; err != nil {
		return mapBoxTypeError(err, "failed to create box type")
	}

	box.ID = boxM.ID
	box.CreatedAt = boxM.CreatedAt
	box.UpdatedAt = boxM.UpdatedAt

	return nil
}

func (repo *boxTypeRepository) Update(ctx context.Context, box *entity.BoxType) error {
	boxM := fromBoxTypeDomain(box)

	result := repo.db.WithContext(ctx).Omit("CreatedAt").Save(boxM)
	if result.Error != nil {
		return mapBoxTypeError(result.Error, "failed to update box type")
	}

	box.UpdatedAt = boxM.UpdatedAt

	return nil
}

func (repo *boxTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BoxTypeModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrReferenced
		}

		return errors.Wrap(result.Error, "failed to delete box type")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBoxTypeNotFound
	}

	return nil
}

func (repo *boxTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BoxType, error) {
	var boxM model.BoxTypeModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&boxM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBoxTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find box type")
	}

	return toBoxTypeDomain(&boxM), nil
}

func (repo *boxTypeRepository) List(ctx context.Context, activeOnly bool) ([]*entity.BoxType, error) {
	var boxModels []*model.BoxTypeModel

	db := repo.db.WithContext(ctx)
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}
	if err := db.Order("base_price ASC, name ASC").Find(&boxModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list box types")
	}

	boxTypes := make([]*entity.BoxType, 0, len(boxModels))
	for _, boxM := range boxModels {
		boxTypes = append(boxTypes, toBoxTypeDomain(boxM))
	}

	return boxTypes, nil
}

func (repo *boxTypeRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.BoxTypeModel{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active box types")
	}

	return count, nil
}

func mapBoxTypeError(err error, message string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateBoxType
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("box type violates a column constraint")
	default:
		return domainerrors.NewDatabaseExecuteError(err, message)
	}
}

func toBoxTypeDomain(data *model.BoxTypeModel) *entity.BoxType {
	return &entity.BoxType{
		ID:          data.ID,
		Name:        data.Name,
		Length:      data.Length,
		Width:       data.Width,
		Height:      data.Height,
		Weight:      data.Weight,
		BasePrice:   data.BasePrice,
		Color:       data.Color,
		Description: data.Description,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBoxTypeDomain(data *entity.BoxType) *model.BoxTypeModel {
	return &model.BoxTypeModel{
		ID:          data.ID,
		Name:        data.Name,
		Length:      data.Length,
		Width:       data.Width,
		Height:      data.Height,
		Weight:      data.Weight,
		BasePrice:   data.BasePrice,
		Color:       data.Color,
		Description: data.Description,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
