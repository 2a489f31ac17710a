package impl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	deliverycontext "boxtrack/internal/delivery/context"
	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/domain/policy"
	"boxtrack/internal/domain/pricing"
	"boxtrack/internal/domain/repository"
	"boxtrack/internal/errors"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type boxTypeService struct {
	txManager   repository.TransactionManager
	boxTypeRepo repository.BoxTypeRepository
	countryRepo repository.CountryRepository
	logger      *slog.Logger
}

// BoxTypeServiceParams holds dependencies for BoxTypeService, injected by Fx.
type BoxTypeServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	BoxTypeRepo repository.BoxTypeRepository
	CountryRepo repository.CountryRepository
	Logger      *slog.Logger
}

func NewBoxTypeService(params BoxTypeServiceParams) usecase.BoxTypeUsecase {
	return &boxTypeService{
		txManager:   params.TxManager,
		boxTypeRepo: params.BoxTypeRepo,
		countryRepo: params.CountryRepo,
		logger:      params.Logger,
	}
}

func (srv *boxTypeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *boxTypeService) Create(ctx context.Context, actor entity.Actor, input *usecase.BoxTypeInput) (*entity.BoxType, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	now := time.Now()
	box := &entity.BoxType{
		ID:        uuid.New(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyBoxTypeInput(box, input)
	if err := validateBoxType(box); err != nil {
		return nil, err
	}

	if err := srv.boxTypeRepo.Create(ctx, box); err != nil {
		return nil, mapBoxTypeWriteError(err)
	}

	srv.log(ctx).Info("Box type created", slog.Any("boxTypeID", box.ID), slog.String("name", box.Name))

	return box, nil
}

func (srv *boxTypeService) Update(ctx context.Context, actor entity.Actor, id uuid.UUID, input *usecase.BoxTypeInput) (*entity.BoxType, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var updated *entity.BoxType
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		box, err := findBoxType(ctx, repoFactory.BoxTypeRepo(), id)
		if err != nil {
			return err
		}

		applyBoxTypeInput(box, input)
		box.UpdatedAt = time.Now()
		if err := validateBoxType(box); err != nil {
			return err
		}

		if err := repoFactory.BoxTypeRepo().Update(ctx, box); err != nil {
			return mapBoxTypeWriteError(err)
		}
		updated = box

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *boxTypeService) ToggleActive(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.BoxType, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var toggled *entity.BoxType
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		box, err := findBoxType(ctx, repoFactory.BoxTypeRepo(), id)
		if err != nil {
			return err
		}

		box.IsActive = !box.IsActive
		box.UpdatedAt = time.Now()
		if err := repoFactory.BoxTypeRepo().Update(ctx, box); err != nil {
			return mapBoxTypeWriteError(err)
		}
		toggled = box

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Box type availability changed", slog.Any("boxTypeID", id), slog.Bool("active", toggled.IsActive))

	return toggled, nil
}

func (srv *boxTypeService) Delete(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	if err := policy.RequireAdmin(actor); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findBoxType(ctx, repoFactory.BoxTypeRepo(), id); err != nil {
			return err
		}

		inUse, err := repoFactory.ShipmentRepo().CountByBoxType(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count shipments for box type")
		}
		if inUse > 0 {
			return domainerrors.ErrReferenceInUse.WithDetails(fmt.Sprintf("box type is used by %d shipments", inUse))
		}

		if err := repoFactory.BoxTypeRepo().Delete(ctx, id); err != nil {
			return mapBoxTypeWriteError(err)
		}

		return nil
	})
}

func (srv *boxTypeService) Get(ctx context.Context, id uuid.UUID) (*entity.BoxType, error) {
	return findBoxType(ctx, srv.boxTypeRepo, id)
}

func (srv *boxTypeService) List(ctx context.Context, activeOnly bool) ([]*entity.BoxType, error) {
	boxes, err := srv.boxTypeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list box types")
	}

	return boxes, nil
}

// Quote prices a box for a destination using the same rule as shipment creation.
func (srv *boxTypeService) Quote(ctx context.Context, boxTypeID, countryID uuid.UUID) (*usecase.CostQuote, error) {
	box, err := findActiveReference(ctx, srv.boxTypeRepo.FindByID, boxTypeID, repository.ErrBoxTypeNotFound, "box type")
	if err != nil {
		return nil, err
	}
	country, err := findActiveReference(ctx, srv.countryRepo.FindByID, countryID, repository.ErrCountryNotFound, "country")
	if err != nil {
		return nil, err
	}

	cost, err := pricing.CalculateActive(box, country)
	if err != nil {
		return nil, err
	}

	return &usecase.CostQuote{
		BoxTypeID:   box.ID,
		BoxTypeName: box.Name,
		CountryID:   country.ID,
		CountryName: country.Name,
		Currency:    country.CurrencyCode,
		BasePrice:   box.BasePrice,
		Multiplier:  country.Multiplier,
		Cost:        cost,
	}, nil
}

func applyBoxTypeInput(box *entity.BoxType, input *usecase.BoxTypeInput) {
	box.Name = strings.TrimSpace(input.Name)
	box.Length = input.Length
	box.Width = input.Width
	box.Height = input.Height
	box.Weight = input.Weight
	box.BasePrice = input.BasePrice
	box.Color = strings.TrimSpace(input.Color)
	box.Description = strings.TrimSpace(input.Description)
	if input.IsActive != nil {
		box.IsActive = *input.IsActive
	}
}

func validateBoxType(box *entity.BoxType) error {
	switch {
	case box.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("box name is required")
	case box.Length <= 0 || box.Width <= 0 || box.Height <= 0:
		return domainerrors.ErrValidationFailed.WithDetails("box dimensions must be positive")
	case box.Weight <= 0:
		return domainerrors.ErrValidationFailed.WithDetails("box weight must be positive")
	case box.BasePrice <= 0:
		return domainerrors.ErrValidationFailed.WithDetails("base price must be positive")
	case box.Color != "" && !hexColorPattern.MatchString(box.Color):
		return domainerrors.ErrValidationFailed.WithDetails("color must be a hex value such as #A0522D")
	default:
		return nil
	}
}

func findBoxType(ctx context.Context, repo repository.BoxTypeRepository, id uuid.UUID) (*entity.BoxType, error) {
	box, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBoxTypeNotFound) {
			return nil, domainerrors.ErrBoxTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to load box type")
	}

	return box, nil
}

func mapBoxTypeWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateBoxType):
		return domainerrors.ErrBoxTypeAlreadyExists
	case errors.Is(err, repository.ErrBoxTypeNotFound):
		return domainerrors.ErrBoxTypeNotFound
	case errors.Is(err, repository.ErrReferenced):
		return domainerrors.ErrReferenceInUse
	default:
		return errors.Wrap(err, "failed to write box type")
	}
}
