package impl

import (
	"context"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"
)

type catalogService struct {
	carRepo repository.CarRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(carRepo repository.CarRepository) usecase.CatalogUsecase {
	return &catalogService{
		carRepo: carRepo,
	}
}

// CreateCar validates and publishes a new listing.
func (s *catalogService) CreateCar(ctx context.Context, car *entity.Car) (*entity.Car, error) {
	car.ApplyDefaults()
	if err := car.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}

	return car, nil
}

// SearchCars returns the listings matching the filter.
func (s *catalogService) SearchCars(ctx context.Context, filter repository.CarFilter) ([]*entity.Car, error) {
	cars, err := s.carRepo.Search(ctx, filter)
	if err != nil {
		if errors.Is(err, domainerrors.ErrStoreUnavailable) {
			return []*entity.Car{}, nil
		}

		return nil, err
	}

	return cars, nil
}

// GetCar retrieves a single listing by its identifier.
func (s *catalogService) GetCar(ctx context.Context, id string) (*entity.Car, error) {
	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return nil, domainerrors.ErrCarNotFound
		}

		return nil, err
	}

	return car, nil
}
