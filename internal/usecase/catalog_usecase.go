package usecase

import (
	"context"

	"carmarket/internal/domain/entity"
	"carmarket/internal/domain/repository"
)

// CatalogUsecase defines the interface for car listing use cases
type CatalogUsecase interface {
	// CreateCar validates and publishes a new listing.
	CreateCar(ctx context.Context, car *entity.Car) (*entity.Car, error)

	// SearchCars returns the listings matching the filter. With no store
	// configured the result is empty rather than an error.
	SearchCars(ctx context.Context, filter repository.CarFilter) ([]*entity.Car, error)

	// GetCar retrieves a single listing by its identifier.
	GetCar(ctx context.Context, id string) (*entity.Car, error)
}
