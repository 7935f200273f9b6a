package impl

import (
	"context"
	"testing"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	mockRepo "carmarket/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateCar_AppliesDefaults(t *testing.T) {
	carRepo := mockRepo.NewMockCarRepository(t)
	service := NewCatalogService(carRepo)
	ctx := context.Background()

	carRepo.EXPECT().Create(ctx, mock.Anything).Run(func(ctx context.Context, car *entity.Car) {
		car.ID = "car1"
	}).Return(nil)

	car, err := service.CreateCar(ctx, &entity.Car{
		OwnerEmail: "owner@example.com",
		Title:      "City runabout",
		Brand:      "VW",
		Model:      "Up",
		Location:   "Hamburg",
		ForRent:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, "car1", car.ID)
	assert.Equal(t, entity.CarTypeSedan, car.CarType)
	assert.Equal(t, entity.TransmissionAutomatic, car.Transmission)
	assert.Equal(t, entity.FuelPetrol, car.Fuel)
}

func TestCatalogService_CreateCar_RejectsUnlistedCar(t *testing.T) {
	carRepo := mockRepo.NewMockCarRepository(t)
	service := NewCatalogService(carRepo)

	_, err := service.CreateCar(context.Background(), &entity.Car{
		OwnerEmail: "owner@example.com",
		Title:      "Shelf queen",
		Brand:      "VW",
		Model:      "Up",
		Location:   "Hamburg",
		ForRent:    false,
		ForSale:    false,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCatalogService_SearchCars_DegradesWithoutStore(t *testing.T) {
	carRepo := mockRepo.NewMockCarRepository(t)
	service := NewCatalogService(carRepo)
	ctx := context.Background()

	carRepo.EXPECT().Search(ctx, mock.Anything).Return(nil, domainerrors.ErrStoreUnavailable)

	cars, err := service.SearchCars(ctx, repository.CarFilter{Query: "any"})

	require.NoError(t, err)
	assert.NotNil(t, cars)
	assert.Empty(t, cars)
}

func TestCatalogService_SearchCars_PassesFilterThrough(t *testing.T) {
	carRepo := mockRepo.NewMockCarRepository(t)
	service := NewCatalogService(carRepo)
	ctx := context.Background()

	filter := repository.CarFilter{Query: "corolla", Mode: repository.ModeRent}
	found := []*entity.Car{{ID: "car1"}}
	carRepo.EXPECT().Search(ctx, filter).Return(found, nil)

	cars, err := service.SearchCars(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, found, cars)
}

func TestCatalogService_GetCar_NotFound(t *testing.T) {
	carRepo := mockRepo.NewMockCarRepository(t)
	service := NewCatalogService(carRepo)
	ctx := context.Background()

	carRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrCarNotFound)

	_, err := service.GetCar(ctx, "missing")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CAR_NOT_FOUND", appErr.ErrorCode())
}
