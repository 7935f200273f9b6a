package usecase

import (
	"context"

	"carmarket/internal/domain/entity"
	"carmarket/internal/domain/repository"
)

// OrderUsecase defines the interface for rental and purchase order use cases
type OrderUsecase interface {
	// CreateOrder validates the request against the referenced listing,
	// records the order and notifies the listing's owner.
	CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error)

	// ListOrders returns the orders visible to one party. With no store
	// configured the result is empty rather than an error.
	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error)

	// UpdateStatus moves an order to the given status. Any transition is
	// accepted; the parties coordinate outside the system.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}
