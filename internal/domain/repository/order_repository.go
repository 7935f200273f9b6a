package repository

import (
	"context"
	"errors"

	"carmarket/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows an order listing to one party of the order. Both
// fields must be set for the filter to constrain anything; otherwise all
// orders are returned.
type OrderFilter struct {
	Email string
	Role  entity.Role
}

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order and fills in its generated identifier.
	Create(ctx context.Context, order *entity.Order) error

	// List returns orders matching the filter.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// UpdateStatus sets the status of the identified order unconditionally.
	// Returns ErrOrderNotFound when no order matches the identifier.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}
