// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"carmarket/internal/domain/entity"
)

// ErrCarNotFound is a domain-specific error returned when a car is not found.
var ErrCarNotFound = errors.New("car not found")

// ListingMode narrows a search to one side of the marketplace.
type ListingMode string

const (
	ModeRent ListingMode = "rent"
	ModeSale ListingMode = "sale"
)

// CarFilter is the typed search predicate for listings. Zero values mean
// "no constraint"; all supplied criteria are ANDed. The store adapter owns
// the translation to its native query representation, so nothing above the
// persistence boundary handles untyped filter maps.
type CarFilter struct {
	// Query matches title OR brand OR model, case-insensitive substring.
	Query string
	// Location matches the car location, case-insensitive substring.
	Location string
	// CarType matches exactly.
	CarType entity.CarType
	// MinPrice/MaxPrice bound the price field selected by Mode:
	// sale_price when Mode is ModeSale, price_per_day otherwise.
	MinPrice *float64
	MaxPrice *float64
	// Mode additionally restricts to for_sale (ModeSale) or for_rent
	// (ModeRent). Empty mode constrains neither.
	Mode ListingMode
}

// CarRepository defines the standard operations for listing persistence.
type CarRepository interface {
	// Create persists a new listing and fills in its generated identifier.
	Create(ctx context.Context, car *entity.Car) error

	// FindByID retrieves a single listing by its identifier.
	FindByID(ctx context.Context, id string) (*entity.Car, error)

	// Search returns every listing matching the filter, unpaginated.
	Search(ctx context.Context, filter CarFilter) ([]*entity.Car, error)
}
