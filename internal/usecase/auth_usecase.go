package usecase

import (
	"context"

	"carmarket/internal/domain/entity"
)

// CustomerOnboarding carries the profile data a customer submits after their
// first login.
type CustomerOnboarding struct {
	Email         string
	FullName      string
	Phone         string
	Location      string
	AvatarURL     string
	DriverLicense string
}

// OwnerOnboarding carries the profile data a fleet owner submits after their
// first login.
type OwnerOnboarding struct {
	Email       string
	FullName    string
	Phone       string
	Location    string
	AvatarURL   string
	CompanyName string
}

// AuthUsecase defines the interface for identity management use cases.
// Each call reports whether it created the account, so callers can
// distinguish a fresh profile from an existing one.
type AuthUsecase interface {
	// Login resolves the account for an email, creating a placeholder
	// customer profile when the email has never been seen before.
	Login(ctx context.Context, email string) (*entity.User, bool, error)

	// OnboardCustomer replaces the profile for the email with the submitted
	// customer data. The stored role always becomes customer.
	OnboardCustomer(ctx context.Context, input CustomerOnboarding) (*entity.User, bool, error)

	// OnboardOwner replaces the profile for the email with the submitted
	// owner data. The stored role always becomes owner.
	OnboardOwner(ctx context.Context, input OwnerOnboarding) (*entity.User, bool, error)
}
