package repository

import (
	"context"
	"errors"

	"carmarket/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Email is the natural key; users are never deleted.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in its generated identifier.
	Create(ctx context.Context, user *entity.User) error

	// Replace overwrites every field of the stored user identified by
	// user.ID. Onboarding is a wholesale overwrite, not a merge.
	Replace(ctx context.Context, user *entity.User) error
}
