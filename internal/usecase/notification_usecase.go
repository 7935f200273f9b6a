package usecase

import (
	"context"

	"carmarket/internal/domain/entity"
)

// NotificationUsecase defines the interface for the in-app notification feed
type NotificationUsecase interface {
	// ListNotifications returns the notifications addressed to an email.
	// With no store configured the result is empty rather than an error.
	ListNotifications(ctx context.Context, email string) ([]*entity.Notification, error)
}
