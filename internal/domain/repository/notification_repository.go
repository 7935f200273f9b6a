package repository

import (
	"context"

	"carmarket/internal/domain/entity"
)

// NotificationRepository defines the standard operations for notifications.
type NotificationRepository interface {
	// Create persists a new notification and fills in its generated identifier.
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByEmail returns every notification addressed to the recipient.
	ListByEmail(ctx context.Context, email string) ([]*entity.Notification, error)
}
