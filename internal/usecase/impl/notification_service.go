package impl

import (
	"context"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

// ListNotifications returns the notifications addressed to an email.
func (s *notificationService) ListNotifications(ctx context.Context, email string) ([]*entity.Notification, error) {
	notifs, err := s.notificationRepo.ListByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrStoreUnavailable) {
			return []*entity.Notification{}, nil
		}

		return nil, err
	}

	return notifs, nil
}
