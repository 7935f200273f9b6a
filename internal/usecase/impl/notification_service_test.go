package impl

import (
	"context"
	"testing"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	mockRepo "carmarket/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListNotifications(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo)
	ctx := context.Background()

	feed := []*entity.Notification{
		{ID: "n1", Email: "owner@example.com", Title: "New order", Message: "You have a new rent request"},
	}
	notificationRepo.EXPECT().ListByEmail(ctx, "owner@example.com").Return(feed, nil)

	notifs, err := service.ListNotifications(ctx, "owner@example.com")

	require.NoError(t, err)
	assert.Equal(t, feed, notifs)
}

func TestNotificationService_ListNotifications_DegradesWithoutStore(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo)
	ctx := context.Background()

	notificationRepo.EXPECT().ListByEmail(ctx, "owner@example.com").Return(nil, domainerrors.ErrStoreUnavailable)

	notifs, err := service.ListNotifications(ctx, "owner@example.com")

	require.NoError(t, err)
	assert.NotNil(t, notifs)
	assert.Empty(t, notifs)
}
