package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	mockRepo "carmarket/internal/mocks/repository"
	"carmarket/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderService(t *testing.T) (
	usecase.OrderUsecase,
	*mockRepo.MockOrderRepository,
	*mockRepo.MockCarRepository,
	*mockRepo.MockNotificationRepository,
) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	carRepo := mockRepo.NewMockCarRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewOrderService(orderRepo, carRepo, notificationRepo, logger)

	return service, orderRepo, carRepo, notificationRepo
}

func validOrder() *entity.Order {
	return &entity.Order{
		OrderType:     entity.OrderTypeRent,
		CarID:         "car1",
		CustomerEmail: "casey@example.com",
		OwnerEmail:    "owner@example.com",
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-05",
		TotalAmount:   180,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	service, orderRepo, carRepo, notificationRepo := createTestOrderService(t)
	ctx := context.Background()

	carRepo.EXPECT().FindByID(ctx, "car1").Return(&entity.Car{ID: "car1"}, nil)
	orderRepo.EXPECT().Create(ctx, mock.Anything).Run(func(ctx context.Context, order *entity.Order) {
		order.ID = "order1"
	}).Return(nil)

	var sent *entity.Notification
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Run(func(ctx context.Context, n *entity.Notification) {
		sent = n
	}).Return(nil)

	order, err := service.CreateOrder(ctx, validOrder())

	require.NoError(t, err)
	assert.Equal(t, "order1", order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)

	require.NotNil(t, sent)
	assert.Equal(t, "owner@example.com", sent.Email)
	assert.Equal(t, "New order", sent.Title)
	assert.Equal(t, "You have a new rent request", sent.Message)
}

func TestOrderService_CreateOrder_BuyRequestMessage(t *testing.T) {
	service, orderRepo, carRepo, notificationRepo := createTestOrderService(t)
	ctx := context.Background()

	carRepo.EXPECT().FindByID(ctx, "car1").Return(&entity.Car{ID: "car1"}, nil)
	orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	var sent *entity.Notification
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Run(func(ctx context.Context, n *entity.Notification) {
		sent = n
	}).Return(nil)

	order := validOrder()
	order.OrderType = entity.OrderTypeBuy
	_, err := service.CreateOrder(ctx, order)

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, "You have a new buy request", sent.Message)
}

func TestOrderService_CreateOrder_CarMissingWritesNothing(t *testing.T) {
	service, _, carRepo, _ := createTestOrderService(t)
	ctx := context.Background()

	carRepo.EXPECT().FindByID(ctx, "car1").Return(nil, repository.ErrCarNotFound)

	_, err := service.CreateOrder(ctx, validOrder())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CAR_NOT_FOUND", appErr.ErrorCode())
}

func TestOrderService_CreateOrder_NotificationFailureKeepsOrder(t *testing.T) {
	service, orderRepo, carRepo, notificationRepo := createTestOrderService(t)
	ctx := context.Background()

	carRepo.EXPECT().FindByID(ctx, "car1").Return(&entity.Car{ID: "car1"}, nil)
	orderRepo.EXPECT().Create(ctx, mock.Anything).Run(func(ctx context.Context, order *entity.Order) {
		order.ID = "order1"
	}).Return(nil)
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("notification store down"))

	order := validOrder()
	_, err := service.CreateOrder(ctx, order)

	// The error surfaces, but the order was written and keeps its ID: there
	// is no rollback.
	require.Error(t, err)
	assert.Equal(t, "order1", order.ID)
}

func TestOrderService_CreateOrder_ValidationFailure(t *testing.T) {
	service, _, _, _ := createTestOrderService(t)

	order := validOrder()
	order.CarID = ""
	_, err := service.CreateOrder(context.Background(), order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOrderService_ListOrders_DegradesWithoutStore(t *testing.T) {
	service, orderRepo, _, _ := createTestOrderService(t)
	ctx := context.Background()

	orderRepo.EXPECT().List(ctx, mock.Anything).Return(nil, domainerrors.ErrStoreUnavailable)

	orders, err := service.ListOrders(ctx, repository.OrderFilter{Email: "casey@example.com", Role: entity.RoleCustomer})

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderService_UpdateStatus_AnyTransitionAccepted(t *testing.T) {
	service, orderRepo, _, _ := createTestOrderService(t)
	ctx := context.Background()

	// completed back to pending is allowed; there is no transition table.
	orderRepo.EXPECT().UpdateStatus(ctx, "order1", entity.OrderStatusPending).Return(nil)

	require.NoError(t, service.UpdateStatus(ctx, "order1", entity.OrderStatusPending))
}

func TestOrderService_UpdateStatus_InvalidStatus(t *testing.T) {
	service, _, _, _ := createTestOrderService(t)

	err := service.UpdateStatus(context.Background(), "order1", "archived")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	service, orderRepo, _, _ := createTestOrderService(t)
	ctx := context.Background()

	orderRepo.EXPECT().UpdateStatus(ctx, "missing", entity.OrderStatusAccepted).Return(repository.ErrOrderNotFound)

	err := service.UpdateStatus(ctx, "missing", entity.OrderStatusAccepted)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
}
