package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"
)

type orderService struct {
	orderRepo        repository.OrderRepository
	carRepo          repository.CarRepository
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orderRepo repository.OrderRepository,
	carRepo repository.CarRepository,
	notificationRepo repository.NotificationRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo:        orderRepo,
		carRepo:          carRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// CreateOrder validates the request against the referenced listing, records
// the order and notifies the listing's owner. The owner notification is
// written after the order, so a notification failure leaves the order in
// place.
func (s *orderService) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	order.ApplyDefaults()
	if err := order.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if _, err := s.carRepo.FindByID(ctx, order.CarID); err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return nil, domainerrors.ErrCarNotFound
		}

		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	notification := &entity.Notification{
		Email:   order.OwnerEmail,
		Title:   "New order",
		Message: fmt.Sprintf("You have a new %s request", order.OrderType),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("order created but owner notification failed",
			slog.String("order_id", order.ID),
			slog.String("owner_email", order.OwnerEmail),
			slog.Any("error", err))

		return nil, err
	}

	return order, nil
}

// ListOrders returns the orders visible to one party.
func (s *orderService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		if errors.Is(err, domainerrors.ErrStoreUnavailable) {
			return []*entity.Order{}, nil
		}

		return nil, err
	}

	return orders, nil
}

// UpdateStatus moves an order to the given status.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	switch status {
	case entity.OrderStatusPending, entity.OrderStatusAccepted, entity.OrderStatusRejected, entity.OrderStatusCompleted:
	default:
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid status %q", status))
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return err
	}

	return nil
}
