package handler

import (
	"log/slog"
	"net/http"

	"carmarket/internal/delivery/http/response"
	"carmarket/internal/domain/entity"
	"carmarket/internal/domain/repository"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type createOrderRequest struct {
	OrderType      string  `json:"order_type" validate:"required,oneof=rent buy"`
	CarID          string  `json:"car_id" validate:"required"`
	CustomerEmail  string  `json:"customer_email" validate:"required,email"`
	OwnerEmail     string  `json:"owner_email" validate:"required,email"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	PickupLocation string  `json:"pickup_location"`
	TotalAmount    float64 `json:"total_amount"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrder handles the rental or purchase request against a listing.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	order := &entity.Order{
		OrderType:      entity.OrderType(req.OrderType),
		CarID:          req.CarID,
		CustomerEmail:  req.CustomerEmail,
		OwnerEmail:     req.OwnerEmail,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		PickupLocation: req.PickupLocation,
		TotalAmount:    req.TotalAmount,
	}

	created, err := h.uc.CreateOrder(c.Request().Context(), order)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Order created successfully")
}

// ListOrders handles the order history request. The listing narrows to one
// party only when both email and role are supplied; otherwise every order is
// returned.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	email := c.QueryParam("email")
	role := c.QueryParam("role")

	switch role {
	case "", string(entity.RoleCustomer), string(entity.RoleOwner):
	default:
		return response.BadRequest(c, "INVALID_INPUT", "role must be customer or owner")
	}

	var filter repository.OrderFilter
	if email != "" && role != "" {
		filter = repository.OrderFilter{Email: email, Role: entity.Role(role)}
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateStatus handles the order status change request. The status comes
// from the JSON body, falling back to the status query parameter for older
// clients.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if req.Status == "" {
		req.Status = c.QueryParam("status")
	}
	if req.Status == "" {
		return response.BadRequest(c, "INVALID_INPUT", "status is required")
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"id":     c.Param("id"),
		"status": req.Status,
	}, "Order status updated successfully")
}
