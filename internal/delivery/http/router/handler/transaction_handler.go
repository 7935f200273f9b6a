package handler

import (
	"log/slog"
	"net/http"

	"carmarket/internal/delivery/http/response"
	"carmarket/internal/domain/entity"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TransactionHandler holds dependencies for payment-related handlers.
type TransactionHandler struct {
	uc     usecase.BillingUsecase
	logger *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler, injected by Fx.
func NewTransactionHandler(uc usecase.BillingUsecase, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		uc:     uc,
		logger: logger,
	}
}

type createTransactionRequest struct {
	OrderID       string  `json:"order_id" validate:"required"`
	CustomerEmail string  `json:"customer_email" validate:"required,email"`
	OwnerEmail    string  `json:"owner_email" validate:"required,email"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Type          string  `json:"type"`
	Description   string  `json:"description"`
}

// transactionReceipt is the creation response: the stored payment plus the
// loyalty ledger entry it produced.
type transactionReceipt struct {
	Transaction *entity.Transaction `json:"transaction"`
	Reward      *entity.Reward      `json:"reward"`
}

// CreateTransaction handles the payment recording request.
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req createTransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	txn := &entity.Transaction{
		OrderID:       req.OrderID,
		CustomerEmail: req.CustomerEmail,
		OwnerEmail:    req.OwnerEmail,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Type:          entity.TransactionType(req.Type),
		Description:   req.Description,
	}

	created, reward, err := h.uc.CreateTransaction(c.Request().Context(), txn)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, transactionReceipt{
		Transaction: created,
		Reward:      reward,
	}, "Transaction recorded successfully")
}

// ListTransactions handles the payment history request.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	txns, err := h.uc.ListTransactions(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, txns, "Transactions retrieved successfully")
}
