package usecase

import (
	"context"

	"carmarket/internal/domain/entity"
)

// BillingUsecase defines the interface for payment recording and the loyalty
// ledger it feeds
type BillingUsecase interface {
	// CreateTransaction records a payment and accrues loyalty points for the
	// paying customer. The returned reward reflects the ledger after accrual.
	CreateTransaction(ctx context.Context, txn *entity.Transaction) (*entity.Transaction, *entity.Reward, error)

	// ListTransactions returns the payment history for an email, or the full
	// history when the email is empty. With no store configured the result is
	// empty rather than an error.
	ListTransactions(ctx context.Context, email string) ([]*entity.Transaction, error)
}
