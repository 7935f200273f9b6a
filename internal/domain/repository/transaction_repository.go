package repository

import (
	"context"

	"carmarket/internal/domain/entity"
)

// TransactionRepository defines the standard operations for payment records.
// Transactions are immutable once written.
type TransactionRepository interface {
	// Create persists a new transaction and fills in its generated identifier.
	Create(ctx context.Context, tx *entity.Transaction) error

	// ListByEmail returns transactions where the email matches either the
	// customer or the owner. An empty email returns all transactions.
	ListByEmail(ctx context.Context, email string) ([]*entity.Transaction, error)
}
