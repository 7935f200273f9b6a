package impl

import (
	"context"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"
)

type billingService struct {
	txnRepo    repository.TransactionRepository
	rewardRepo repository.RewardRepository
}

// NewBillingService creates a new billing service instance
func NewBillingService(
	txnRepo repository.TransactionRepository,
	rewardRepo repository.RewardRepository,
) usecase.BillingUsecase {
	return &billingService{
		txnRepo:    txnRepo,
		rewardRepo: rewardRepo,
	}
}

// CreateTransaction records a payment and accrues loyalty points for the
// paying customer.
//
// Accrual is a single atomic increment on the per-email ledger entry. An
// entry created by this call keeps its starting tier; otherwise the tier is
// recomputed from the new total and written with a point-total guard, so two
// concurrent payments can never lose each other's points or store a tier for
// a stale total.
func (s *billingService) CreateTransaction(ctx context.Context, txn *entity.Transaction) (*entity.Transaction, *entity.Reward, error) {
	txn.ApplyDefaults()
	if err := txn.Validate(); err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, nil, err
	}

	earned := entity.EarnedPoints(txn.Amount)

	reward, created, err := s.rewardRepo.IncrementPoints(ctx, txn.CustomerEmail, earned)
	if err != nil {
		return nil, nil, err
	}

	if !created {
		tier := entity.TierFor(reward.Points)
		if tier != reward.Tier {
			if err := s.rewardRepo.SetTierIfPoints(ctx, txn.CustomerEmail, reward.Points, tier); err != nil {
				return nil, nil, err
			}
			reward.Tier = tier
		}
	}

	return txn, reward, nil
}

// ListTransactions returns the payment history for an email.
func (s *billingService) ListTransactions(ctx context.Context, email string) ([]*entity.Transaction, error) {
	txns, err := s.txnRepo.ListByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrStoreUnavailable) {
			return []*entity.Transaction{}, nil
		}

		return nil, err
	}

	return txns, nil
}
