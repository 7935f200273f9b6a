package repository

import (
	"context"
	"errors"

	"carmarket/internal/domain/entity"
)

// ErrRewardNotFound is a domain-specific error returned when a reward ledger
// entry is not found.
var ErrRewardNotFound = errors.New("reward not found")

// RewardRepository defines the operations on the loyalty ledger. The ledger
// holds one record per customer email.
//
// The two-step contract exists so that concurrent accruals for the same
// email cannot lose points: the increment is a single atomic upsert, and the
// tier write is guarded by the point total it was derived from.
type RewardRepository interface {
	// IncrementPoints atomically adds points to the ledger entry for email,
	// creating it with TierBronze when absent. It returns the entry as of
	// the increment and whether it was created by this call.
	IncrementPoints(ctx context.Context, email string, points int) (*entity.Reward, bool, error)

	// SetTierIfPoints sets the tier only while the stored point total still
	// equals points. A miss means a concurrent accrual moved the total and
	// will recompute the tier itself; the miss is not an error.
	SetTierIfPoints(ctx context.Context, email string, points int, tier entity.Tier) error
}
