package impl

import (
	"context"
	"sync"
	"testing"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	mockRepo "carmarket/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBillingService(t *testing.T) (
	*billingService,
	*mockRepo.MockTransactionRepository,
	*mockRepo.MockRewardRepository,
) {
	txnRepo := mockRepo.NewMockTransactionRepository(t)
	rewardRepo := mockRepo.NewMockRewardRepository(t)
	service := NewBillingService(txnRepo, rewardRepo).(*billingService)

	return service, txnRepo, rewardRepo
}

func validTransaction(amount float64) *entity.Transaction {
	return &entity.Transaction{
		OrderID:       "order1",
		CustomerEmail: "casey@example.com",
		OwnerEmail:    "owner@example.com",
		Amount:        amount,
	}
}

func TestBillingService_CreateTransaction_FirstPaymentStaysBronze(t *testing.T) {
	service, txnRepo, rewardRepo := createTestBillingService(t)
	ctx := context.Background()

	txnRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	// 1000 spent earns 100 points, enough for Silver on paper, but a freshly
	// created ledger entry keeps its starting tier.
	rewardRepo.EXPECT().IncrementPoints(ctx, "casey@example.com", 100).
		Return(&entity.Reward{Email: "casey@example.com", Points: 100, Tier: entity.TierBronze}, true, nil)

	txn, reward, err := service.CreateTransaction(ctx, validTransaction(1000))

	require.NoError(t, err)
	assert.Equal(t, "USD", txn.Currency)
	assert.Equal(t, entity.TransactionDebit, txn.Type)
	assert.Equal(t, 100, reward.Points)
	assert.Equal(t, entity.TierBronze, reward.Tier)
}

func TestBillingService_CreateTransaction_AccrualPromotesTier(t *testing.T) {
	service, txnRepo, rewardRepo := createTestBillingService(t)
	ctx := context.Background()

	txnRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	// 600 spent earns 60 points on top of an existing 150, crossing the
	// Platinum threshold.
	rewardRepo.EXPECT().IncrementPoints(ctx, "casey@example.com", 60).
		Return(&entity.Reward{Email: "casey@example.com", Points: 210, Tier: entity.TierGold}, false, nil)
	rewardRepo.EXPECT().SetTierIfPoints(ctx, "casey@example.com", 210, entity.TierPlatinum).Return(nil)

	_, reward, err := service.CreateTransaction(ctx, validTransaction(600))

	require.NoError(t, err)
	assert.Equal(t, 210, reward.Points)
	assert.Equal(t, entity.TierPlatinum, reward.Tier)
}

func TestBillingService_CreateTransaction_SmallPaymentEarnsOnePoint(t *testing.T) {
	service, txnRepo, rewardRepo := createTestBillingService(t)
	ctx := context.Background()

	txnRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	rewardRepo.EXPECT().IncrementPoints(ctx, "casey@example.com", 1).
		Return(&entity.Reward{Email: "casey@example.com", Points: 43, Tier: entity.TierBronze}, false, nil)

	_, reward, err := service.CreateTransaction(ctx, validTransaction(5))

	// 43 points stays Bronze; no tier write happens.
	require.NoError(t, err)
	assert.Equal(t, entity.TierBronze, reward.Tier)
}

func TestBillingService_CreateTransaction_ValidationFailure(t *testing.T) {
	service, _, _ := createTestBillingService(t)

	txn := validTransaction(100)
	txn.OrderID = ""
	_, _, err := service.CreateTransaction(context.Background(), txn)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

// rewardLedgerFake is an in-memory RewardRepository with the same atomicity
// contract as the document store: the increment is one locked read-modify-write
// and the tier write only lands while the stored total still matches.
type rewardLedgerFake struct {
	mu      sync.Mutex
	entries map[string]*entity.Reward
}

func newRewardLedgerFake() *rewardLedgerFake {
	return &rewardLedgerFake{entries: map[string]*entity.Reward{}}
}

func (f *rewardLedgerFake) IncrementPoints(ctx context.Context, email string, points int) (*entity.Reward, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.entries[email]
	if !ok {
		entry = &entity.Reward{Email: email, Points: points, Tier: entity.TierBronze}
		f.entries[email] = entry
		snapshot := *entry
		return &snapshot, true, nil
	}

	entry.Points += points
	snapshot := *entry
	return &snapshot, false, nil
}

func (f *rewardLedgerFake) SetTierIfPoints(ctx context.Context, email string, points int, tier entity.Tier) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if entry, ok := f.entries[email]; ok && entry.Points == points {
		entry.Tier = tier
	}

	return nil
}

func TestBillingService_CreateTransaction_ConcurrentAccrualsKeepEverySpentPoint(t *testing.T) {
	txnRepo := mockRepo.NewMockTransactionRepository(t)
	ledger := newRewardLedgerFake()
	service := NewBillingService(txnRepo, ledger)
	ctx := context.Background()

	txnRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(2)

	// 600 and 400 spent concurrently earn 60 and 40 points. Whichever call
	// lands second sees the combined total of 100 and promotes to Silver;
	// whichever creates the entry keeps Bronze for its own receipt.
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, amount := range []float64{600, 400} {
		wg.Add(1)
		go func(amount float64) {
			defer wg.Done()
			_, _, err := service.CreateTransaction(ctx, validTransaction(amount))
			errs <- err
		}(amount)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	final, created, err := ledger.IncrementPoints(ctx, "casey@example.com", 0)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 100, final.Points)
	assert.Equal(t, entity.TierSilver, final.Tier)
}

func TestBillingService_ListTransactions_DegradesWithoutStore(t *testing.T) {
	service, txnRepo, _ := createTestBillingService(t)
	ctx := context.Background()

	txnRepo.EXPECT().ListByEmail(ctx, "casey@example.com").Return(nil, domainerrors.ErrStoreUnavailable)

	txns, err := service.ListTransactions(ctx, "casey@example.com")

	require.NoError(t, err)
	assert.NotNil(t, txns)
	assert.Empty(t, txns)
}
