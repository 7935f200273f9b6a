package mongodb

import (
	"context"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// rewardRepository implements the repository.RewardRepository interface.
type rewardRepository struct {
	store *Store
}

// NewRewardRepository is the constructor for rewardRepository.
func NewRewardRepository(store *Store) repository.RewardRepository {
	return &rewardRepository{
		store: store,
	}
}

// IncrementPoints adds points to the ledger entry for email in a single
// atomic upsert. The email lands on the document through the filter equality,
// so $setOnInsert only needs to seed the starting tier.
func (repo *rewardRepository) IncrementPoints(ctx context.Context, email string, points int) (*entity.Reward, bool, error) {
	coll, err := repo.store.Collection(model.RewardModel{}.CollectionName())
	if err != nil {
		return nil, false, err
	}

	update := bson.M{
		"$inc":         bson.M{"points": points},
		"$setOnInsert": bson.M{"tier": string(entity.TierBronze)},
	}

	res, err := coll.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(err, "failed to increment reward points")
	}

	created := res.UpsertedCount > 0

	var rewardM model.RewardModel
	if err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&rewardM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, repository.ErrRewardNotFound
		}

		return nil, false, errors.Wrap(err, "failed to read reward after increment")
	}

	return rewardM.ToDomain(), created, nil
}

// SetTierIfPoints writes the tier guarded by the point total it was derived
// from. A zero-match result means a concurrent accrual moved the total; that
// accrual recomputes the tier, so the miss is deliberately ignored.
func (repo *rewardRepository) SetTierIfPoints(ctx context.Context, email string, points int, tier entity.Tier) error {
	coll, err := repo.store.Collection(model.RewardModel{}.CollectionName())
	if err != nil {
		return err
	}

	filter := bson.M{"email": email, "points": points}
	_, err = coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"tier": string(tier)}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update reward tier")
	}

	return nil
}
