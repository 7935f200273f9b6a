package mongodb

import (
	"context"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	store *Store
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{
		store: store,
	}
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	coll, err := repo.store.Collection(model.UserModel{}.CollectionName())
	if err != nil {
		return nil, err
	}

	var userM model.UserModel
	if err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return userM.ToDomain(), nil
}

// Create persists a new user and fills in its generated identifier.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	coll, err := repo.store.Collection(model.UserModel{}.CollectionName())
	if err != nil {
		return err
	}

	res, err := coll.InsertOne(ctx, model.FromUserDomain(user))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}

	return nil
}

// Replace overwrites every field of the stored user identified by user.ID.
func (repo *userRepository) Replace(ctx context.Context, user *entity.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domainerrors.ErrInvalidID.WrapMessage("malformed user id")
	}

	coll, err := repo.store.Collection(model.UserModel{}.CollectionName())
	if err != nil {
		return err
	}

	res, err := coll.ReplaceOne(ctx, bson.M{"_id": oid}, model.FromUserDomain(user))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace user")
	}

	if res.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
