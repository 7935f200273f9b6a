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
)

// transactionRepository implements the repository.TransactionRepository interface.
type transactionRepository struct {
	store *Store
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(store *Store) repository.TransactionRepository {
	return &transactionRepository{
		store: store,
	}
}

// Create persists a new transaction and fills in its generated identifier.
func (repo *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	coll, err := repo.store.Collection(model.TransactionModel{}.CollectionName())
	if err != nil {
		return err
	}

	res, err := coll.InsertOne(ctx, model.FromTransactionDomain(txn))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		txn.ID = oid.Hex()
	}

	return nil
}

// ListByEmail returns transactions where the email appears on either side of
// the payment. An empty email returns the full history.
func (repo *transactionRepository) ListByEmail(ctx context.Context, email string) ([]*entity.Transaction, error) {
	coll, err := repo.store.Collection(model.TransactionModel{}.CollectionName())
	if err != nil {
		return nil, err
	}

	flt := bson.M{}
	if email != "" {
		flt["$or"] = bson.A{
			bson.M{"customer_email": email},
			bson.M{"owner_email": email},
		}
	}

	cur, err := coll.Find(ctx, flt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}
	defer cur.Close(ctx)

	var txnModels []*model.TransactionModel
	if err := cur.All(ctx, &txnModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode transaction list")
	}

	txns := make([]*entity.Transaction, 0, len(txnModels))
	for _, txnM := range txnModels {
		txns = append(txns, txnM.ToDomain())
	}

	return txns, nil
}
