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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	store *Store
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{
		store: store,
	}
}

// Create persists a new order and fills in its generated identifier.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	coll, err := repo.store.Collection(model.OrderModel{}.CollectionName())
	if err != nil {
		return err
	}

	res, err := coll.InsertOne(ctx, model.FromOrderDomain(order))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid.Hex()
	}

	return nil
}

// List returns orders for the given party. Customers see the orders they
// placed, owners see the orders placed against their listings.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	coll, err := repo.store.Collection(model.OrderModel{}.CollectionName())
	if err != nil {
		return nil, err
	}

	flt := bson.M{}
	if filter.Email != "" {
		key := "customer_email"
		if filter.Role == entity.RoleOwner {
			key = "owner_email"
		}
		flt[key] = filter.Email
	}

	cur, err := coll.Find(ctx, flt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	defer cur.Close(ctx)

	var orderModels []*model.OrderModel
	if err := cur.All(ctx, &orderModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode order list")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, orderM.ToDomain())
	}

	return orders, nil
}

// UpdateStatus sets the status of a single order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domainerrors.ErrInvalidID.WrapMessage("malformed order id")
	}

	coll, err := repo.store.Collection(model.OrderModel{}.CollectionName())
	if err != nil {
		return err
	}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
	}

	if res.MatchedCount == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}
