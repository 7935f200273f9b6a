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

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	store *Store
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(store *Store) repository.NotificationRepository {
	return &notificationRepository{
		store: store,
	}
}

// Create persists a new notification and fills in its generated identifier.
func (repo *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	coll, err := repo.store.Collection(model.NotificationModel{}.CollectionName())
	if err != nil {
		return err
	}

	res, err := coll.InsertOne(ctx, model.FromNotificationDomain(n))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		n.ID = oid.Hex()
	}

	return nil
}

// ListByEmail returns the notifications addressed to the given email.
func (repo *notificationRepository) ListByEmail(ctx context.Context, email string) ([]*entity.Notification, error) {
	coll, err := repo.store.Collection(model.NotificationModel{}.CollectionName())
	if err != nil {
		return nil, err
	}

	flt := bson.M{}
	if email != "" {
		flt["email"] = email
	}

	cur, err := coll.Find(ctx, flt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}
	defer cur.Close(ctx)

	var notifModels []*model.NotificationModel
	if err := cur.All(ctx, &notifModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode notification list")
	}

	notifs := make([]*entity.Notification, 0, len(notifModels))
	for _, notifM := range notifModels {
		notifs = append(notifs, notifM.ToDomain())
	}

	return notifs, nil
}
