package mongodb

import (
	"context"
	"regexp"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// carRepository implements the repository.CarRepository interface.
type carRepository struct {
	store *Store
}

// NewCarRepository is the constructor for carRepository.
func NewCarRepository(store *Store) repository.CarRepository {
	return &carRepository{
		store: store,
	}
}

// Create persists a new listing and fills in its generated identifier.
func (repo *carRepository) Create(ctx context.Context, car *entity.Car) error {
	coll, err := repo.store.Collection(model.CarModel{}.CollectionName())
	if err != nil {
		return err
	}

	res, err := coll.InsertOne(ctx, model.FromCarDomain(car))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create car")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		car.ID = oid.Hex()
	}

	return nil
}

// FindByID retrieves a single listing by its identifier.
func (repo *carRepository) FindByID(ctx context.Context, id string) (*entity.Car, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domainerrors.ErrInvalidID.WrapMessage("malformed car id")
	}

	coll, err := repo.store.Collection(model.CarModel{}.CollectionName())
	if err != nil {
		return nil, err
	}

	var carM model.CarModel
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&carM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCarNotFound
		}

		return nil, errors.Wrap(err, "failed to find car by ID")
	}

	return carM.ToDomain(), nil
}

// Search returns every listing matching the filter, unpaginated.
func (repo *carRepository) Search(ctx context.Context, filter repository.CarFilter) ([]*entity.Car, error) {
	coll, err := repo.store.Collection(model.CarModel{}.CollectionName())
	if err != nil {
		return nil, err
	}

	cur, err := coll.Find(ctx, buildCarFilter(filter))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search cars")
	}
	defer cur.Close(ctx)

	var carModels []*model.CarModel
	if err := cur.All(ctx, &carModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode car search results")
	}

	cars := make([]*entity.Car, 0, len(carModels))
	for _, carM := range carModels {
		cars = append(cars, carM.ToDomain())
	}

	return cars, nil
}

// buildCarFilter translates the typed predicate into the store's query
// representation. This is the only place the untyped form exists.
func buildCarFilter(f repository.CarFilter) bson.M {
	flt := bson.M{}

	if f.Query != "" {
		// QuoteMeta keeps substring semantics: user input is matched
		// literally, not interpreted as a pattern.
		q := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		flt["$or"] = bson.A{
			bson.M{"title": q},
			bson.M{"brand": q},
			bson.M{"model": q},
		}
	}

	if f.Location != "" {
		flt["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Location), Options: "i"}
	}

	if f.CarType != "" {
		flt["car_type"] = string(f.CarType)
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		key := "price_per_day"
		if f.Mode == repository.ModeSale {
			key = "sale_price"
		}

		rng := bson.M{}
		if f.MinPrice != nil {
			rng["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			rng["$lte"] = *f.MaxPrice
		}
		flt[key] = rng
	}

	switch f.Mode {
	case repository.ModeSale:
		flt["for_sale"] = true
	case repository.ModeRent:
		flt["for_rent"] = true
	}

	return flt
}
