// Package mongodb contains the concrete implementation of the persistence
// layer on the MongoDB document store.
package mongodb

import (
	"context"
	"log/slog"

	"carmarket/config"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/lifecycle"
	"carmarket/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Store is the handle to the document store. The connection is optional:
// with no DATABASE_URL configured the service still runs, read endpoints
// degrade to empty results, and writes surface the store as unavailable.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New creates the MongoDB client mapping. An unreachable store is reported
// at startup but does not prevent the service from starting; the diagnostic
// endpoint reports connection state instead.
func New(params Params) (*Store, error) {
	dbCfg := params.Config.Database
	if dbCfg.URL == "" {
		params.Logger.Warn("DATABASE_URL not set, running without a document store")

		return &Store{}, nil
	}

	opts := options.Client().
		ApplyURI(dbCfg.URL).
		SetConnectTimeout(dbCfg.ConnectTimeout)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	store := &Store{
		client: client,
		db:     client.Database(dbCfg.Name),
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				params.Logger.Warn("MongoDB not reachable at startup",
					slog.String("database", dbCfg.Name),
					slog.Any("error", err))

				return nil
			}

			params.Logger.Info("Connected to MongoDB", slog.String("database", dbCfg.Name))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return store, nil
}

// Configured reports whether a store connection was configured at all.
func (s *Store) Configured() bool {
	return s.db != nil
}

// Name returns the configured database name, or empty when unconfigured.
func (s *Store) Name() string {
	if s.db == nil {
		return ""
	}

	return s.db.Name()
}

// Collection resolves a named collection, or ErrStoreUnavailable when the
// store was never configured.
func (s *Store) Collection(name string) (*mongo.Collection, error) {
	if s.db == nil {
		return nil, domainerrors.ErrStoreUnavailable
	}

	return s.db.Collection(name), nil
}

// Ping verifies the store connection.
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return domainerrors.ErrStoreUnavailable
	}

	return errors.WithStack(s.client.Ping(ctx, readpref.Primary()))
}

// ListCollectionNames returns the collection names present in the database.
func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, domainerrors.ErrStoreUnavailable
	}

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collection names")
	}

	return names, nil
}
