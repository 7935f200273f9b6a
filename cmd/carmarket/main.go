package main

import (
	"context"
	"log/slog"
	"os"

	"carmarket/config"
	"carmarket/internal/delivery"
	"carmarket/internal/delivery/http"
	"carmarket/internal/delivery/http/middleware"
	"carmarket/internal/delivery/http/router/handler"
	logs "carmarket/internal/infra/log"
	"carmarket/internal/infra/persistence/mongodb"
	"carmarket/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewUserRepository,
			mongodb.NewCarRepository,
			mongodb.NewOrderRepository,
			mongodb.NewTransactionRepository,
			mongodb.NewNotificationRepository,
			mongodb.NewRewardRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewBillingService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCarHandler,
			handler.NewOrderHandler,
			handler.NewTransactionHandler,
			handler.NewNotificationHandler,
			handler.NewSystemHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
