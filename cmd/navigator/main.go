package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/AmbientEg/navigation-service/config"
	"github.com/AmbientEg/navigation-service/internal/delivery"
	"github.com/AmbientEg/navigation-service/internal/delivery/http"
	"github.com/AmbientEg/navigation-service/internal/delivery/http/middleware"
	"github.com/AmbientEg/navigation-service/internal/delivery/http/router/handler"
	logs "github.com/AmbientEg/navigation-service/internal/infra/log"
	"github.com/AmbientEg/navigation-service/internal/infra/persistence/postgres"
	"github.com/AmbientEg/navigation-service/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewBuildingRepository,
			postgres.NewPOIRepository,
			postgres.NewGraphRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNavigationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNavigationHandler,
			handler.NewBuildingHandler,
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
