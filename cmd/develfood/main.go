package main

import (
	"context"
	"log/slog"
	"os"

	"develfood/config"
	"develfood/internal/delivery"
	"develfood/internal/delivery/api"
	"develfood/internal/delivery/api/middleware"
	"develfood/internal/delivery/api/router/handler"
	"develfood/internal/domain/repository"
	"develfood/internal/infra/auth"
	logs "develfood/internal/infra/log"
	"develfood/internal/infra/persistence/jsonfile"
	"develfood/internal/infra/persistence/upstream"
	"develfood/internal/usecase/impl"

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
		injectService(),
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
		jsonfile.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			jsonfile.NewUserRepository,
			jsonfile.NewRestaurantRepository,
			jsonfile.NewProductRepository,
			jsonfile.NewPromotionRepository,
			jsonfile.NewOrderRepository,
			fx.Annotate(
				newUserDirectory,
				fx.ResultTags(`name:"userDirectory"`),
			),
		),
	)
}

// newUserDirectory picks where login looks users up: the remote users endpoint when
// one is configured, the local store otherwise.
func newUserDirectory(cfg *config.Config, logger *slog.Logger, local repository.UserRepository) (repository.UserRepository, error) {
	if cfg.Auth.UsersEndpoint == "" {
		return local, nil
	}

	logger.Info("Login reads users from upstream", slog.String("endpoint", cfg.Auth.UsersEndpoint))

	return upstream.NewUserRepository(cfg.Auth.UsersEndpoint, cfg.Auth.UpstreamTimeout, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewRestaurantService,
			impl.NewProductService,
			impl.NewPromotionService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewRestaurantHandler,
			handler.NewProductHandler,
			handler.NewPromotionHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
