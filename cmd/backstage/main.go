package main

import (
	"context"
	"log/slog"
	"os"

	"backstage/config"
	"backstage/internal/delivery"
	"backstage/internal/delivery/http"
	"backstage/internal/delivery/http/middleware"
	"backstage/internal/delivery/http/router/handler"
	"backstage/internal/domain/access"
	"backstage/internal/infra/auth"
	"backstage/internal/infra/cache"
	logs "backstage/internal/infra/log"
	"backstage/internal/infra/mail"
	"backstage/internal/infra/persistence/postgres"
	"backstage/internal/infra/storage"
	"backstage/internal/usecase"
	"backstage/internal/usecase/impl"

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
			seedRoles,
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
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRoleRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.New,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewRoleService,
			impl.NewRoleSeeder,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			access.NewRegistry,
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewRoleHandler,
			handler.NewHealthHandler,
			handler.NewMediaHandler,
			handler.NewMailHandler,
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

// seedRoles reconciles the built-in roles before the server starts
// accepting traffic. fx.Invoke order guarantees it runs first.
func seedRoles(ctx context.Context, seeder usecase.RoleSeeder) error {
	return seeder.Seed(ctx)
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
