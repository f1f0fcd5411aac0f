package main

import (
	"context"
	"log/slog"
	"os"

	"secondchance/config"
	"secondchance/internal/delivery"
	"secondchance/internal/delivery/api"
	apimiddleware "secondchance/internal/delivery/api/middleware"
	"secondchance/internal/delivery/api/router/handler"
	"secondchance/internal/domain/repository"
	"secondchance/internal/infra/auth"
	logs "secondchance/internal/infra/log"
	"secondchance/internal/infra/persistence/memory"
	"secondchance/internal/infra/persistence/postgres"
	"secondchance/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
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
	)
}

// repoParams carries what either storage driver may need.
type repoParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newUserRepository,
		),
	)
}

// newUserRepository selects the credential store named by storage.driver.
// The postgres pool is only opened when that driver is chosen.
func newUserRepository(params repoParams) (repository.UserRepository, error) {
	if params.Config.Storage.Driver == config.StorageDriverMemory {
		params.Logger.Warn("Using in-memory credential store, accounts are lost on restart")

		return memory.NewUserRepository(), nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return postgres.NewUserRepository(db), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAccountService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccountHandler,
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

// startServer serves once every earlier OnStart hook, including the database ping and migrations, has run.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
