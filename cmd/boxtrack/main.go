package main

import (
	"context"
	"log/slog"
	"os"

	"boxtrack/config"
	"boxtrack/internal/delivery"
	"boxtrack/internal/delivery/api"
	"boxtrack/internal/delivery/api/middleware"
	"boxtrack/internal/delivery/api/router/handler"
	"boxtrack/internal/domain/lifecycle"
	"boxtrack/internal/domain/service"
	"boxtrack/internal/infra/auth"
	logs "boxtrack/internal/infra/log"
	"boxtrack/internal/infra/metrics"
	"boxtrack/internal/infra/persistence/postgres"
	"boxtrack/internal/infra/pubsub"
	"boxtrack/internal/infra/qrcode"
	"boxtrack/internal/infra/trackingnumber"
	"boxtrack/internal/usecase"
	"boxtrack/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			bootstrapAdministrator,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			newMetrics,
			newMetricsRecorder,
		),
		pubsub.Module,
	)
}

// newMetrics returns nil when metrics are disabled; consumers treat nil as off.
func newMetrics(cfg *config.Config) *metrics.Metrics {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return nil
	}

	return metrics.New()
}

func newMetricsRecorder(m *metrics.Metrics) service.MetricsRecorder {
	if m == nil {
		return service.NopMetricsRecorder{}
	}

	return m
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewCountryRepository,
			postgres.NewBoxTypeRepository,
			postgres.NewShipmentRepository,
			postgres.NewTrackingEventRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			trackingnumber.NewGenerator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCountryService,
			impl.NewBoxTypeService,
			impl.NewShipmentService,
			impl.NewShipmentDirectoryService,
			impl.NewDashboardService,
			impl.NewDeviceService,
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
			handler.NewAuthHandler,
			handler.NewAccountHandler,
			handler.NewReferenceHandler,
			handler.NewShipmentHandler,
			handler.NewDashboardHandler,
			handler.NewDeviceHandler,
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

// bootstrapAdministrator seeds the configured administrator once the database is up.
func bootstrapAdministrator(lc fx.Lifecycle, cfg *config.Config, userUC usecase.UserUsecase, logger *slog.Logger) {
	if cfg.Bootstrap == nil || cfg.Bootstrap.AdminEmail == "" {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			admin, err := userUC.EnsureAdministrator(ctx, &usecase.AdministratorInput{
				FirstName: cfg.Bootstrap.AdminFirstName,
				LastName:  cfg.Bootstrap.AdminLastName,
				Email:     cfg.Bootstrap.AdminEmail,
				Password:  cfg.Bootstrap.AdminPassword,
			})
			if err != nil {
				return errors.Wrap(err, "failed to bootstrap administrator")
			}

			logger.Info("Administrator account ready", slog.String("user_id", admin.ID.String()))

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
