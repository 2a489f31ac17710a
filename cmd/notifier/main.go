package main

import (
	"context"
	"log/slog"
	"os"

	"boxtrack/config"
	"boxtrack/internal/delivery"
	"boxtrack/internal/delivery/consumer"
	"boxtrack/internal/delivery/scheduler"
	"boxtrack/internal/delivery/worker"
	"boxtrack/internal/delivery/worker/handler"
	"boxtrack/internal/domain/constants"
	logs "boxtrack/internal/infra/log"
	"boxtrack/internal/infra/notification"
	"boxtrack/internal/infra/persistence/postgres"
	"boxtrack/internal/infra/pubsub"
	"boxtrack/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(cfg),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			logs.New,
			context.Background,
			postgres.New,
		),
		// The overdue sweeper publishes through the same provider as the API.
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewShipmentRepository,
			postgres.NewTrackingEventRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewFirebaseService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewOverdueService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

// injectDelivery always serves the push endpoint and the sweeper; a kafka
// provider also joins the consumer group.
func injectDelivery(cfg *config.Config) fx.Option {
	deliveries := []any{
		fx.Annotate(
			worker.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
		fx.Annotate(
			scheduler.NewOverdueScheduler,
			fx.ResultTags(`group:"deliveries"`),
		),
	}

	if cfg.PubSub != nil && cfg.PubSub.Provider == constants.PubSubProviderKafka {
		deliveries = append(deliveries, fx.Annotate(
			consumer.NewKafkaConsumer,
			fx.ResultTags(`group:"deliveries"`),
		))
	}

	return fx.Options(
		fx.Provide(deliveries...),
	)
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
