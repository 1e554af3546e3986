package main

import (
	"context"
	"log/slog"
	"os"

	"satoru/config"
	"satoru/internal/delivery"
	"satoru/internal/delivery/push"
	"satoru/internal/delivery/worker"
	"satoru/internal/delivery/worker/handler"
	"satoru/internal/infra/firebase"
	logs "satoru/internal/infra/log"
	"satoru/internal/infra/persistence/postgres"
	"satoru/internal/infra/pubsub"
	"satoru/internal/infra/storage"
	"satoru/internal/infra/summarizer"
	"satoru/internal/usecase/impl"

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
		injectHandler(),
		injectDelivery(),
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
		firebase.NewApp,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDocumentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			storage.NewFileStorage,
			pubsub.NewEventPublisher,
			summarizer.NewSummarizer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProcessingService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			push.NewVerifier,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
