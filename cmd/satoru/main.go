package main

import (
	"context"
	"log/slog"
	"os"

	"satoru/config"
	"satoru/internal/delivery"
	"satoru/internal/delivery/api"
	"satoru/internal/delivery/api/middleware"
	"satoru/internal/delivery/api/router/handler"
	"satoru/internal/delivery/push"
	"satoru/internal/domain/service"
	"satoru/internal/infra/auth"
	authfirebase "satoru/internal/infra/auth/firebase"
	"satoru/internal/infra/auth/google"
	"satoru/internal/infra/firebase"
	logs "satoru/internal/infra/log"
	"satoru/internal/infra/persistence/postgres"
	"satoru/internal/infra/pubsub"
	"satoru/internal/infra/realtime"
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
		firebase.NewApp,
		// The hub serves WebSocket subscribers and receives document updates.
		realtime.NewHub,
		func(hub *realtime.Hub) service.DocumentNotifier { return hub },
		func(hub *realtime.Hub) handler.ConnectionAttacher { return hub },
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewDocumentRepository,
			postgres.NewStudyAidRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			fx.Annotate(
				google.NewAuthService,
				fx.ResultTags(`name:"google"`),
			),
			fx.Annotate(
				authfirebase.NewAuthService,
				fx.ResultTags(`name:"firebase"`),
			),
			storage.NewFileStorage,
			pubsub.NewEventPublisher,
			summarizer.NewSummarizer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewDocumentService,
			impl.NewProcessingService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			push.NewVerifier,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewDocumentHandler,
			handler.NewRealtimeHandler,
			handler.NewUpdateHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
