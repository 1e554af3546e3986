package pubsub

import (
	"context"
	"log/slog"

	"satoru/config"
	"satoru/internal/domain/constants"
	"satoru/internal/domain/service"
	"satoru/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishDocumentEvent(ctx context.Context, event *service.DocumentEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Event publishing disabled, skipping",
		slog.String("type", string(event.Type)),
		slog.String("document_id", event.DocumentID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "pubsub"))

	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalProcessingEndpoint == "" && cfg.LocalUpdatesEndpoint == "" {
			return nil, errors.New("at least one local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("processing_endpoint", cfg.LocalProcessingEndpoint),
			slog.String("updates_endpoint", cfg.LocalUpdatesEndpoint),
		)

		publisher = NewLocalHTTPPublisher(Routes{
			Processing: cfg.LocalProcessingEndpoint,
			Updates:    cfg.LocalUpdatesEndpoint,
		}, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.ProcessingTopicID == "" && cfg.UpdatesTopicID == "" {
			return nil, errors.New("at least one topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("processing_topic_id", cfg.ProcessingTopicID),
			slog.String("updates_topic_id", cfg.UpdatesTopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, Routes{
			Processing: cfg.ProcessingTopicID,
			Updates:    cfg.UpdatesTopicID,
		}, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Routes maps each event type onto a destination: a topic ID or a local endpoint.
// An empty destination drops events of that type.
type Routes struct {
	Processing string
	Updates    string
}

func (r Routes) destination(eventType service.DocumentEventType) (string, error) {
	switch eventType {
	case service.DocumentEventUploaded:
		return r.Processing, nil
	case service.DocumentEventUpdated:
		return r.Updates, nil
	default:
		return "", errors.Errorf("unknown document event type: %s", eventType)
	}
}

func eventAttributes(event *service.DocumentEvent) map[string]string {
	attributes := map[string]string{
		"type":        string(event.Type),
		"document_id": event.DocumentID,
		"user_id":     event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
