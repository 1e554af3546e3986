package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"satoru/internal/domain/service"
	"satoru/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client     *pubsub.Client
	publishers map[string]*pubsub.Publisher
	routes     Routes
	logger     *slog.Logger
}

// NewGooglePubSubPublisher creates a publisher per configured topic after checking each topic exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID string, routes Routes, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	publishers := make(map[string]*pubsub.Publisher, 2)
	for _, topicID := range []string{routes.Processing, routes.Updates} {
		if topicID == "" || publishers[topicID] != nil {
			continue
		}

		topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
		if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
			client.Close()

			return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
		}

		publishers[topicID] = client.Publisher(topicID)
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.Int("topics", len(publishers)),
	)

	return &googlePubSubPublisher{
		client:     client,
		publishers: publishers,
		routes:     routes,
		logger:     logger,
	}, nil
}

// PublishDocumentEvent publishes an event to the topic routed for its type and waits for the server ack.
func (p *googlePubSubPublisher) PublishDocumentEvent(ctx context.Context, event *service.DocumentEvent) error {
	topicID, err := p.routes.destination(event.Type)
	if err != nil {
		return err
	}
	publisher := p.publishers[topicID]
	if publisher == nil {
		p.logger.DebugContext(ctx, "[GooglePubSub] No topic for event type, skipping", slog.String("type", string(event.Type)))

		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s to %s", event.Type, topicID)
	}

	p.logger.InfoContext(ctx, "[GooglePubSub] Event published",
		slog.String("type", string(event.Type)),
		slog.String("document_id", event.DocumentID),
		slog.String("topic_id", topicID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	for _, publisher := range p.publishers {
		publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
