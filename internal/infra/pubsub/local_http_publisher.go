package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "satoru/internal/delivery/context"
	"satoru/internal/domain/service"
	"satoru/internal/errors"

	"github.com/google/uuid"
)

const localPublishTimeout = 30 * time.Second

// localHTTPPublisher implements EventPublisher by POSTing Pub/Sub push envelopes
// straight to the consuming service, for development without Google Cloud.
type localHTTPPublisher struct {
	routes     Routes
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the envelope Google Pub/Sub uses when pushing to HTTP endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps a document event the way a push subscription would deliver it.
func NewPushMessage(event *service.DocumentEvent, subscription string) (*PushMessage, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(routes Routes, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		routes: routes,
		httpClient: &http.Client{
			Timeout: localPublishTimeout,
		},
		logger: logger,
	}
}

// PublishDocumentEvent posts the event to the endpoint routed for its type.
func (p *localHTTPPublisher) PublishDocumentEvent(ctx context.Context, event *service.DocumentEvent) error {
	endpoint, err := p.routes.destination(event.Type)
	if err != nil {
		return err
	}
	if endpoint == "" {
		p.logger.DebugContext(ctx, "[LocalPubSub] No endpoint for event type, skipping", slog.String("type", string(event.Type)))

		return nil
	}

	pushMsg, err := NewPushMessage(event, "projects/local/subscriptions/"+string(event.Type))
	if err != nil {
		return err
	}
	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.InfoContext(ctx, "[LocalPubSub] Event published",
		slog.String("type", string(event.Type)),
		slog.String("document_id", event.DocumentID),
		slog.String("endpoint", endpoint),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
