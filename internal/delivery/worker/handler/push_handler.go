package handler

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "satoru/internal/delivery/context"
	"satoru/internal/delivery/push"
	"satoru/internal/domain/service"
	"satoru/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushHandler handles Pub/Sub push messages carrying document.uploaded events.
type PushHandler struct {
	verifier     *push.Verifier
	logger       *slog.Logger
	processingUC usecase.ProcessingUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Verifier     *push.Verifier
	Logger       *slog.Logger
	ProcessingUC usecase.ProcessingUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		verifier:     params.Verifier,
		logger:       params.Logger.With(slog.String("component", "worker")),
		processingUC: params.ProcessingUC,
	}
}

// HandlePush processes one document per message.
//
// A 2xx or 4xx response acknowledges the message. 503 asks Pub/Sub to redeliver,
// which only happens for database and storage failures.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.verifier.Verify(c.Request()); err != nil {
		h.logger.Warn("Invalid Pub/Sub token", slog.Any("error", err))

		return c.NoContent(http.StatusUnauthorized)
	}

	var msg push.Message
	if err := c.Bind(&msg); err != nil {
		h.logger.Error("Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := push.DecodeEvent(&msg)
	if err != nil {
		h.logger.Error("Failed to decode document event", slog.String("messageId", msg.Message.MessageID), slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &msg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID), slog.String("documentId", event.DocumentID))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), reqLogger)

	if event.Type != service.DocumentEventUploaded {
		reqLogger.Info("Ignoring event", slog.String("type", string(event.Type)))

		return c.NoContent(http.StatusNoContent)
	}

	documentID, err := uuid.Parse(event.DocumentID)
	if err != nil {
		reqLogger.Error("Event carries an invalid document id", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.processingUC.ProcessDocument(ctx, documentID); err != nil {
		if usecase.IsRetryable(err) {
			reqLogger.Warn("Processing failed, requesting redelivery", slog.Any("error", err))

			return c.NoContent(http.StatusServiceUnavailable)
		}
		// The document has already been marked failed and published.
		reqLogger.Error("Processing failed", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("Document processed")

	return c.NoContent(http.StatusNoContent)
}

// extractRequestID prefers the message attribute, then the event field, then the
// X-Request-Id of the push request, and finally generates a new one.
func extractRequestID(ctx context.Context, msg *push.Message, event *service.DocumentEvent) string {
	if requestID := msg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}
