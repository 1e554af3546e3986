package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "satoru/internal/delivery/context"
	"satoru/internal/delivery/push"
	"satoru/internal/errors"
	"satoru/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UpdateHandler receives document.updated events pushed by Pub/Sub.
type UpdateHandler struct {
	notificationUC usecase.NotificationUsecase
	verifier       *push.Verifier
	logger         *slog.Logger
}

// NewUpdateHandler is the constructor for UpdateHandler.
func NewUpdateHandler(notificationUC usecase.NotificationUsecase, verifier *push.Verifier, logger *slog.Logger) *UpdateHandler {
	return &UpdateHandler{
		notificationUC: notificationUC,
		verifier:       verifier,
		logger:         logger.With(slog.String("component", "update_handler")),
	}
}

// HandlePush acknowledges delivered and unusable messages with 2xx/4xx and asks
// Pub/Sub to retry with 503 when delivery to the hub failed.
func (h *UpdateHandler) HandlePush(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	if err := h.verifier.Verify(c.Request()); err != nil {
		logger.Warn("Invalid Pub/Sub token", slog.Any("error", err))

		return c.NoContent(http.StatusUnauthorized)
	}

	var msg push.Message
	if err := c.Bind(&msg); err != nil {
		logger.Error("Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := push.DecodeEvent(&msg)
	if err != nil {
		logger.Error("Failed to decode document event", slog.String("messageId", msg.Message.MessageID), slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx := c.Request().Context()
	if event.RequestID != "" {
		ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, event.RequestID),
			logger.With(slog.String("origin_request_id", event.RequestID)))
	}

	if err := h.notificationUC.DeliverDocumentUpdate(ctx, event); err != nil {
		if errors.Is(err, usecase.ErrInvalidDocumentEvent) {
			logger.Error("Dropping invalid document event", slog.String("documentId", event.DocumentID), slog.Any("error", err))

			return c.NoContent(http.StatusBadRequest)
		}
		logger.Error("Failed to deliver document update", slog.String("documentId", event.DocumentID), slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusNoContent)
}
