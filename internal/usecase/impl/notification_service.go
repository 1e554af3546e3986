package impl

import (
	"context"
	"log/slog"

	deliverycontext "satoru/internal/delivery/context"
	"satoru/internal/domain/service"
	"satoru/internal/errors"
	"satoru/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	notifier service.DocumentNotifier
	logger   *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notifier service.DocumentNotifier, logger *slog.Logger) usecase.NotificationUsecase {
	return &notificationService{
		notifier: notifier,
		logger:   logger,
	}
}

// DeliverDocumentUpdate forwards a document.updated event to the owner's live connections.
// Other event types are ignored.
func (s *notificationService) DeliverDocumentUpdate(ctx context.Context, event *service.DocumentEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if event == nil {
		return usecase.ErrInvalidDocumentEvent
	}
	if event.Type != service.DocumentEventUpdated {
		logger.Debug("Ignoring document event", slog.String("type", string(event.Type)))

		return nil
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil || event.Document == nil {
		return errors.Wrapf(usecase.ErrInvalidDocumentEvent, "document %s", event.DocumentID)
	}

	if err := s.notifier.NotifyDocumentUpdate(ctx, userID, event.Document); err != nil {
		return errors.Wrap(err, "failed to notify document update")
	}

	logger.Debug("Document update delivered",
		slog.String("documentID", event.DocumentID),
		slog.String("status", event.Document.Status),
	)

	return nil
}
