package usecase

import (
	"context"

	"satoru/internal/domain/service"
)

// NotificationUsecase delivers document events to connected users.
type NotificationUsecase interface {
	// DeliverDocumentUpdate forwards a document.updated event to the owner's live connections.
	DeliverDocumentUpdate(ctx context.Context, event *service.DocumentEvent) error
}
