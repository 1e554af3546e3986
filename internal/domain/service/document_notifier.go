package service

import (
	"context"

	"github.com/google/uuid"
)

// DocumentNotifier pushes document changes to a user's live connections.
type DocumentNotifier interface {
	NotifyDocumentUpdate(ctx context.Context, userID uuid.UUID, doc *DocumentView) error
}
