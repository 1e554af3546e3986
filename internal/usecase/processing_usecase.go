package usecase

import (
	"context"

	"satoru/internal/domain/entity"

	"github.com/google/uuid"
)

// ProcessingUsecase turns uploaded PDFs into summaries and flashcards.
type ProcessingUsecase interface {
	// ProcessDocument generates study material for a freshly uploaded document
	// and publishes the result. Errors for which IsRetryable is true should be redelivered.
	ProcessDocument(ctx context.Context, documentID uuid.UUID) error

	// RegenerateSummary replaces the document's summary.
	RegenerateSummary(ctx context.Context, userID, documentID uuid.UUID) (*entity.Summary, error)

	// RegenerateFlashcards replaces the document's flashcards. count is clamped to the allowed range.
	RegenerateFlashcards(ctx context.Context, userID, documentID uuid.UUID, count int) ([]*entity.Flashcard, error)
}
