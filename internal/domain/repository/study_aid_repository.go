package repository

import (
	"context"

	"satoru/internal/domain/entity"
	"satoru/internal/errors"

	"github.com/google/uuid"
)

// ErrSummaryNotFound is returned when a document has no summary yet.
var ErrSummaryNotFound = errors.New("summary not found")

// StudyAidRepository persists the summaries and flashcards generated for documents.
type StudyAidRepository interface {
	// SaveSummary inserts or replaces the document's summary.
	SaveSummary(ctx context.Context, summary *entity.Summary) error

	// FindSummary returns ErrSummaryNotFound when the document has no summary.
	FindSummary(ctx context.Context, documentID uuid.UUID) (*entity.Summary, error)

	// ReplaceFlashcards deletes the document's flashcards and inserts the given set.
	ReplaceFlashcards(ctx context.Context, documentID uuid.UUID, cards []*entity.Flashcard) error

	// ListFlashcards returns the document's flashcards in order.
	ListFlashcards(ctx context.Context, documentID uuid.UUID) ([]*entity.Flashcard, error)

	// CountFlashcardsByUser counts flashcards across all of the user's documents.
	CountFlashcardsByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteByDocument removes the document's summary and flashcards.
	DeleteByDocument(ctx context.Context, documentID uuid.UUID) error
}
