package repository

import (
	"context"

	"satoru/internal/domain/entity"
	"satoru/internal/errors"

	"github.com/google/uuid"
)

// ErrDocumentNotFound is returned when a document does not exist.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository persists uploaded documents and their processing state.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error

	// FindByID returns ErrDocumentNotFound when no document has the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)

	// ListByUser returns the user's documents, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Document, error)

	// Update saves the mutable fields (title, status, pages, error, processed time).
	Update(ctx context.Context, doc *entity.Document) error

	Delete(ctx context.Context, id uuid.UUID) error

	// Stats aggregates the user's documents by status and page count.
	// TotalFlashcards is left for the study aid repository.
	Stats(ctx context.Context, userID uuid.UUID) (*entity.DocumentStats, error)
}
