package usecase

import (
	"context"

	"satoru/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadDocumentInput carries an uploaded file and its metadata.
type UploadDocumentInput struct {
	UserID      uuid.UUID
	Title       string
	FileName    string
	ContentType string
	Data        []byte
}

// DocumentDetail is a document with whatever study material has been generated so far.
type DocumentDetail struct {
	Document   *entity.Document
	Summary    *entity.Summary
	Flashcards []*entity.Flashcard
}

// DocumentFile is the stored PDF of a document.
type DocumentFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// DocumentUsecase defines the document operations available to a signed-in user.
// Every method checks that the document belongs to userID.
type DocumentUsecase interface {
	Upload(ctx context.Context, input *UploadDocumentInput) (*entity.Document, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Document, error)
	Get(ctx context.Context, userID, documentID uuid.UUID) (*DocumentDetail, error)
	Delete(ctx context.Context, userID, documentID uuid.UUID) error
	DownloadFile(ctx context.Context, userID, documentID uuid.UUID) (*DocumentFile, error)
	GetSummary(ctx context.Context, userID, documentID uuid.UUID) (*entity.Summary, error)
	GetFlashcards(ctx context.Context, userID, documentID uuid.UUID) ([]*entity.Flashcard, error)
	Stats(ctx context.Context, userID uuid.UUID) (*entity.DocumentStats, error)
}
