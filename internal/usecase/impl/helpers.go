package impl

import (
	"context"
	"fmt"

	"satoru/internal/domain/constants"
	"satoru/internal/domain/entity"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/repository"
	"satoru/internal/errors"

	"github.com/google/uuid"
)

// findOwnedDocument loads a document and checks that userID owns it.
func findOwnedDocument(ctx context.Context, repo repository.DocumentRepository, userID, documentID uuid.UUID) (*entity.Document, error) {
	doc, err := repo.FindByID(ctx, documentID)
	if errors.Is(err, repository.ErrDocumentNotFound) {
		return nil, errors.Wrap(domainerrors.ErrDocumentNotFound, "failed to find document")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find document")
	}
	if !doc.IsOwnedBy(userID) {
		return nil, errors.Wrap(domainerrors.ErrDocumentForbidden, "document belongs to another user")
	}

	return doc, nil
}

// clampFlashcardCount keeps count within the supported range; zero or less selects fallback.
func clampFlashcardCount(count, fallback int) int {
	if count <= 0 {
		count = fallback
	}

	return max(constants.MinFlashcardCount, min(count, constants.MaxFlashcardCount))
}

// storageError marks err as a storage failure so it can be retried.
func storageError(err error, message string) error {
	return errors.Wrap(domainerrors.ErrStorageFailed.WithDetails(err.Error()), message)
}

// failureReason renders err as the message stored on a failed document.
func failureReason(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Details() != "" {
			return fmt.Sprintf("%s: %s", appErr.Message(), appErr.Details())
		}

		return appErr.Message()
	}

	return "Document processing failed"
}
