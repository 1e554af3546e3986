package usecase

import (
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/errors"
)

// ErrInvalidDocumentEvent is returned when an update event lacks its owner or document.
var ErrInvalidDocumentEvent = errors.New("document event must carry a user id and a document")

// IsRetryable reports whether err comes from infrastructure that may recover
// on its own, such as the database or file storage.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var dbErr *domainerrors.DatabaseExecuteError
	if errors.As(err, &dbErr) {
		return true
	}

	return errors.Is(err, domainerrors.ErrStorageFailed)
}
