package service

import (
	"context"
	"strings"

	"satoru/internal/domain/constants"
	"satoru/internal/errors"
)

// ErrObjectNotFound is returned when a storage key does not exist.
var ErrObjectNotFound = errors.New("storage object not found")

// FileStorage stores uploaded document files.
type FileStorage interface {
	// Upload writes data under key and returns a URL the file can be referenced by.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Download reads the object stored under key.
	Download(ctx context.Context, key string) ([]byte, error)

	// DeletePrefix removes every object whose key starts with prefix.
	DeletePrefix(ctx context.Context, prefix string) error

	Close() error
}

// DocumentObjectKey builds the storage key for a document file: documents/<user>/<document>/<file>.
func DocumentObjectKey(userID, documentID, fileName string) string {
	return strings.Join([]string{constants.DocumentStoragePrefix, userID, documentID, fileName}, "/")
}

// DocumentObjectPrefix is the key prefix holding every object of a document.
func DocumentObjectPrefix(userID, documentID string) string {
	return strings.Join([]string{constants.DocumentStoragePrefix, userID, documentID}, "/") + "/"
}
