package repository

import (
	"context"

	"satoru/internal/domain/entity"
	"satoru/internal/errors"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for refresh token and session management operations.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its securely stored hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, effectively ending a session.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteExpiredRefreshTokens removes all expired refresh tokens for a user.
	DeleteExpiredRefreshTokens(ctx context.Context, userID uuid.UUID) error

	// CountActiveSessionsByUserID returns the number of active (non-expired) sessions for a user.
	CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}
