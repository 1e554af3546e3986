package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names an authentication provider.
type ProviderType string

const (
	ProviderTypeEmail    ProviderType = "email"
	ProviderTypeGoogle   ProviderType = "google"
	ProviderTypeFirebase ProviderType = "firebase"
)

func (p ProviderType) String() string {
	return string(p)
}

// Authentication represents a single method of logging in (a credential).
// A user's email/password is one record, a linked Google account is another.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string // Email for the email provider, the provider's subject claim otherwise.
	PasswordHash   string // Only set for the email provider.
	CreatedAt      time.Time
}

// RefreshToken is a long-lived session used to obtain new access tokens.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 of the raw token.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session is past its expiry at the given time.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
