// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a single account that owns documents.
type User struct {
	ID            uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	Email         string       // Primary contact email, also the email/password login identifier.
	Name          string       // Display name.
	PictureURL    string       // Profile picture, populated by OAuth providers.
	AuthMethod    ProviderType // The provider the account was first created with.
	EmailVerified bool         // Whether the email was verified by an OAuth provider.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ShortName returns the name to greet the user with.
func (u *User) ShortName() string {
	if u.Name != "" {
		return u.Name
	}

	for i, r := range u.Email {
		if r == '@' {
			return u.Email[:i]
		}
	}

	return u.Email
}
