// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"satoru/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// OAuthSignInInput carries an ID token issued by an external identity provider.
type OAuthSignInInput struct {
	IDToken string
}

// RefreshTokenInput defines the data required to refresh an access token.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput defines the data required to end a session.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful sign-in or registration.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput carries the new access token. The refresh token is not rotated.
type RefreshTokenOutput struct {
	AccessToken string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*LoginOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GoogleSignIn(ctx context.Context, input *OAuthSignInInput) (*LoginOutput, error)
	FirebaseSignIn(ctx context.Context, input *OAuthSignInInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
