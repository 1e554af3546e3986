// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"satoru/config"
	"satoru/internal/domain/entity"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/service"

	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

// validateFunc matches idtoken.Validate so tests can stub out Google's key fetch.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google
type AuthServiceImpl struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	return newAuthService(cfg.GoogleOAuth.ClientID, idtoken.Validate, logger)
}

func newAuthService(clientID string, validate validateFunc, logger *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		clientID: clientID,
		validate: validate,
		logger:   logger.With(slog.String("component", "google_auth")),
	}
}

// VerifyIDToken checks the signature, audience, issuer and expiry of a Google ID token.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, domainerrors.ErrOAuthProviderDisabled
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.WarnContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails(err.Error())
	}

	if _, ok := validIssuers[payload.Issuer]; !ok {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("invalid issuer: " + payload.Issuer)
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		Name:          stringClaim(payload.Claims, "name"),
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     stringClaim(payload.Claims, "picture"),
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
	}
	if user.Email == "" {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("token has no email claim")
	}
	if !user.EmailVerified {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("email not verified")
	}

	s.logger.DebugContext(ctx, "Google ID token verified", slog.String("subject", user.ID))

	return user, nil
}

// GetProvider returns the OAuth provider type
func (s *AuthServiceImpl) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func stringClaim(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

func boolClaim(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
