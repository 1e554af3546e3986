// Package firebase verifies Firebase Authentication ID tokens.
package firebase

import (
	"context"
	"log/slog"

	"satoru/internal/domain/entity"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/service"
	"satoru/internal/errors"

	fb "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
)

type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// AuthServiceImpl implements service.OAuthAuthService on top of Firebase Authentication.
type AuthServiceImpl struct {
	verifier idTokenVerifier
	logger   *slog.Logger
}

// NewAuthService builds the verifier from the shared Firebase app. A nil app yields
// a service that rejects every token as a disabled provider.
func NewAuthService(app *fb.App, logger *slog.Logger) (service.OAuthAuthService, error) {
	svc := &AuthServiceImpl{logger: logger.With(slog.String("component", "firebase_auth"))}
	if app == nil {
		return svc, nil
	}

	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}
	svc.verifier = client

	return svc, nil
}

func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.verifier == nil {
		return nil, domainerrors.ErrOAuthProviderDisabled
	}

	token, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.WarnContext(ctx, "Firebase ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails(err.Error())
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("token has no email claim")
	}
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	verified, _ := token.Claims["email_verified"].(bool)

	return &service.OAuthUser{
		ID:            token.UID,
		Email:         email,
		Name:          name,
		Provider:      entity.ProviderTypeFirebase,
		AvatarURL:     picture,
		EmailVerified: verified,
	}, nil
}

func (s *AuthServiceImpl) GetProvider() entity.ProviderType {
	return entity.ProviderTypeFirebase
}
