package firebase

import (
	"context"
	"log/slog"
	"testing"

	"satoru/internal/domain/entity"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/errors"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	token *fbauth.Token
	err   error
}

func (f fakeVerifier) VerifyIDToken(context.Context, string) (*fbauth.Token, error) {
	return f.token, f.err
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	svc := &AuthServiceImpl{
		verifier: fakeVerifier{token: &fbauth.Token{
			UID:    "fb-uid",
			Claims: map[string]any{"email": "grace@example.com", "name": "Grace", "email_verified": true},
		}},
		logger: slog.Default(),
	}

	user, err := svc.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "fb-uid", user.ID)
	assert.Equal(t, "grace@example.com", user.Email)
	assert.Equal(t, entity.ProviderTypeFirebase, user.Provider)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_Invalid(t *testing.T) {
	svc := &AuthServiceImpl{verifier: fakeVerifier{err: errors.New("expired")}, logger: slog.Default()}

	_, err := svc.VerifyIDToken(context.Background(), "token")
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}

func TestAuthService_NilAppIsDisabled(t *testing.T) {
	svc, err := NewAuthService(nil, slog.Default())
	require.NoError(t, err)

	_, err = svc.VerifyIDToken(context.Background(), "token")
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthProviderDisabled))
}
