package google

import (
	"context"
	"log/slog"
	"testing"

	"satoru/internal/domain/entity"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func stubValidator(payload *idtoken.Payload, err error) validateFunc {
	return func(_ context.Context, _ string, _ string) (*idtoken.Payload, error) {
		return payload, err
	}
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	payload := &idtoken.Payload{
		Issuer:  "https://accounts.google.com",
		Subject: "google-sub-1",
		Claims: map[string]any{
			"email":          "ada@example.com",
			"email_verified": true,
			"name":           "Ada",
			"picture":        "https://example.com/ada.png",
		},
	}
	svc := newAuthService("client-id", stubValidator(payload, nil), slog.Default())

	user, err := svc.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload *idtoken.Payload
		err     error
	}{
		{name: "validator error", err: errors.New("bad signature")},
		{name: "wrong issuer", payload: &idtoken.Payload{Issuer: "evil.example.com", Claims: map[string]any{"email": "a@b.c", "email_verified": true}}},
		{name: "unverified email", payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email": "a@b.c", "email_verified": "false"}}},
		{name: "missing email", payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAuthService("client-id", stubValidator(tt.payload, tt.err), slog.Default())

			user, err := svc.VerifyIDToken(context.Background(), "token")
			assert.Nil(t, user)
			assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
		})
	}
}

func TestAuthService_DisabledWithoutClientID(t *testing.T) {
	svc := newAuthService("", stubValidator(nil, nil), slog.Default())

	_, err := svc.VerifyIDToken(context.Background(), "token")
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthProviderDisabled))
	assert.Equal(t, entity.ProviderTypeGoogle, svc.GetProvider())
}
