package impl

import (
	"context"
	"testing"
	"time"

	"satoru/internal/domain/entity"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/repository"
	"satoru/internal/domain/service"
	"satoru/internal/errors"
	mockSvc "satoru/internal/mocks/service"
	"satoru/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service             *userService
	repos               *repoMocks
	hasher              *mockSvc.MockPasswordHasher
	tokenService        *mockSvc.MockTokenService
	googleAuthService   *mockSvc.MockOAuthAuthService
	firebaseAuthService *mockSvc.MockOAuthAuthService
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	repos := newRepoMocks(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleAuthService := mockSvc.NewMockOAuthAuthService(t)
	firebaseAuthService := mockSvc.NewMockOAuthAuthService(t)

	svc := NewUserService(UserServiceParams{
		TxManager:           repos.txManager,
		RefreshTokenRepo:    repos.refreshRepo,
		Hasher:              hasher,
		TokenService:        tokenService,
		GoogleAuthService:   googleAuthService,
		FirebaseAuthService: firebaseAuthService,
		Config:              newTestConfig(maxActiveSessions),
		Logger:              newDiscardLogger(),
	}).(*userService)
	svc.now = func() time.Time { return testNow }

	return userServiceFixtures{
		service:             svc,
		repos:               repos,
		hasher:              hasher,
		tokenService:        tokenService,
		googleAuthService:   googleAuthService,
		firebaseAuthService: firebaseAuthService,
	}
}

// expectSessionIssued wires token generation and refresh-token storage for userID.
func (f userServiceFixtures) expectSessionIssued(ctx context.Context, userID any) {
	f.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)
	f.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	f.repos.refreshRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.TokenHash == "refresh-hash" && token.ExpiresAt.Equal(testNow.Add(7*24*time.Hour))
		})).
		Return(nil)
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.expectTx()

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}
	newID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(nil, repository.ErrAuthNotFound)
	fx.repos.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.repos.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = newID
		}).
		Return(nil)
	fx.repos.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.UserID == newID && auth.PasswordHash == "hashed_password" && auth.Provider == entity.ProviderTypeEmail
		})).
		Return(nil)
	fx.expectSessionIssued(ctx, newID)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.ProviderTypeEmail, output.User.AuthMethod)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.expectTx()

	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: "Test", Email: "taken@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterUser_EmailOwnedByOAuthAccount(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.expectTx()

	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: "Test", Email: "oauth@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(nil, repository.ErrAuthNotFound)
	fx.repos.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.RegisterUser(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: "Test", Email: "weak@example.com", Password: "short"}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(domainerrors.ErrPasswordStrength.WithDetails("password must be at least 8 characters"))

	_, err := fx.service.RegisterUser(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.expectTx()

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "test@example.com", Password: "Password123!"}
	user := &entity.User{ID: uuid.New(), Email: input.Email}

	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)
	fx.expectSessionIssued(ctx, user.ID)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Same(t, user, output.User)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.expectTx()

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "test@example.com", Password: "wrong"}
	user := &entity.User{ID: uuid.New(), Email: input.Email}

	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.expectTx()

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"}

	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(nil, repository.ErrAuthNotFound)

	_, err := fx.service.Login(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_SessionLimitExceeded(t *testing.T) {
	fx := createTestUserService(t, 2)
	fx.repos.expectTx()

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "busy@example.com", Password: "Password123!"}
	user := &entity.User{ID: uuid.New(), Email: input.Email}

	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)
	fx.repos.refreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx, user.ID).Return(nil)
	fx.repos.refreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, user.ID).Return(2, nil)

	_, err := fx.service.Login(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
}

func TestUserService_Login_UnderSessionLimit(t *testing.T) {
	fx := createTestUserService(t, 2)
	fx.repos.expectTx()

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ok@example.com", Password: "Password123!"}
	user := &entity.User{ID: uuid.New(), Email: input.Email}

	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)
	fx.repos.refreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx, user.ID).Return(nil)
	fx.repos.refreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, user.ID).Return(1, nil)
	fx.expectSessionIssued(ctx, user.ID)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestUserService_GoogleSignIn_CreatesUser(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.expectTx()

	ctx := context.Background()
	oauthUser := &service.OAuthUser{
		ID:            "google-sub",
		Email:         "new@example.com",
		Name:          "New User",
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     "https://example.com/a.png",
		EmailVerified: true,
	}
	newID := uuid.New()

	fx.googleAuthService.EXPECT().GetProvider().Return(entity.ProviderTypeGoogle)
	fx.googleAuthService.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub").
		Return(nil, repository.ErrAuthNotFound)
	fx.repos.userRepo.EXPECT().FindByEmail(ctx, oauthUser.Email).Return(nil, repository.ErrUserNotFound)
	fx.repos.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.AuthMethod == entity.ProviderTypeGoogle && user.EmailVerified && user.PictureURL == oauthUser.AvatarURL
		})).
		Run(func(_ context.Context, user *entity.User) { user.ID = newID }).
		Return(nil)
	fx.repos.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.UserID == newID && auth.ProviderUserID == "google-sub" && auth.PasswordHash == ""
		})).
		Return(nil)
	fx.expectSessionIssued(ctx, newID)

	output, err := fx.service.GoogleSignIn(ctx, &usecase.OAuthSignInInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, "New User", output.User.Name)
}

func TestUserService_FirebaseSignIn_ExistingIdentity(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.expectTx()

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "known@example.com"}
	oauthUser := &service.OAuthUser{ID: "firebase-uid", Email: user.Email, Provider: entity.ProviderTypeFirebase}

	fx.firebaseAuthService.EXPECT().GetProvider().Return(entity.ProviderTypeFirebase)
	fx.firebaseAuthService.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeFirebase, "firebase-uid").
		Return(&entity.Authentication{UserID: user.ID}, nil)
	fx.repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.expectSessionIssued(ctx, user.ID)

	output, err := fx.service.FirebaseSignIn(ctx, &usecase.OAuthSignInInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Same(t, user, output.User)
}

func TestUserService_GoogleSignIn_LinksExistingEmail(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.expectTx()

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "linked@example.com", Name: "Kept Name"}
	oauthUser := &service.OAuthUser{
		ID:            "google-sub",
		Email:         user.Email,
		Name:          "Google Name",
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     "https://example.com/p.png",
		EmailVerified: true,
	}

	fx.googleAuthService.EXPECT().GetProvider().Return(entity.ProviderTypeGoogle)
	fx.googleAuthService.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub").
		Return(nil, repository.ErrAuthNotFound)
	fx.repos.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.repos.userRepo.EXPECT().Update(ctx, user).Return(nil)
	fx.repos.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.UserID == user.ID && auth.Provider == entity.ProviderTypeGoogle
		})).
		Return(nil)
	fx.expectSessionIssued(ctx, user.ID)

	output, err := fx.service.GoogleSignIn(ctx, &usecase.OAuthSignInInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, "Kept Name", output.User.Name)
	assert.Equal(t, "https://example.com/p.png", output.User.PictureURL)
	assert.True(t, output.User.EmailVerified)
}

func TestUserService_GoogleSignIn_InvalidToken(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()

	fx.googleAuthService.EXPECT().GetProvider().Return(entity.ProviderTypeGoogle)
	fx.googleAuthService.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, domainerrors.ErrOAuthTokenInvalid)

	_, err := fx.service.GoogleSignIn(ctx, &usecase.OAuthSignInInput{IDToken: "bad"})

	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestUserService_RefreshToken(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		session *entity.RefreshToken
		findErr error
		wantErr error
	}{
		{
			name:    "valid session",
			session: &entity.RefreshToken{UserID: userID, ExpiresAt: testNow.Add(time.Hour)},
		},
		{
			name:    "unknown session",
			findErr: repository.ErrRefreshTokenNotFound,
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
		{
			name:    "expired session",
			session: &entity.RefreshToken{UserID: userID, ExpiresAt: testNow.Add(-time.Minute)},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
		{
			name:    "session of another user",
			session: &entity.RefreshToken{UserID: uuid.New(), ExpiresAt: testNow.Add(time.Hour)},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t, 0)
			ctx := context.Background()

			fx.tokenService.EXPECT().
				ValidateRefreshToken("refresh-token").
				Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
			fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
			fx.repos.refreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(tt.session, tt.findErr)
			if tt.wantErr == nil {
				fx.tokenService.EXPECT().GenerateAccessToken(userID).Return("new-access", nil)
			}

			output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, output)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "new-access", output.AccessToken)
		})
	}
}

func TestUserService_RefreshToken_RejectsAccessToken(t *testing.T) {
	fx := createTestUserService(t, 0)

	fx.tokenService.EXPECT().
		ValidateRefreshToken("access-token").
		Return(nil, errors.New("token type mismatch"))

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "access-token"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_DeletesEvenInvalidToken(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("stale").Return(nil, errors.New("expired"))
	fx.tokenService.EXPECT().HashToken("stale").Return("stale-hash")
	fx.repos.refreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "stale-hash").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "stale"})

	assert.NoError(t, err)
}

func TestUserService_Logout_DatabaseError(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to delete refresh token")

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.repos.refreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(dbErr)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete refresh token")
}
