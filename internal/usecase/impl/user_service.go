// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"satoru/config"
	deliverycontext "satoru/internal/delivery/context"
	"satoru/internal/domain/entity"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/repository"
	"satoru/internal/domain/service"
	"satoru/internal/errors"
	"satoru/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager           repository.TransactionManager
	refreshTokenRepo    repository.RefreshTokenRepository
	hasher              service.PasswordHasher
	tokenService        service.TokenService
	googleAuthService   service.OAuthAuthService
	firebaseAuthService service.OAuthAuthService
	maxActiveSessions   int
	now                 func() time.Time
	logger              *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager           repository.TransactionManager
	RefreshTokenRepo    repository.RefreshTokenRepository
	Hasher              service.PasswordHasher
	TokenService        service.TokenService
	GoogleAuthService   service.OAuthAuthService `name:"google"`
	FirebaseAuthService service.OAuthAuthService `name:"firebase"`
	Config              *config.Config
	Logger              *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:           params.TxManager,
		refreshTokenRepo:    params.RefreshTokenRepo,
		hasher:              params.Hasher,
		tokenService:        params.TokenService,
		googleAuthService:   params.GoogleAuthService,
		firebaseAuthService: params.FirebaseAuthService,
		maxActiveSessions:   maxActiveSessions,
		now:                 time.Now,
		logger:              params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates an email/password account and signs it in.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var output *usecase.LoginOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		// An OAuth account already owns this email.
		_, err = userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email is linked to another sign-in method")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		newUser := &entity.User{
			Name:       input.Name,
			Email:      input.Email,
			AuthMethod: entity.ProviderTypeEmail,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		output, err = srv.issueSession(ctx, repoFactory, newUser)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", output.User.ID))

	return output, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	var (
		authRecord   *entity.Authentication
		loggedInUser *entity.User
	)
	// Load from primary in a short transaction to avoid stale reads on replicas.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		authRecord, err = repoFactory.NewAuthRepository().FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find authentication")
		}

		loggedInUser, err = repoFactory.NewUserRepository().FindByID(ctx, authRecord.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load login user")
	}

	// bcrypt is CPU-bound, keep it outside the transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	var output *usecase.LoginOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		output, err = srv.issueSession(ctx, repoFactory, loggedInUser)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create session during login")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return output, nil
}

// GoogleSignIn signs in, or registers, the owner of a Google ID token.
func (srv *userService) GoogleSignIn(ctx context.Context, input *usecase.OAuthSignInInput) (*usecase.LoginOutput, error) {
	return srv.oauthSignIn(ctx, srv.googleAuthService, input.IDToken)
}

// FirebaseSignIn signs in, or registers, the owner of a Firebase ID token.
func (srv *userService) FirebaseSignIn(ctx context.Context, input *usecase.OAuthSignInInput) (*usecase.LoginOutput, error) {
	return srv.oauthSignIn(ctx, srv.firebaseAuthService, input.IDToken)
}

func (srv *userService) oauthSignIn(ctx context.Context, provider service.OAuthAuthService, idToken string) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Handling OAuth sign-in", slog.String("provider", provider.GetProvider().String()))

	oauthUser, err := provider.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to verify %s ID token", provider.GetProvider())
	}

	var output *usecase.LoginOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.findOrCreateOAuthUser(ctx, repoFactory, oauthUser)
		if err != nil {
			return err
		}

		output, err = srv.issueSession(ctx, repoFactory, user)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute OAuth sign-in transaction", slog.String("provider", oauthUser.Provider.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute OAuth sign-in transaction")
	}

	return output, nil
}

// findOrCreateOAuthUser resolves the account behind a verified OAuth identity.
// An existing account with the same email is linked instead of duplicated.
func (srv *userService) findOrCreateOAuthUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	authRepo := repoFactory.NewAuthRepository()
	userRepo := repoFactory.NewUserRepository()

	authRecord, err := authRepo.FindAuthentication(ctx, oauthUser.Provider, oauthUser.ID)
	if err == nil {
		user, err := userRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find user by id for OAuth sign-in")
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	user, err := userRepo.FindByEmail(ctx, oauthUser.Email)
	switch {
	case err == nil:
		srv.log(ctx).Info("Linking OAuth identity to existing user", slog.Any("userID", user.ID), slog.String("provider", oauthUser.Provider.String()))
		if srv.mergeOAuthProfile(user, oauthUser) {
			if err := userRepo.Update(ctx, user); err != nil {
				return nil, errors.Wrap(err, "failed to update user profile from OAuth identity")
			}
		}
	case errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Info("OAuth user not found, creating new user", slog.String("email", oauthUser.Email))
		user = &entity.User{
			Name:          oauthUser.Name,
			Email:         oauthUser.Email,
			PictureURL:    oauthUser.AvatarURL,
			AuthMethod:    oauthUser.Provider,
			EmailVerified: oauthUser.EmailVerified,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create user for OAuth sign-in")
		}
	default:
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	newAuth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       oauthUser.Provider,
		ProviderUserID: oauthUser.ID,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, errors.Wrap(err, "failed to create OAuth authentication")
	}

	return user, nil
}

// mergeOAuthProfile fills blanks in the stored profile and reports whether anything changed.
func (srv *userService) mergeOAuthProfile(user *entity.User, oauthUser *service.OAuthUser) bool {
	changed := false
	if user.Name == "" && oauthUser.Name != "" {
		user.Name = oauthUser.Name
		changed = true
	}
	if user.PictureURL == "" && oauthUser.AvatarURL != "" {
		user.PictureURL = oauthUser.AvatarURL
		changed = true
	}
	if !user.EmailVerified && oauthUser.EmailVerified {
		user.EmailVerified = true
		changed = true
	}

	return changed
}

// issueSession generates a token pair and stores the refresh token, enforcing the session limit.
func (srv *userService) issueSession(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User) (*usecase.LoginOutput, error) {
	refreshRepo := repoFactory.NewRefreshTokenRepository()

	if srv.maxActiveSessions > 0 {
		if err := refreshRepo.DeleteExpiredRefreshTokens(ctx, user.ID); err != nil {
			return nil, errors.Wrap(err, "failed to delete expired sessions")
		}

		activeSessions, err := refreshRepo.CountActiveSessionsByUserID(ctx, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= srv.maxActiveSessions {
			return nil, errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
		}
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.CreateRefreshToken(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken issues a new access token. The refresh token itself is not rotated;
// it must still be stored server-side and unexpired.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid.WithDetails(err.Error()), "invalid refresh token")
	}

	session, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if session.IsExpired(srv.now()) {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token expired")
	}
	if session.UserID != claims.UserID {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token owner mismatch")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout handles the process of invalidating a user's session by deleting their refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// The stored session is deleted either way.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}
