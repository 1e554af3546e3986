// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"satoru/internal/delivery/api/response"
	deliverycontext "satoru/internal/delivery/context"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/errors"
	"satoru/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves sign-in, sign-up and session endpoints.
type AuthHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// bindAndValidate binds the request body into req and runs its validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid request body"))
	}

	return errors.WithStack(c.Validate(req))
}

// Register handles email/password sign-up and signs the new user in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAuthResponse(output))
}

// Login handles email/password sign-in.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output))
}

// GoogleSignIn exchanges a Google ID token for a session.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req idTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.GoogleSignIn(c.Request().Context(), &usecase.OAuthSignInInput{IDToken: req.IDToken})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output))
}

// FirebaseSignIn exchanges a Firebase ID token for a session.
func (h *AuthHandler) FirebaseSignIn(c echo.Context) error {
	var req idTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.FirebaseSignIn(c.Request().Context(), &usecase.OAuthSignInInput{IDToken: req.IDToken})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output))
}

// RefreshToken issues a new access token for a stored refresh token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.Refresh})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accessResponse{Access: output.AccessToken})
}

// Logout deletes the session behind a refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.Refresh}); err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Session ended")

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

func newAuthResponse(output *usecase.LoginOutput) authResponse {
	return authResponse{
		User: newUserResponse(output.User),
		Tokens: tokensResponse{
			Access:  output.AccessToken,
			Refresh: output.RefreshToken,
		},
	}
}
