// Package middleware holds the API-only echo middlewares.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "satoru/internal/delivery/context"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/service"
	"satoru/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and stores its user on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("authorization header is missing"))
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("invalid token format, must be Bearer token"))
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Access token rejected", slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("invalid or expired token"))
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}
