package handler

import (
	"net/http"

	"satoru/internal/delivery/api/response"
	deliverycontext "satoru/internal/delivery/context"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/errors"
	"satoru/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(profileUC usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{profileUC: profileUC}
}

// GetProfile handles the request to get the current user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// currentUserID returns the user set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return userID, nil
}
