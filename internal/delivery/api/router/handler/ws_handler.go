package handler

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"satoru/config"
	deliverycontext "satoru/internal/delivery/context"
	"satoru/internal/domain/service"
	"satoru/internal/errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const closeWriteWait = time.Second

// ConnectionAttacher takes ownership of an upgraded connection for a user.
type ConnectionAttacher interface {
	Attach(conn *websocket.Conn, userID uuid.UUID) error
}

// RealtimeHandler upgrades document update subscriptions to WebSocket.
type RealtimeHandler struct {
	hub          ConnectionAttacher
	tokenSvc     service.TokenService
	requireToken bool
	upgrader     websocket.Upgrader
	logger       *slog.Logger
}

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	Hub      ConnectionAttacher
	TokenSvc service.TokenService
	Config   *config.Config
	Logger   *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler.
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	requireToken := params.Config.Realtime != nil && params.Config.Realtime.RequireToken
	allowOrigins := params.Config.HTTP.AllowOrigins

	return &RealtimeHandler{
		hub:          params.Hub,
		tokenSvc:     params.TokenSvc,
		requireToken: requireToken,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || len(allowOrigins) == 0 || slices.Contains(allowOrigins, "*") {
					return true
				}

				return slices.Contains(allowOrigins, origin)
			},
		},
		logger: params.Logger.With(slog.String("component", "realtime_handler")),
	}
}

// Subscribe handles GET /ws/documents/?user_id=<id>[&token=<access>].
// Connections without a usable subject are accepted and closed right away.
func (h *RealtimeHandler) Subscribe(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		logger.Warn("WebSocket upgrade failed", slog.Any("error", err))

		return nil
	}

	userID, err := h.subject(c)
	if err != nil {
		logger.Info("Rejecting WebSocket subscription", slog.Any("error", err))
		closeWithReason(conn, websocket.ClosePolicyViolation, err.Error())

		return nil
	}

	if err := h.hub.Attach(conn, userID); err != nil {
		logger.Warn("Failed to attach WebSocket", slog.Any("error", err))
	}

	return nil
}

// subject resolves the user the connection subscribes to.
func (h *RealtimeHandler) subject(c echo.Context) (uuid.UUID, error) {
	rawUserID := c.QueryParam("user_id")
	if rawUserID == "" {
		return uuid.Nil, errors.New("user_id is required")
	}

	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return uuid.Nil, errors.New("user_id is invalid")
	}

	if !h.requireToken {
		return userID, nil
	}

	claims, err := h.tokenSvc.ValidateAccessToken(c.QueryParam("token"))
	if err != nil {
		return uuid.Nil, errors.New("token is invalid")
	}
	if claims.UserID != userID {
		return uuid.Nil, errors.New("token does not match user_id")
	}

	return userID, nil
}

func closeWithReason(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteWait))
	_ = conn.Close()
}
