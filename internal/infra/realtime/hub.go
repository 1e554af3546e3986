// Package realtime fans document updates out to users' WebSocket connections.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"satoru/config"
	deliverycontext "satoru/internal/delivery/context"
	"satoru/internal/domain/constants"
	"satoru/internal/domain/service"
	"satoru/internal/errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/fx"
)

const (
	defaultWriteWait      = 10 * time.Second
	defaultPongWait       = 60 * time.Second
	defaultSendBufferSize = 16

	// Clients only send control frames, so keep the read limit small.
	maxMessageSize = 4096
)

// ErrHubClosed is returned when attaching to a hub that has shut down.
var ErrHubClosed = errors.New("realtime hub closed")

// Frame is the message written to subscribers.
type Frame struct {
	Type     string               `json:"type"`
	Document *service.DocumentView `json:"document"`
}

type HubParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// Hub tracks live connections grouped by user.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*client]struct{}
	closed  bool

	writeWait  time.Duration
	pongWait   time.Duration
	pingPeriod time.Duration
	bufferSize int

	logger *slog.Logger
}

// NewHub builds a hub from the realtime config and closes it on shutdown.
func NewHub(params HubParams) *Hub {
	hub := newHub(params.Config.Realtime, params.Logger)

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			hub.Close()

			return nil
		},
	})

	return hub
}

func newHub(cfg *config.RealtimeConfig, logger *slog.Logger) *Hub {
	h := &Hub{
		clients:    make(map[uuid.UUID]map[*client]struct{}),
		writeWait:  defaultWriteWait,
		pongWait:   defaultPongWait,
		bufferSize: defaultSendBufferSize,
		logger:     logger.With(slog.String("component", "realtime_hub")),
	}
	if cfg != nil {
		if cfg.WriteWait > 0 {
			h.writeWait = cfg.WriteWait
		}
		if cfg.PongWait > 0 {
			h.pongWait = cfg.PongWait
		}
		if cfg.SendBufferSize > 0 {
			h.bufferSize = cfg.SendBufferSize
		}
		h.pingPeriod = cfg.PingPeriod
	}
	if h.pingPeriod <= 0 || h.pingPeriod >= h.pongWait {
		h.pingPeriod = (h.pongWait * 9) / 10
	}

	return h
}

// Attach registers an upgraded connection for userID and starts its pumps.
// The connection is closed when the peer goes away or the hub shuts down.
func (h *Hub) Attach(conn *websocket.Conn, userID uuid.UUID) error {
	c := &client{
		id:     uuid.NewString(),
		userID: userID,
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, h.bufferSize),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()

		return ErrHubClosed
	}
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*client]struct{})
	}
	h.clients[userID][c] = struct{}{}
	count := len(h.clients[userID])
	h.mu.Unlock()

	h.logger.Info("WebSocket connected",
		slog.String("user_id", userID.String()),
		slog.String("client_id", c.id),
		slog.Int("connections", count),
	)

	go c.writePump()
	go c.readPump()

	return nil
}

// NotifyDocumentUpdate sends a document_update frame to every connection of userID.
// Connections whose buffer is full are dropped.
func (h *Hub) NotifyDocumentUpdate(ctx context.Context, userID uuid.UUID, doc *service.DocumentView) error {
	if doc == nil {
		return errors.New("document is required")
	}

	payload, err := json.Marshal(Frame{Type: constants.DocumentUpdateFrameType, Document: doc})
	if err != nil {
		return errors.Wrap(err, "failed to marshal document update")
	}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	var slow []*client
	for _, c := range targets {
		if !c.enqueue(payload) {
			slow = append(slow, c)
		}
	}
	for _, c := range slow {
		h.unregister(c)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).DebugContext(ctx, "Document update fanned out",
		slog.String("user_id", userID.String()),
		slog.String("document_id", doc.ID),
		slog.Int("delivered", len(targets)-len(slow)),
		slog.Int("dropped", len(slow)),
	)

	return nil
}

// ConnectionCount reports how many live connections userID has.
func (h *Hub) ConnectionCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[userID])
}

// Close disconnects every client and rejects further attaches.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return
	}
	h.closed = true
	var all []*client
	for _, set := range h.clients {
		for c := range set {
			all = append(all, c)
		}
	}
	h.clients = make(map[uuid.UUID]map[*client]struct{})
	h.mu.Unlock()

	for _, c := range all {
		c.closeSend()
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	set, ok := h.clients[c.userID]
	if ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()

	c.closeSend()
}
