// Package realtime keeps a WebSocket open to the document update endpoint and
// hands document updates to subscribers. The connection is re-established on a
// fixed delay for as long as a subject is retained.
package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"satoru/internal/client/observer"
	"satoru/internal/errors"

	"github.com/gorilla/websocket"
)

const (
	// DefaultReconnectDelay is the fixed pause before every reconnect attempt.
	DefaultReconnectDelay = 3 * time.Second

	// DocumentUpdateType is the frame type carrying a changed document.
	DocumentUpdateType = "document_update"

	defaultHandshakeTimeout = 10 * time.Second
	closeWriteWait          = time.Second
	endpointPath            = "/ws/documents/"
)

// State is the connection state of a Channel.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// DocumentUpdate carries the changed document exactly as the server sent it.
type DocumentUpdate struct {
	Document json.RawMessage
}

// Decode unmarshals the document into v.
func (u DocumentUpdate) Decode(v any) error {
	return errors.Wrap(json.Unmarshal(u.Document, v), "failed to decode document update")
}

type frame struct {
	Type     string          `json:"type"`
	Document json.RawMessage `json:"document"`
}

// Config configures a Channel.
type Config struct {
	// URL of the endpoint, e.g. ws://localhost:8080/ws/documents/.
	URL            string
	ReconnectDelay time.Duration
	Dialer         *websocket.Dialer
	Header         http.Header
	// AccessToken, when set and non-empty, is sent as the token query parameter.
	AccessToken func() string
	Logger      *slog.Logger
}

// Channel is a self-healing subscription to one subject's document updates.
// All methods are safe for concurrent use and never panic on transport errors.
type Channel struct {
	endpoint       *url.URL
	reconnectDelay time.Duration
	dialer         *websocket.Dialer
	header         http.Header
	accessToken    func() string
	logger         *slog.Logger

	mu         sync.Mutex
	state      State
	subject    string
	conn       *websocket.Conn
	generation uint64
	reconnect  *time.Timer
	cancelDial context.CancelFunc

	// announced is the last state handed to state observers; announcing is
	// set while one goroutine delivers state changes.
	announced  State
	announcing bool

	updates *observer.Registry[DocumentUpdate]
	states  *observer.Registry[State]
}

// NewChannel validates cfg and returns a disconnected channel.
func NewChannel(cfg Config) (*Channel, error) {
	endpoint, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid realtime URL %q", cfg.URL)
	}
	if endpoint.Scheme != "ws" && endpoint.Scheme != "wss" {
		return nil, errors.Errorf("realtime URL %q must use ws or wss", cfg.URL)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With(slog.String("component", "realtime_channel"))

	delay := cfg.ReconnectDelay
	if delay <= 0 {
		delay = DefaultReconnectDelay
	}

	dialer := cfg.Dialer
	if dialer == nil {
		dialer = &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: defaultHandshakeTimeout,
		}
	}

	return &Channel{
		endpoint:       endpoint,
		reconnectDelay: delay,
		dialer:         dialer,
		header:         cfg.Header,
		accessToken:    cfg.AccessToken,
		logger:         logger,
		updates:        observer.NewRegistry[DocumentUpdate](logger),
		states:         observer.NewRegistry[State](logger),
	}, nil
}

// EndpointFromBaseURL derives the realtime endpoint from the API base URL,
// e.g. https://api.example.com becomes wss://api.example.com/ws/documents/.
func EndpointFromBaseURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", errors.Wrapf(err, "invalid base URL %q", baseURL)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	default:
		return "", errors.Errorf("base URL %q must use http or https", baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/") + endpointPath
	u.RawQuery = ""

	return u.String(), nil
}

// OnUpdate registers cb for document updates. The returned function removes
// the registration and may be called any number of times.
func (c *Channel) OnUpdate(cb func(DocumentUpdate)) func() {
	return c.updates.Add(cb)
}

// OnStateChange registers cb for connection state transitions. Observers are
// called one at a time, and a state that was superseded before it could be
// delivered is skipped, so the last state observed is always the current one.
func (c *Channel) OnStateChange(cb func(State)) func() {
	return c.states.Add(cb)
}

// State returns the current connection state.
func (c *Channel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Subject returns the retained subject, or "" after Disconnect.
func (c *Channel) Subject() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.subject
}

// Connect starts connecting for subjectID. It is a no-op while a connection is
// open or being established; call Disconnect first to switch subjects.
func (c *Channel) Connect(subjectID string) {
	c.mu.Lock()
	if state := c.state; state != StateDisconnected {
		c.mu.Unlock()
		c.logger.Debug("Connect ignored", slog.String("state", state.String()))

		return
	}

	c.subject = subjectID
	c.stopReconnectLocked()
	gen, ctx := c.beginAttemptLocked()
	c.mu.Unlock()

	c.announce()
	go c.run(ctx, gen, subjectID)
}

// Disconnect cancels any pending reconnect, closes the connection, forgets the
// subject and removes every update subscriber.
func (c *Channel) Disconnect() {
	c.mu.Lock()
	c.subject = ""
	c.generation++
	c.stopReconnectLocked()
	if c.cancelDial != nil {
		c.cancelDial()
		c.cancelDial = nil
	}
	conn := c.conn
	c.conn = nil
	c.state = StateDisconnected
	c.mu.Unlock()

	if conn != nil {
		closeConn(conn)
	}
	c.updates.Clear()
	c.announce()
}

// announce delivers state changes until the announced state matches the
// current one. Only one goroutine delivers at a time; a call made while
// another is delivering returns at once and that goroutine picks the change up.
func (c *Channel) announce() {
	c.mu.Lock()
	if c.announcing {
		c.mu.Unlock()

		return
	}
	c.announcing = true

	for c.state != c.announced {
		state := c.state
		c.announced = state
		c.mu.Unlock()

		c.states.Notify(state)

		c.mu.Lock()
	}
	c.announcing = false
	c.mu.Unlock()
}

// beginAttemptLocked moves to Connecting under a fresh generation.
func (c *Channel) beginAttemptLocked() (uint64, context.Context) {
	c.generation++
	c.state = StateConnecting

	ctx, cancel := context.WithCancel(context.Background())
	c.cancelDial = cancel

	return c.generation, ctx
}

func (c *Channel) stopReconnectLocked() {
	if c.reconnect != nil {
		c.reconnect.Stop()
		c.reconnect = nil
	}
}

// run dials and, once open, reads until the connection ends.
func (c *Channel) run(ctx context.Context, gen uint64, subjectID string) {
	conn, resp, err := c.dialer.DialContext(ctx, c.target(subjectID), c.header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		if conn != nil {
			_ = conn.Close()
		}

		return
	}
	if c.cancelDial != nil {
		c.cancelDial()
		c.cancelDial = nil
	}

	if err != nil {
		c.logger.Warn("Realtime connection failed", slog.String("subject", subjectID), slog.Any("error", err))
		c.dropLocked()
		c.mu.Unlock()
		c.announce()

		return
	}

	c.state = StateOpen
	c.conn = conn
	c.stopReconnectLocked()
	c.mu.Unlock()

	c.logger.Info("Realtime connection open", slog.String("subject", subjectID))
	c.announce()

	c.read(gen, conn)
}

func (c *Channel) read(gen uint64, conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.closed(gen, err)

			return
		}
		c.dispatch(data)
	}
}

// closed handles the end of a connection that was not closed by Disconnect.
func (c *Channel) closed(gen uint64, err error) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()

		return
	}
	c.logger.Info("Realtime connection closed", slog.Any("error", err))
	_ = c.conn.Close()
	c.conn = nil
	c.dropLocked()
	c.mu.Unlock()

	c.announce()
}

// dropLocked moves to Disconnected and schedules a reconnect while a subject is retained.
func (c *Channel) dropLocked() {
	c.state = StateDisconnected
	if c.subject == "" {
		return
	}

	gen := c.generation
	c.stopReconnectLocked()
	c.reconnect = time.AfterFunc(c.reconnectDelay, func() { c.retry(gen) })
}

func (c *Channel) retry(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || c.subject == "" || c.state != StateDisconnected {
		c.mu.Unlock()

		return
	}
	c.reconnect = nil
	subjectID := c.subject
	next, ctx := c.beginAttemptLocked()
	c.mu.Unlock()

	c.logger.Debug("Reconnecting", slog.String("subject", subjectID))
	c.announce()
	c.run(ctx, next, subjectID)
}

// dispatch forwards document updates and drops everything else.
func (c *Channel) dispatch(data []byte) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		c.logger.Warn("Dropping malformed realtime frame", slog.Any("error", err))

		return
	}

	if f.Type != DocumentUpdateType || len(f.Document) == 0 || string(f.Document) == "null" {
		c.logger.Debug("Ignoring realtime frame", slog.String("type", f.Type))

		return
	}

	c.updates.Notify(DocumentUpdate{Document: f.Document})
}

func (c *Channel) target(subjectID string) string {
	u := *c.endpoint
	query := u.Query()
	query.Set("user_id", subjectID)
	if c.accessToken != nil {
		if token := c.accessToken(); token != "" {
			query.Set("token", token)
		}
	}
	u.RawQuery = query.Encode()

	return u.String()
}

func closeConn(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteWait))
	_ = conn.Close()
}
