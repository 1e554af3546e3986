package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"satoru/config"
	"satoru/internal/domain/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T, cfg *config.RealtimeConfig) (*Hub, *httptest.Server) {
	t.Helper()

	hub := newHub(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
		if err != nil {
			http.Error(w, "bad user", http.StatusBadRequest)

			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = hub.Attach(conn, userID)
	}))
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})

	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, userID uuid.UUID) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?user_id=" + userID.String()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func waitForConnections(t *testing.T, hub *Hub, userID uuid.UUID, n int) {
	t.Helper()

	require.Eventually(t, func() bool {
		return hub.ConnectionCount(userID) == n
	}, 2*time.Second, 10*time.Millisecond)
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame Frame
	require.NoError(t, json.Unmarshal(data, &frame))

	return frame
}

func TestHub_NotifyFansOutToAllUserConnections(t *testing.T) {
	hub, srv := newTestHub(t, nil)
	userID := uuid.New()

	first := dial(t, srv, userID)
	second := dial(t, srv, userID)
	waitForConnections(t, hub, userID, 2)

	doc := &service.DocumentView{ID: "7", Title: "Graphs", Status: "completed"}
	require.NoError(t, hub.NotifyDocumentUpdate(context.Background(), userID, doc))

	for _, conn := range []*websocket.Conn{first, second} {
		frame := readFrame(t, conn)
		assert.Equal(t, "document_update", frame.Type)
		require.NotNil(t, frame.Document)
		assert.Equal(t, "7", frame.Document.ID)
		assert.Equal(t, "completed", frame.Document.Status)
	}
}

func TestHub_NotifyIsScopedToUser(t *testing.T) {
	hub, srv := newTestHub(t, nil)
	alice, bob := uuid.New(), uuid.New()

	aliceConn := dial(t, srv, alice)
	bobConn := dial(t, srv, bob)
	waitForConnections(t, hub, alice, 1)
	waitForConnections(t, hub, bob, 1)

	require.NoError(t, hub.NotifyDocumentUpdate(context.Background(), alice, &service.DocumentView{ID: "a"}))
	assert.Equal(t, "a", readFrame(t, aliceConn).Document.ID)

	require.NoError(t, bobConn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := bobConn.ReadMessage()
	assert.Error(t, err)
}

func TestHub_UnregistersOnPeerClose(t *testing.T) {
	hub, srv := newTestHub(t, nil)
	userID := uuid.New()

	conn := dial(t, srv, userID)
	waitForConnections(t, hub, userID, 1)

	require.NoError(t, conn.Close())
	waitForConnections(t, hub, userID, 0)
}

func TestHub_NotifyWithoutConnections(t *testing.T) {
	hub, _ := newTestHub(t, nil)

	err := hub.NotifyDocumentUpdate(context.Background(), uuid.New(), &service.DocumentView{ID: "1"})
	assert.NoError(t, err)
}

func TestHub_NotifyRequiresDocument(t *testing.T) {
	hub, _ := newTestHub(t, nil)

	err := hub.NotifyDocumentUpdate(context.Background(), uuid.New(), nil)
	assert.Error(t, err)
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	hub, srv := newTestHub(t, nil)
	userID := uuid.New()

	conn := dial(t, srv, userID)
	waitForConnections(t, hub, userID, 1)

	hub.Close()
	assert.Equal(t, 0, hub.ConnectionCount(userID))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
}

func TestClient_EnqueueReportsFullBuffer(t *testing.T) {
	c := &client{send: make(chan []byte, 1)}

	assert.True(t, c.enqueue([]byte("one")))
	assert.False(t, c.enqueue([]byte("two")))

	c.closeSend()
	c.closeSend()
	assert.False(t, c.enqueue([]byte("three")))
}

func TestNewHub_Defaults(t *testing.T) {
	hub := newHub(&config.RealtimeConfig{PongWait: 10 * time.Second, PingPeriod: time.Minute}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, 10*time.Second, hub.pongWait)
	assert.Equal(t, 9*time.Second, hub.pingPeriod)
	assert.Equal(t, defaultWriteWait, hub.writeWait)
	assert.Equal(t, defaultSendBufferSize, hub.bufferSize)
}
