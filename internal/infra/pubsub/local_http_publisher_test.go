package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"satoru/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_RoutesByEventType(t *testing.T) {
	var processingHits, updateHits atomic.Int32
	var received PushMessage

	processing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		processingHits.Add(1)
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		w.WriteHeader(http.StatusOK)
	}))
	defer processing.Close()

	updates := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		updateHits.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer updates.Close()

	publisher := NewLocalHTTPPublisher(Routes{Processing: processing.URL, Updates: updates.URL}, slog.Default())

	event := &service.DocumentEvent{
		RequestID:  "req-1",
		Type:       service.DocumentEventUploaded,
		DocumentID: "doc-1",
		UserID:     "user-1",
	}
	require.NoError(t, publisher.PublishDocumentEvent(context.Background(), event))
	require.NoError(t, publisher.PublishDocumentEvent(context.Background(), &service.DocumentEvent{
		Type: service.DocumentEventUpdated, DocumentID: "doc-1", UserID: "user-1",
	}))

	assert.Equal(t, int32(1), processingHits.Load())
	assert.Equal(t, int32(1), updateHits.Load())

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.DocumentEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
	assert.Equal(t, "document.uploaded", received.Message.Attributes["type"])
}

func TestLocalHTTPPublisher_Failures(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	publisher := NewLocalHTTPPublisher(Routes{Processing: failing.URL}, slog.Default())

	err := publisher.PublishDocumentEvent(context.Background(), &service.DocumentEvent{Type: service.DocumentEventUploaded})
	assert.Error(t, err)

	// No updates route configured: dropped silently.
	assert.NoError(t, publisher.PublishDocumentEvent(context.Background(), &service.DocumentEvent{Type: service.DocumentEventUpdated}))

	assert.Error(t, publisher.PublishDocumentEvent(context.Background(), &service.DocumentEvent{Type: "document.renamed"}))
}
