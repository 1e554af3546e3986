package worker

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"satoru/config"
	"satoru/internal/delivery/push"
	"satoru/internal/delivery/worker/handler"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/service"
	"satoru/internal/errors"
	mockUC "satoru/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) (*echo.Echo, *mockUC.MockProcessingUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{PubSub: &config.PubSubConfig{}}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	processingUC := mockUC.NewMockProcessingUsecase(t)
	e := NewEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Verifier:     push.NewVerifier(cfg),
			Logger:       logger,
			ProcessingUC: processingUC,
		}),
	})

	return e, processingUC
}

func pushBody(t *testing.T, event *service.DocumentEvent) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg push.Message
	msg.Message.MessageID = "m-1"
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func post(e *echo.Echo, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestWorker_Health(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWorker_Push(t *testing.T) {
	documentID := uuid.New()
	uploaded := &service.DocumentEvent{
		RequestID:  "req-1",
		Type:       service.DocumentEventUploaded,
		DocumentID: documentID.String(),
		UserID:     uuid.NewString(),
	}

	tests := []struct {
		name     string
		body     func(t *testing.T) []byte
		setup    func(m *mockUC.MockProcessingUsecase)
		wantCode int
	}{
		{
			name: "processed",
			body: func(t *testing.T) []byte { return pushBody(t, uploaded) },
			setup: func(m *mockUC.MockProcessingUsecase) {
				m.EXPECT().ProcessDocument(mock.Anything, documentID).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name: "database failure is redelivered",
			body: func(t *testing.T) []byte { return pushBody(t, uploaded) },
			setup: func(m *mockUC.MockProcessingUsecase) {
				m.EXPECT().ProcessDocument(mock.Anything, documentID).
					Return(domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "failed to find document"))
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "summarizer failure is acknowledged",
			body: func(t *testing.T) []byte { return pushBody(t, uploaded) },
			setup: func(m *mockUC.MockProcessingUsecase) {
				m.EXPECT().ProcessDocument(mock.Anything, documentID).Return(domainerrors.ErrSummarizerFailed)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "update events are ignored",
			body: func(t *testing.T) []byte {
				return pushBody(t, &service.DocumentEvent{Type: service.DocumentEventUpdated, DocumentID: documentID.String()})
			},
			wantCode: http.StatusNoContent,
		},
		{
			name: "invalid document id",
			body: func(t *testing.T) []byte {
				return pushBody(t, &service.DocumentEvent{Type: service.DocumentEventUploaded, DocumentID: "42"})
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "payload is not base64",
			body:     func(*testing.T) []byte { return []byte(`{"message":{"data":"%%%"}}`) },
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "body is not json",
			body:     func(*testing.T) []byte { return []byte(`not json`) },
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, processingUC := newTestEcho(t)
			if tt.setup != nil {
				tt.setup(processingUC)
			}

			rec := post(e, tt.body(t))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
