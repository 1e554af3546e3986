package router

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"satoru/config"
	"satoru/internal/delivery/api/middleware"
	"satoru/internal/delivery/api/router/handler"
	"satoru/internal/delivery/api/validator"
	"satoru/internal/delivery/push"
	"satoru/internal/domain/entity"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/service"
	mockSvc "satoru/internal/mocks/service"
	mockUC "satoru/internal/mocks/usecase"
	"satoru/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAccessToken = "access-token"

// recordingHub stands in for the realtime hub and remembers attached users.
type recordingHub struct {
	mu       sync.Mutex
	attached []uuid.UUID
}

func (h *recordingHub) Attach(conn *websocket.Conn, userID uuid.UUID) error {
	h.mu.Lock()
	h.attached = append(h.attached, userID)
	h.mu.Unlock()

	return conn.Close()
}

func (h *recordingHub) users() []uuid.UUID {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]uuid.UUID(nil), h.attached...)
}

type testServer struct {
	echo         *echo.Echo
	userID       uuid.UUID
	userUC       *mockUC.MockUserUsecase
	profileUC    *mockUC.MockProfileUsecase
	documentUC   *mockUC.MockDocumentUsecase
	processingUC *mockUC.MockProcessingUsecase
	notifyUC     *mockUC.MockNotificationUsecase
	tokenSvc     *mockSvc.MockTokenService
	hub          *recordingHub
}

func newTestServer(t *testing.T, requireToken bool) *testServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		PubSub:    &config.PubSubConfig{},
		Documents: &config.DocumentsConfig{MaxUploadSize: 1 << 10},
		Realtime:  &config.RealtimeConfig{RequireToken: requireToken},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	ts := &testServer{
		userID:       uuid.New(),
		userUC:       mockUC.NewMockUserUsecase(t),
		profileUC:    mockUC.NewMockProfileUsecase(t),
		documentUC:   mockUC.NewMockDocumentUsecase(t),
		processingUC: mockUC.NewMockProcessingUsecase(t),
		notifyUC:     mockUC.NewMockNotificationUsecase(t),
		tokenSvc:     mockSvc.NewMockTokenService(t),
		hub:          &recordingHub{},
	}
	ts.tokenSvc.EXPECT().
		ValidateAccessToken(testAccessToken).
		Return(&service.Claims{UserID: ts.userID, Type: service.TokenTypeAccess}, nil).
		Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler: handler.NewAuthHandler(ts.userUC, logger),
		UserHandler: handler.NewUserHandler(ts.profileUC),
		DocumentHandler: handler.NewDocumentHandler(handler.DocumentHandlerParams{
			DocumentUC:   ts.documentUC,
			ProcessingUC: ts.processingUC,
			Config:       cfg,
			Logger:       logger,
		}),
		RealtimeHandler: handler.NewRealtimeHandler(handler.RealtimeHandlerParams{
			Hub:      ts.hub,
			TokenSvc: ts.tokenSvc,
			Config:   cfg,
			Logger:   logger,
		}),
		UpdateHandler:  handler.NewUpdateHandler(ts.notifyUC, push.NewVerifier(cfg), logger),
		AuthMiddleware: middleware.NewAuthMiddleware(ts.tokenSvc, logger),
		Config:         cfg,
	}).RegisterRoutes(e)
	ts.echo = e

	return ts
}

func (ts *testServer) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testAccessToken)
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func (ts *testServer) doJSON(method, path, body string) *httptest.ResponseRecorder {
	return ts.do(method, path, strings.NewReader(body), echo.MIMEApplicationJSON)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestRouter_Health(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}

func TestRouter_Login(t *testing.T) {
	ts := newTestServer(t, false)
	user := &entity.User{ID: ts.userID, Email: "ann@example.com", Name: "Ann", AuthMethod: entity.ProviderTypeEmail}

	ts.userUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ann@example.com", Password: "Password1!"}).
		Return(&usecase.LoginOutput{AccessToken: "A1", RefreshToken: "R1", User: user}, nil)

	rec := ts.doJSON(http.MethodPost, "/api/auth/login/", `{"email":"ann@example.com","password":"Password1!"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		User   map[string]any    `json:"user"`
		Tokens map[string]string `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.Equal(t, map[string]string{"access": "A1", "refresh": "R1"}, body.Tokens)
	assert.Equal(t, "ann@example.com", body.User["email"])
}

func TestRouter_Login_InvalidCredentials(t *testing.T) {
	ts := newTestServer(t, false)

	ts.userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := ts.doJSON(http.MethodPost, "/api/auth/login/", `{"email":"ann@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Error.Code)
}

func TestRouter_Register_ValidationFailure(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.doJSON(http.MethodPost, "/api/auth/register/", `{"name":"","email":"nope","password":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "email")
	assert.Contains(t, env.Error.Details, "name")
}

func TestRouter_RefreshToken(t *testing.T) {
	ts := newTestServer(t, false)

	ts.userUC.EXPECT().
		RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "R1"}).
		Return(&usecase.RefreshTokenOutput{AccessToken: "A2"}, nil)

	rec := ts.doJSON(http.MethodPost, "/api/auth/token/refresh/", `{"refresh":"R1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access":"A2"}`, string(decode(t, rec).Data))
}

func TestRouter_DocumentsRequireAuth(t *testing.T) {
	ts := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/documents/", nil)
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ListDocuments(t *testing.T) {
	ts := newTestServer(t, false)
	doc := &entity.Document{ID: uuid.New(), UserID: ts.userID, Title: "Notes", Status: entity.DocumentStatusCompleted, CreatedAt: time.Now()}

	ts.documentUC.EXPECT().List(mock.Anything, ts.userID).Return([]*entity.Document{doc}, nil)

	rec := ts.do(http.MethodGet, "/api/documents/", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var docs []service.DocumentView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, doc.ID.String(), docs[0].ID)
	assert.Equal(t, "completed", docs[0].Status)
}

func TestRouter_UploadDocument(t *testing.T) {
	ts := newTestServer(t, false)
	pdf := []byte("%PDF-1.4 tiny")

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "notes.pdf")
	require.NoError(t, err)
	_, err = part.Write(pdf)
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("title", "My notes"))
	require.NoError(t, writer.Close())

	ts.documentUC.EXPECT().
		Upload(mock.Anything, mock.MatchedBy(func(input *usecase.UploadDocumentInput) bool {
			return input.UserID == ts.userID && input.Title == "My notes" && input.FileName == "notes.pdf" && bytes.Equal(input.Data, pdf)
		})).
		Return(&entity.Document{ID: uuid.New(), UserID: ts.userID, Title: "My notes", Status: entity.DocumentStatusProcessing}, nil)

	rec := ts.do(http.MethodPost, "/api/documents/", &body, writer.FormDataContentType())

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, string(decode(t, rec).Data), `"status":"processing"`)
}

func TestRouter_UploadDocument_MissingFile(t *testing.T) {
	ts := newTestServer(t, false)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("title", "nothing"))
	require.NoError(t, writer.Close())

	rec := ts.do(http.MethodPost, "/api/documents/", &body, writer.FormDataContentType())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NO_FILE", decode(t, rec).Error.Code)
}

func TestRouter_GetDocument_Forbidden(t *testing.T) {
	ts := newTestServer(t, false)
	documentID := uuid.New()

	ts.documentUC.EXPECT().Get(mock.Anything, ts.userID, documentID).Return(nil, domainerrors.ErrDocumentForbidden)

	rec := ts.do(http.MethodGet, "/api/documents/"+documentID.String()+"/", nil, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_GetDocument_InvalidID(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(http.MethodGet, "/api/documents/not-a-uuid/", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_DeleteDocument(t *testing.T) {
	ts := newTestServer(t, false)
	documentID := uuid.New()

	ts.documentUC.EXPECT().Delete(mock.Anything, ts.userID, documentID).Return(nil)

	rec := ts.do(http.MethodDelete, "/api/documents/"+documentID.String()+"/", nil, "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_DownloadDocumentFile(t *testing.T) {
	ts := newTestServer(t, false)
	documentID := uuid.New()
	data := []byte("%PDF-1.7 body")

	ts.documentUC.EXPECT().DownloadFile(mock.Anything, ts.userID, documentID).Return(&usecase.DocumentFile{
		FileName:    "Lecture Notes.pdf",
		ContentType: "application/pdf",
		Data:        data,
	}, nil)

	rec := ts.do(http.MethodGet, "/api/documents/"+documentID.String()+"/file/", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `inline; filename="Lecture Notes.pdf"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, data, rec.Body.Bytes())
}

func TestRouter_DownloadDocumentFile_Forbidden(t *testing.T) {
	ts := newTestServer(t, false)
	documentID := uuid.New()

	ts.documentUC.EXPECT().DownloadFile(mock.Anything, ts.userID, documentID).Return(nil, domainerrors.ErrDocumentForbidden)

	rec := ts.do(http.MethodGet, "/api/documents/"+documentID.String()+"/file/", nil, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_RegenerateFlashcards(t *testing.T) {
	ts := newTestServer(t, false)
	documentID := uuid.New()
	cards := []*entity.Flashcard{{ID: uuid.New(), Question: "Q", Answer: "A", Difficulty: entity.DifficultyHard, Order: 1}}

	ts.processingUC.EXPECT().RegenerateFlashcards(mock.Anything, ts.userID, documentID, 15).Return(cards, nil)

	rec := ts.doJSON(http.MethodPost, "/api/documents/"+documentID.String()+"/regenerate_flashcards/", `{"count":15}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "hard", got[0]["difficulty"])
}

func TestRouter_Stats(t *testing.T) {
	ts := newTestServer(t, false)

	ts.documentUC.EXPECT().Stats(mock.Anything, ts.userID).Return(&entity.DocumentStats{TotalDocuments: 2, Completed: 1, Processing: 1, TotalFlashcards: 20}, nil)

	rec := ts.do(http.MethodGet, "/api/documents/stats/", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"total_documents":2,"completed":1,"processing":1,"failed":0,"total_pages":0,"total_flashcards":20}`,
		string(decode(t, rec).Data))
}

func TestRouter_PubSubUpdates(t *testing.T) {
	ts := newTestServer(t, false)
	event := &service.DocumentEvent{
		Type:       service.DocumentEventUpdated,
		DocumentID: "7",
		UserID:     ts.userID.String(),
		Document:   &service.DocumentView{ID: "7", Status: "completed"},
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg push.Message
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	ts.notifyUC.EXPECT().
		DeliverDocumentUpdate(mock.Anything, mock.MatchedBy(func(got *service.DocumentEvent) bool {
			return got.DocumentID == "7" && got.Document.Status == "completed"
		})).
		Return(nil)

	rec := ts.do(http.MethodPost, "/internal/pubsub/updates", bytes.NewReader(body), echo.MIMEApplicationJSON)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_PubSubUpdates_Malformed(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.doJSON(http.MethodPost, "/internal/pubsub/updates", `{"message":{"data":"%%%"}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func dialWS(t *testing.T, ts *testServer, query string) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(ts.echo)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/documents/" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func readCloseCode(t *testing.T, conn *websocket.Conn) int {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()

	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)

	return closeErr.Code
}

func TestRouter_WebSocket_Subscribe(t *testing.T) {
	ts := newTestServer(t, false)

	dialWS(t, ts, "?user_id="+ts.userID.String())

	require.Eventually(t, func() bool { return len(ts.hub.users()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, ts.userID, ts.hub.users()[0])
}

func TestRouter_WebSocket_MissingUserIDIsClosed(t *testing.T) {
	ts := newTestServer(t, false)

	conn := dialWS(t, ts, "")

	assert.Equal(t, websocket.ClosePolicyViolation, readCloseCode(t, conn))
	assert.Empty(t, ts.hub.users())
}

func TestRouter_WebSocket_RequireToken(t *testing.T) {
	ts := newTestServer(t, true)
	ts.tokenSvc.EXPECT().ValidateAccessToken("stolen").Return(&service.Claims{UserID: uuid.New()}, nil)

	conn := dialWS(t, ts, "?user_id="+ts.userID.String()+"&token=stolen")
	assert.Equal(t, websocket.ClosePolicyViolation, readCloseCode(t, conn))

	dialWS(t, ts, "?user_id="+ts.userID.String()+"&token="+testAccessToken)
	require.Eventually(t, func() bool { return len(ts.hub.users()) == 1 }, time.Second, 10*time.Millisecond)
}

