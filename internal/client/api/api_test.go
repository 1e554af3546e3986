package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"satoru/internal/client/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userJSON = `{"id":"u-1","email":"ann@example.com","name":"Ann","auth_method":"email","email_verified":false,"created_at":"2025-03-01T12:00:00Z"}`

type backend struct {
	mux   *http.ServeMux
	calls atomic.Int32
}

func newBackend() *backend {
	return &backend{mux: http.NewServeMux()}
}

func (b *backend) handle(pattern string, fn http.HandlerFunc) {
	b.mux.HandleFunc(pattern, fn)
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.calls.Add(1)
	b.mux.ServeHTTP(w, r)
}

func reply(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func newClient(t *testing.T, b *backend) *session.Client {
	t.Helper()

	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)

	client, err := session.NewClient(session.Config{BaseURL: srv.URL}, session.NewStore())
	require.NoError(t, err)

	return client
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body["password"] != "Password1!" {
		reply(w, http.StatusUnauthorized, `{"error":{"code":"INVALID_CREDENTIALS","message":"Invalid email or password"}}`)

		return
	}
	reply(w, http.StatusOK, `{"data":{"user":`+userJSON+`,"tokens":{"access":"A1","refresh":"R1"}}}`)
}

func TestAuthService_SignIn(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/auth/login/", loginHandler)
	client := newClient(t, b)
	auth := NewAuthService(client)

	var mu sync.Mutex
	var seen []*Session
	auth.OnSessionChange(func(s *Session) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})

	s, err := auth.SignIn(context.Background(), SignInInput{Email: "ann@example.com", Password: "Password1!"})

	require.NoError(t, err)
	assert.Equal(t, "u-1", s.User.ID)
	assert.Equal(t, session.Tokens{Access: "A1", Refresh: "R1"}, client.Store().Tokens())
	assert.Same(t, s, auth.Session())
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	assert.Nil(t, seen[0])
	assert.Same(t, s, seen[1])
}

func TestAuthService_SignInWrongPassword(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/auth/login/", loginHandler)
	b.handle("POST /api/auth/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		t.Error("sign-in must not refresh")
	})
	auth := NewAuthService(newClient(t, b))

	_, err := auth.SignIn(context.Background(), SignInInput{Email: "ann@example.com", Password: "nope"})

	var apiErr *session.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.Equal(t, "Invalid email or password", apiErr.DetailMessage())
	assert.Nil(t, auth.Session())
}

func TestAuthService_InputIsValidatedBeforeSending(t *testing.T) {
	b := newBackend()
	auth := NewAuthService(newClient(t, b))
	ctx := context.Background()

	_, err := auth.SignIn(ctx, SignInInput{Email: "not-an-email", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = auth.SignUp(ctx, SignUpInput{Name: "Ann", Email: "ann@example.com", Password: "Password1!", ConfirmPassword: "Password2!"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = auth.SignInWithGoogle(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, b.calls.Load())
}

func TestAuthService_SignUp(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/auth/register/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, map[string]string{"name": "Ann", "email": "ann@example.com", "password": "Password1!"}, body)
		reply(w, http.StatusCreated, `{"data":{"user":`+userJSON+`,"tokens":{"access":"A1","refresh":"R1"}}}`)
	})
	client := newClient(t, b)
	auth := NewAuthService(client)

	s, err := auth.SignUp(context.Background(), SignUpInput{Name: "Ann", Email: "ann@example.com", Password: "Password1!", ConfirmPassword: "Password1!"})

	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", s.User.Email)
	assert.True(t, client.Store().SignedIn())
}

func TestAuthService_SignOutClearsEvenWhenServerFails(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/auth/login/", loginHandler)
	b.handle("POST /api/auth/logout/", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusInternalServerError, `{"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`)
	})
	client := newClient(t, b)
	auth := NewAuthService(client)

	_, err := auth.SignIn(context.Background(), SignInInput{Email: "ann@example.com", Password: "Password1!"})
	require.NoError(t, err)

	err = auth.SignOut(context.Background())

	assert.True(t, session.IsStatus(err, http.StatusInternalServerError))
	assert.False(t, client.Store().SignedIn())
	assert.Nil(t, auth.Session())
}

func TestAuthService_SessionDroppedOnReauth(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/auth/login/", loginHandler)
	b.handle("GET /api/user/profile/", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusUnauthorized, `{"error":{"code":"UNAUTHORIZED","message":"Authentication required"}}`)
	})
	b.handle("POST /api/auth/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusUnauthorized, `{"error":{"code":"REFRESH_TOKEN_INVALID","message":"Invalid or expired refresh token"}}`)
	})
	auth := NewAuthService(newClient(t, b))

	_, err := auth.SignIn(context.Background(), SignInInput{Email: "ann@example.com", Password: "Password1!"})
	require.NoError(t, err)

	var last *Session
	changes := 0
	auth.OnSessionChange(func(s *Session) {
		last = s
		changes++
	})

	_, err = auth.Profile(context.Background())

	require.ErrorIs(t, err, session.ErrReauthRequired)
	assert.Nil(t, auth.Session())
	assert.Nil(t, last)
	assert.Equal(t, 2, changes)
}

func TestAuthService_Restore(t *testing.T) {
	b := newBackend()
	b.handle("GET /api/user/profile/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer A1", r.Header.Get("Authorization"))
		reply(w, http.StatusOK, `{"data":`+userJSON+`}`)
	})
	client := newClient(t, b)
	auth := NewAuthService(client)

	_, err := auth.Restore(context.Background())
	require.ErrorIs(t, err, session.ErrReauthRequired)

	client.Store().SetTokens("A1", "R1")
	s, err := auth.Restore(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Ann", s.User.Name)
}

func TestDocumentService_Upload(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/documents/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)

		assert.Equal(t, "Lecture Notes.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))
		assert.Equal(t, "%PDF-1.4", string(data))
		assert.Equal(t, "Lecture Notes", r.FormValue("title"))

		reply(w, http.StatusCreated, `{"data":{"id":"d-1","title":"Lecture Notes","file_name":"Lecture_Notes.pdf","status":"processing","created_at":"2025-03-01T12:00:00Z"}}`)
	})
	docs := NewDocumentService(newClient(t, b))

	doc, err := docs.Upload(context.Background(), UploadInput{FileName: "Lecture Notes.pdf", Content: strings.NewReader("%PDF-1.4")})

	require.NoError(t, err)
	assert.Equal(t, "d-1", doc.ID)
	assert.Equal(t, StatusProcessing, doc.Status)
	assert.False(t, doc.Done())
}

func TestDocumentService_UploadRejectsNonPDF(t *testing.T) {
	b := newBackend()
	docs := NewDocumentService(newClient(t, b))

	_, err := docs.Upload(context.Background(), UploadInput{FileName: "notes.txt", Content: strings.NewReader("hi")})

	assert.ErrorIs(t, err, ErrNotPDF)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, b.calls.Load())
}

func TestDocumentService_Endpoints(t *testing.T) {
	b := newBackend()
	b.handle("GET /api/documents/", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"data":[{"id":"d-1","status":"completed","pages":3,"created_at":"2025-03-01T12:00:00Z"}]}`)
	})
	b.handle("GET /api/documents/d-1/", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"data":{"id":"d-1","status":"completed","created_at":"2025-03-01T12:00:00Z",
			"summary":{"document_id":"d-1","summary":"About Go","key_points":["a"],"insights":[],"examples":[],"created_at":"2025-03-01T12:00:00Z"},
			"flashcards":[{"id":"f-1","question":"Q","answer":"A","difficulty":"easy","order":1}]}}`)
	})
	b.handle("DELETE /api/documents/d-1/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	b.handle("POST /api/documents/d-1/regenerate_flashcards/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]int
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, 15, body["count"])
		reply(w, http.StatusOK, `{"data":[{"id":"f-2","question":"Q2","answer":"A2","difficulty":"hard","order":1}]}`)
	})
	b.handle("GET /api/documents/stats/", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"data":{"total_documents":1,"completed":1,"processing":0,"failed":0,"total_pages":3,"total_flashcards":1}}`)
	})
	b.handle("GET /api/documents/d-1/file/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = io.WriteString(w, "%PDF-1.7")
	})
	b.handle("GET /api/documents/d-2/summary/", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusNotFound, `{"error":{"code":"SUMMARY_NOT_FOUND","message":"Summary not found"}}`)
	})
	docs := NewDocumentService(newClient(t, b))
	ctx := context.Background()

	list, err := docs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Done())

	detail, err := docs.Get(ctx, "d-1")
	require.NoError(t, err)
	assert.Equal(t, "About Go", detail.Summary.Summary)
	assert.Equal(t, "d-1", detail.ID)
	require.Len(t, detail.Flashcards, 1)

	cards, err := docs.RegenerateFlashcards(ctx, "d-1", 15)
	require.NoError(t, err)
	assert.Equal(t, "hard", cards[0].Difficulty)

	stats, err := docs.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalPages)

	pdf, err := docs.File(ctx, "d-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), pdf)

	require.NoError(t, docs.Delete(ctx, "d-1"))

	_, err = docs.Summary(ctx, "d-2")
	assert.True(t, session.IsStatus(err, http.StatusNotFound))

	_, err = docs.RegenerateFlashcards(ctx, "d-1", -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
