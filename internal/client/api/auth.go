// Package api is a typed client for the satoru REST API.
package api

import (
	"context"
	"net/http"
	"sync"

	"satoru/internal/client/observer"
	"satoru/internal/client/session"
	"satoru/internal/errors"
)

// SignInInput is checked before it is sent.
type SignInInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// SignUpInput is checked before it is sent.
type SignUpInput struct {
	Name            string `validate:"required,max=100"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

type authPayload struct {
	User   *User `json:"user"`
	Tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	} `json:"tokens"`
}

// AuthService signs users in and out and tracks the current session.
type AuthService struct {
	client *session.Client

	mu      sync.Mutex
	current *Session
	changes *observer.Registry[*Session]
}

// NewAuthService creates an AuthService. The session is dropped whenever the
// session client reports that the user has to sign in again.
func NewAuthService(client *session.Client) *AuthService {
	a := &AuthService{
		client:  client,
		changes: observer.NewRegistry[*Session](nil),
	}
	client.OnReauth(func(error) { a.setSession(nil) })

	return a
}

// Session returns the current session, or nil when signed out.
func (a *AuthService) Session() *Session {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.current
}

// OnSessionChange calls cb with the current session right away and again on
// every sign-in and sign-out. The returned function removes cb.
func (a *AuthService) OnSessionChange(cb func(*Session)) func() {
	remove := a.changes.Add(cb)
	cb(a.Session())

	return remove
}

// SignIn signs in with email and password.
func (a *AuthService) SignIn(ctx context.Context, input SignInInput) (*Session, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	return a.authenticate(ctx, "/api/auth/login/", map[string]string{
		"email":    input.Email,
		"password": input.Password,
	})
}

// SignUp registers a new account and signs it in.
func (a *AuthService) SignUp(ctx context.Context, input SignUpInput) (*Session, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	return a.authenticate(ctx, "/api/auth/register/", map[string]string{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
	})
}

// SignInWithGoogle exchanges a Google ID token for a session.
func (a *AuthService) SignInWithGoogle(ctx context.Context, idToken string) (*Session, error) {
	return a.signInWithIDToken(ctx, "/api/auth/google/", idToken)
}

// SignInWithFirebase exchanges a Firebase ID token for a session.
func (a *AuthService) SignInWithFirebase(ctx context.Context, idToken string) (*Session, error) {
	return a.signInWithIDToken(ctx, "/api/auth/firebase/", idToken)
}

func (a *AuthService) signInWithIDToken(ctx context.Context, path, idToken string) (*Session, error) {
	if idToken == "" {
		return nil, errors.Wrap(ErrInvalidInput, "id token is required")
	}

	return a.authenticate(ctx, path, map[string]string{"id_token": idToken})
}

func (a *AuthService) authenticate(ctx context.Context, path string, body any) (*Session, error) {
	req, err := session.NewJSONRequest(http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}
	req.SkipRefresh = true

	var payload authPayload
	if err := a.client.DoJSON(ctx, req, &payload); err != nil {
		return nil, err
	}
	if payload.User == nil || payload.Tokens.Access == "" {
		return nil, errors.New("sign-in response is missing the user or tokens")
	}

	a.client.Store().SetTokens(payload.Tokens.Access, payload.Tokens.Refresh)
	s := &Session{User: payload.User}
	a.setSession(s)

	return s, nil
}

// SignOut ends the session on the server. Local credentials are cleared even
// when the server call fails.
func (a *AuthService) SignOut(ctx context.Context) error {
	store := a.client.Store()
	refresh := store.RefreshToken()

	var err error
	if refresh != "" {
		var req *session.Request
		req, err = session.NewJSONRequest(http.MethodPost, "/api/auth/logout/", map[string]string{"refresh": refresh})
		if err == nil {
			req.SkipRefresh = true
			_, err = a.client.Do(ctx, req)
		}
	}

	store.Clear()
	a.setSession(nil)

	return err
}

// Profile fetches the signed-in user's profile.
func (a *AuthService) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := a.client.DoJSON(ctx, &session.Request{Method: http.MethodGet, Path: "/api/user/profile/"}, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Restore rebuilds the session from tokens already held in the store.
func (a *AuthService) Restore(ctx context.Context) (*Session, error) {
	if !a.client.Store().SignedIn() {
		return nil, session.ErrReauthRequired
	}

	user, err := a.Profile(ctx)
	if err != nil {
		return nil, err
	}

	s := &Session{User: user}
	a.setSession(s)

	return s, nil
}

func (a *AuthService) setSession(s *Session) {
	a.mu.Lock()
	changed := a.current != s
	a.current = s
	a.mu.Unlock()

	if changed {
		a.changes.Notify(s)
	}
}
