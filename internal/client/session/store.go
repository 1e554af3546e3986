package session

import "sync"

// Tokens is the credential pair held by a signed-in client.
type Tokens struct {
	Access  string
	Refresh string
}

// Store holds the current credential pair. Writes replace the pair as a whole,
// so a reader never observes a half-updated session.
type Store struct {
	mu     sync.RWMutex
	tokens Tokens
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// CurrentAccessToken returns the access token, or "" when signed out.
func (s *Store) CurrentAccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tokens.Access
}

// RefreshToken returns the refresh token, or "" when none is held.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tokens.Refresh
}

// Tokens returns a copy of the credential pair.
func (s *Store) Tokens() Tokens {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tokens
}

// SetTokens replaces both tokens.
func (s *Store) SetTokens(access, refresh string) {
	s.mu.Lock()
	s.tokens = Tokens{Access: access, Refresh: refresh}
	s.mu.Unlock()
}

// setAccessToken replaces the access token and keeps the refresh token.
func (s *Store) setAccessToken(access string) {
	s.mu.Lock()
	s.tokens.Access = access
	s.mu.Unlock()
}

// Clear forgets both tokens.
func (s *Store) Clear() {
	s.mu.Lock()
	s.tokens = Tokens{}
	s.mu.Unlock()
}

// SignedIn reports whether any credential is held.
func (s *Store) SignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tokens.Access != "" || s.tokens.Refresh != ""
}
