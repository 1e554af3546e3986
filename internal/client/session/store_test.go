package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	timeout = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func TestStore(t *testing.T) {
	s := NewStore()
	assert.False(t, s.SignedIn())

	s.SetTokens("A1", "R1")
	assert.True(t, s.SignedIn())
	assert.Equal(t, "A1", s.CurrentAccessToken())
	assert.Equal(t, "R1", s.RefreshToken())

	s.setAccessToken("A2")
	assert.Equal(t, Tokens{Access: "A2", Refresh: "R1"}, s.Tokens())

	s.Clear()
	assert.Equal(t, Tokens{}, s.Tokens())
	assert.False(t, s.SignedIn())
}

func TestStore_ReadersNeverSeeMixedPairs(t *testing.T) {
	s := NewStore()
	s.SetTokens("A1", "R1")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 1000 {
			s.SetTokens("A1", "R1")
			s.SetTokens("A2", "R2")
		}
	}()
	go func() {
		defer wg.Done()
		for range 1000 {
			tokens := s.Tokens()
			ok := tokens == Tokens{Access: "A1", Refresh: "R1"} || tokens == Tokens{Access: "A2", Refresh: "R2"}
			assert.True(t, ok, "mixed pair %+v", tokens)
		}
	}()
	wg.Wait()
}
