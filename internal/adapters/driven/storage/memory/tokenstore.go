package memory

import (
	"sync"

	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driven"
)

// Ensure TokenStore implements the interface.
var _ driven.TokenStore = (*TokenStore)(nil)

// TokenStore holds the session's access token in memory only.
// The token never outlives the process.
type TokenStore struct {
	mu    sync.RWMutex
	token domain.AccessToken
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Token returns the current token and whether one is present.
func (s *TokenStore) Token() (domain.AccessToken, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, !s.token.IsZero()
}

// Set replaces the current token.
func (s *TokenStore) Set(token domain.AccessToken) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear removes the current token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}
