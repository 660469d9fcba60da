package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driven"
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
	"github.com/custodia-labs/tubedash/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService owns the session lifetime: allow-list check, initial
// consent, and sign-out. The token itself lives in the TokenStore.
type SessionService struct {
	allowList  driven.AllowList
	authorizer driven.Authorizer
	tokens     driven.TokenStore

	mu   sync.RWMutex
	user string
}

// NewSessionService creates a session service.
func NewSessionService(
	allowList driven.AllowList,
	authorizer driven.Authorizer,
	tokens driven.TokenStore,
) *SessionService {
	return &SessionService{
		allowList:  allowList,
		authorizer: authorizer,
		tokens:     tokens,
	}
}

// SignIn checks email against the allow-list, runs consent and stores the token.
func (s *SessionService) SignIn(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	if s.allowList == nil {
		return domain.ErrNotAllowed
	}
	allowed, err := s.allowList.IsAllowed(ctx, email)
	if err != nil {
		return fmt.Errorf("check allow-list: %w", err)
	}
	if !allowed {
		return domain.ErrNotAllowed
	}

	token, err := s.authorizer.Authorize(ctx)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	if token.IsZero() {
		return fmt.Errorf("sign in: %w", domain.ErrAuthorizationFailed)
	}

	s.tokens.Set(token)

	s.mu.Lock()
	s.user = email
	s.mu.Unlock()

	logger.Info("signed in as %s", email)
	return nil
}

// SignOut clears the token and the signed-in user.
func (s *SessionService) SignOut() {
	s.tokens.Clear()

	s.mu.Lock()
	s.user = ""
	s.mu.Unlock()
}

// CurrentUser returns the signed-in email, or "" if none.
func (s *SessionService) CurrentUser() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetCurrentUser records the user without running consent.
// Used when the session email is known from configuration and the
// token will be acquired lazily by the first fetch.
func (s *SessionService) SetCurrentUser(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = strings.ToLower(strings.TrimSpace(email))
}
