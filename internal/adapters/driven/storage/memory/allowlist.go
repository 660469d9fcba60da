package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/tubedash/internal/core/ports/driven"
)

// Ensure AllowList implements the interface.
var _ driven.AllowList = (*AllowList)(nil)

// AllowList is a static in-memory allow-list.
type AllowList struct {
	mu     sync.RWMutex
	emails map[string]struct{}
}

// NewAllowList creates an allow-list containing emails.
func NewAllowList(emails ...string) *AllowList {
	a := &AllowList{emails: make(map[string]struct{})}
	for _, e := range emails {
		a.Add(e)
	}
	return a
}

// Add allows an email.
func (a *AllowList) Add(email string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.emails[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
}

// IsAllowed reports whether email is on the list.
func (a *AllowList) IsAllowed(_ context.Context, email string) (bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.emails[strings.ToLower(strings.TrimSpace(email))]
	return ok, nil
}
