package driven

import "github.com/custodia-labs/tubedash/internal/core/domain"

// TokenStore holds the current access token for the session.
// It is the only shared mutable state of the analytics client and is
// written only by the fetcher and the session service.
//
// Reads during an in-flight authorisation must return the previous
// value, never a partially written one.
type TokenStore interface {
	// Token returns the current token and whether one is present.
	Token() (domain.AccessToken, bool)

	// Set replaces the current token wholesale.
	Set(token domain.AccessToken)

	// Clear removes the current token.
	Clear()
}
