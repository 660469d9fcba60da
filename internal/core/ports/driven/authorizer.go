package driven

import (
	"context"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// Authorizer obtains a fresh access token through a user-present consent flow.
//
// Implementations request a fixed read-only scope set and must not write
// the token anywhere; storing it is the caller's responsibility.
type Authorizer interface {
	// Authorize runs the consent flow.
	// Returns domain.ErrAuthorizationDenied if the user or provider declines,
	// domain.ErrAuthorizationFailed if no usable credential was produced.
	Authorize(ctx context.Context) (domain.AccessToken, error)
}
