package driving

import (
	"context"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// Fetcher is the single entry point for authenticated API reads.
//
// It ensures a token is present, performs the request and, on a 401,
// reauthorises and retries exactly once.
type Fetcher interface {
	// Fetch returns the raw response payload.
	// Errors: domain.ErrAuthorizationDenied, domain.ErrAuthorizationFailed,
	// domain.ErrAuthenticationExhausted, *domain.RemoteReportError,
	// *domain.NetworkError.
	Fetch(ctx context.Context, baseURL, path string, params domain.QueryParams) ([]byte, error)
}
