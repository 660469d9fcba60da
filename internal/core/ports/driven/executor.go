package driven

import (
	"context"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// RequestExecutor performs exactly one authenticated GET request.
//
// The request URL is baseURL + path with every parameter appended as a
// query parameter. The token is sent as a bearer authorization header.
// Implementations never retry.
type RequestExecutor interface {
	// Execute performs the request and classifies the result.
	// Every failure is reported through the Outcome, never a panic.
	Execute(
		ctx context.Context,
		baseURL, path string,
		params domain.QueryParams,
		token domain.AccessToken,
	) domain.Outcome
}
