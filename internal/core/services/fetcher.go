package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driven"
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
	"github.com/custodia-labs/tubedash/internal/logger"
)

// Ensure AuthenticatedFetcher implements the interface.
var _ driving.Fetcher = (*AuthenticatedFetcher)(nil)

// attempt identifies which of the two permitted requests is running.
type attempt int

const (
	attemptFirst attempt = iota + 1
	attemptRetry
)

func (a attempt) String() string {
	if a == attemptRetry {
		return "retry"
	}
	return "first"
}

// AuthenticatedFetcher combines the token store, the authorizer and the
// request executor into the "ensure token, request, retry once on 401"
// protocol.
//
// A fetch makes at most two requests and at most two authorizer calls
// (one when the store is empty, one after a 401). A second 401 is
// surfaced as domain.ErrAuthenticationExhausted.
type AuthenticatedFetcher struct {
	tokens     driven.TokenStore
	authorizer driven.Authorizer
	executor   driven.RequestExecutor
}

// NewAuthenticatedFetcher creates a fetcher.
func NewAuthenticatedFetcher(
	tokens driven.TokenStore,
	authorizer driven.Authorizer,
	executor driven.RequestExecutor,
) *AuthenticatedFetcher {
	return &AuthenticatedFetcher{
		tokens:     tokens,
		authorizer: authorizer,
		executor:   executor,
	}
}

// Fetch performs an authenticated GET and returns the response payload.
func (f *AuthenticatedFetcher) Fetch(
	ctx context.Context,
	baseURL, path string,
	params domain.QueryParams,
) ([]byte, error) {
	params = params.Clone()

	token, err := f.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	outcome := f.execute(ctx, attemptFirst, baseURL, path, params, token)
	if outcome.Kind == domain.OutcomeUnauthorized {
		logger.Log().Debug().Str("path", path).Msg("token rejected, reauthorising")

		token, err = f.reauthorize(ctx)
		if err != nil {
			return nil, err
		}

		outcome = f.execute(ctx, attemptRetry, baseURL, path, params, token)
		if outcome.Kind == domain.OutcomeUnauthorized {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrAuthenticationExhausted)
		}
	}

	return resolve(path, outcome)
}

// ensureToken returns the stored token, authorising first if there is none.
func (f *AuthenticatedFetcher) ensureToken(ctx context.Context) (domain.AccessToken, error) {
	if token, ok := f.tokens.Token(); ok && !token.IsZero() {
		return token, nil
	}

	logger.Debug("no access token in session, starting authorisation")
	return f.reauthorize(ctx)
}

// reauthorize obtains a new token and overwrites the store.
func (f *AuthenticatedFetcher) reauthorize(ctx context.Context) (domain.AccessToken, error) {
	token, err := f.authorizer.Authorize(ctx)
	if err != nil {
		return "", fmt.Errorf("authorize: %w", err)
	}
	if token.IsZero() {
		return "", fmt.Errorf("authorize: empty token: %w", domain.ErrAuthorizationFailed)
	}

	f.tokens.Set(token)
	return token, nil
}

func (f *AuthenticatedFetcher) execute(
	ctx context.Context,
	a attempt,
	baseURL, path string,
	params domain.QueryParams,
	token domain.AccessToken,
) domain.Outcome {
	outcome := f.executor.Execute(ctx, baseURL, path, params, token)

	logger.Log().Debug().
		Str("path", path).
		Stringer("attempt", a).
		Stringer("outcome", outcome.Kind).
		Int("status", outcome.Status).
		Msg("request completed")

	return outcome
}

// resolve maps a non-401 outcome to a payload or a typed error.
func resolve(path string, outcome domain.Outcome) ([]byte, error) {
	switch outcome.Kind {
	case domain.OutcomeOK:
		return outcome.Payload, nil
	case domain.OutcomeAPIError:
		return nil, fmt.Errorf("%s: %w", path, &domain.RemoteReportError{
			Status:  outcome.Status,
			Message: outcome.Message,
		})
	case domain.OutcomeTransportError:
		return nil, fmt.Errorf("%s: %w", path, &domain.NetworkError{Err: outcome.Err})
	default:
		return nil, fmt.Errorf("%s: unexpected outcome %s", path, outcome.Kind)
	}
}
