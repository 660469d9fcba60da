package oauth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/term"
	"google.golang.org/api/youtube/v3"
	"google.golang.org/api/youtubeanalytics/v2"

	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driven"
	"github.com/custodia-labs/tubedash/internal/logger"
)

// Ensure Authorizer implements the interface.
var _ driven.Authorizer = (*Authorizer)(nil)

// Scopes is the fixed read-only scope set requested on every consent.
var Scopes = []string{
	youtube.YoutubeReadonlyScope,
	youtubeanalytics.YtAnalyticsReadonlyScope,
	youtubeanalytics.YtAnalyticsMonetaryReadonlyScope,
}

// Authorizer runs the OAuth authorization code flow with PKCE against
// Google, receiving the redirect on a loopback callback server.
type Authorizer struct {
	settings domain.OAuthSettings
	endpoint oauth2.Endpoint

	// Interactive reports whether a user is present to complete consent.
	Interactive func() bool
	// OpenURL shows the consent page to the user.
	OpenURL func(url string) error
	// Prompt receives the consent URL for manual opening.
	Prompt io.Writer
}

// Option configures an Authorizer.
type Option func(*Authorizer)

// WithEndpoint overrides the provider endpoint.
func WithEndpoint(endpoint oauth2.Endpoint) Option {
	return func(a *Authorizer) { a.endpoint = endpoint }
}

// WithInteractive overrides the interactive check.
func WithInteractive(fn func() bool) Option {
	return func(a *Authorizer) { a.Interactive = fn }
}

// WithOpenURL overrides how the consent page is opened.
func WithOpenURL(fn func(string) error) Option {
	return func(a *Authorizer) { a.OpenURL = fn }
}

// WithPrompt sets where the consent URL is printed.
func WithPrompt(w io.Writer) Option {
	return func(a *Authorizer) { a.Prompt = w }
}

// NewAuthorizer creates an authorizer for the configured OAuth client.
func NewAuthorizer(settings domain.OAuthSettings, opts ...Option) *Authorizer {
	a := &Authorizer{
		settings:    settings,
		endpoint:    google.Endpoint,
		Interactive: stdinIsTerminal,
		OpenURL:     OpenBrowser,
		Prompt:      os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Authorize runs the consent flow and returns the new access token.
func (a *Authorizer) Authorize(ctx context.Context) (domain.AccessToken, error) {
	if a.Interactive != nil && !a.Interactive() {
		return "", fmt.Errorf("no interactive terminal for consent: %w", domain.ErrAuthorizationFailed)
	}
	if a.settings.ClientID == "" {
		return "", fmt.Errorf("oauth client not configured: %w", domain.ErrAuthorizationFailed)
	}

	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()

	server := NewCallbackServer(a.settings.CallbackPort, state)
	if err := server.Start(); err != nil {
		return "", fmt.Errorf("start callback server: %v: %w", err, domain.ErrAuthorizationFailed)
	}
	defer func() { _ = server.Stop() }()

	cfg := &oauth2.Config{
		ClientID:     a.settings.ClientID,
		ClientSecret: a.settings.ClientSecret,
		Endpoint:     a.endpoint,
		RedirectURL:  server.RedirectURI(),
		Scopes:       Scopes,
	}

	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOnline, oauth2.S256ChallengeOption(verifier))
	logger.Debug("oauth: waiting for callback on %s", cfg.RedirectURL)

	if a.Prompt != nil {
		_, _ = fmt.Fprintf(a.Prompt, "Opening browser for Google sign-in. If it does not open, visit:\n\n  %s\n\n", authURL)
	}
	if a.OpenURL != nil {
		if err := a.OpenURL(authURL); err != nil {
			logger.Warn("could not open browser: %v", err)
		}
	}

	waitCtx := ctx
	if a.settings.ConsentTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, a.settings.ConsentTimeout)
		defer cancel()
	}

	code, err := server.WaitForCode(waitCtx)
	if err != nil {
		return "", classifyCallbackError(ctx, err)
	}

	tok, err := cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return "", fmt.Errorf("exchange code: %v: %w", err, domain.ErrAuthorizationFailed)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("empty access token: %w", domain.ErrAuthorizationFailed)
	}

	logger.Debug("oauth: obtained token %s", domain.AccessToken(tok.AccessToken).Redacted())
	return domain.AccessToken(tok.AccessToken), nil
}

// classifyCallbackError maps consent failures onto domain errors.
// Declining consent and cancelling the caller's context count as denial.
func classifyCallbackError(ctx context.Context, err error) error {
	var perr *ProviderError
	switch {
	case errors.As(err, &perr) && perr.Denied():
		return fmt.Errorf("%v: %w", err, domain.ErrAuthorizationDenied)
	case ctx.Err() != nil:
		return fmt.Errorf("consent cancelled: %w", domain.ErrAuthorizationDenied)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("timed out waiting for consent: %w", domain.ErrAuthorizationFailed)
	default:
		return fmt.Errorf("%v: %w", err, domain.ErrAuthorizationFailed)
	}
}
