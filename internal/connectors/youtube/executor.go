package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driven"
)

// Ensure Executor implements the interface.
var _ driven.RequestExecutor = (*Executor)(nil)

// Executor performs one authenticated GET per call and never retries.
type Executor struct {
	httpClient *http.Client
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(c *http.Client) ExecutorOption {
	return func(e *Executor) { e.httpClient = c }
}

// NewExecutor creates an executor.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute requests baseURL+path with params as the query string.
func (e *Executor) Execute(
	ctx context.Context,
	baseURL, path string,
	params domain.QueryParams,
	token domain.AccessToken,
) domain.Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildURL(baseURL, path, params), nil)
	if err != nil {
		return domain.TransportError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+string(token))
	req.Header.Set("Accept", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return domain.TransportError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.Unauthorized()
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return domain.APIError(resp.StatusCode, errorMessage(resp, path))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.TransportError(fmt.Errorf("read body: %w", err))
	}
	return domain.OK(body)
}

// buildURL joins baseURL and path and appends params as an encoded query.
func buildURL(baseURL, path string, params domain.QueryParams) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	if path != "" && !strings.HasPrefix(path, "/") {
		b.WriteByte('/')
	}
	b.WriteString(path)

	if q := params.Values().Encode(); q != "" {
		b.WriteByte('?')
		b.WriteString(q)
	}
	return b.String()
}

// errorMessage extracts error.message from a Google error body, falling
// back to "<endpoint> error: <status>".
func errorMessage(resp *http.Response, path string) string {
	var gerr *googleapi.Error
	if err := googleapi.CheckResponse(resp); errors.As(err, &gerr) && gerr.Message != "" {
		return gerr.Message
	}
	return fmt.Sprintf("%s error: %d", endpointName(path), resp.StatusCode)
}

func endpointName(path string) string {
	name := strings.Trim(path, "/")
	if name == "" {
		return "request"
	}
	return name
}
