// Package exchange fetches currency rates from a Frankfurter-compatible API.
package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.ExchangeRateProvider = (*Client)(nil)

type latestResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Client queries the /latest endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL (e.g. https://api.frankfurter.dev/v1).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Latest returns the most recent base->quote rate.
func (c *Client) Latest(ctx context.Context, base, quote string) (*domain.ExchangeRate, error) {
	base = strings.ToUpper(base)
	quote = strings.ToUpper(quote)

	q := url.Values{}
	q.Set("base", base)
	q.Set("symbols", quote)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/latest?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.RemoteReportError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("exchange rate error: %d", resp.StatusCode),
		}
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode exchange rate: %w", err)
	}

	rate, ok := body.Rates[quote]
	if !ok {
		return nil, fmt.Errorf("no rate for %s: %w", quote, domain.ErrNotFound)
	}

	return &domain.ExchangeRate{
		Base:  body.Base,
		Quote: quote,
		Rate:  rate,
		Date:  body.Date,
	}, nil
}
