package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// stubAuthorizer returns tokens (or an error) in sequence.
type stubAuthorizer struct {
	mu     sync.Mutex
	tokens []domain.AccessToken
	err    error
	calls  int
}

func (a *stubAuthorizer) Authorize(context.Context) (domain.AccessToken, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	if a.err != nil {
		return "", a.err
	}
	if len(a.tokens) == 0 {
		return "", nil
	}
	t := a.tokens[0]
	if len(a.tokens) > 1 {
		a.tokens = a.tokens[1:]
	}
	return t, nil
}

type executedRequest struct {
	baseURL string
	path    string
	params  domain.QueryParams
	token   domain.AccessToken
}

// stubExecutor returns outcomes in sequence and records requests.
type stubExecutor struct {
	mu       sync.Mutex
	outcomes []domain.Outcome
	requests []executedRequest
}

func (e *stubExecutor) Execute(
	_ context.Context,
	baseURL, path string,
	params domain.QueryParams,
	token domain.AccessToken,
) domain.Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.requests = append(e.requests, executedRequest{baseURL, path, params, token})
	if len(e.outcomes) == 0 {
		return domain.OK(nil)
	}
	o := e.outcomes[0]
	e.outcomes = e.outcomes[1:]
	return o
}

// stubAnalytics returns fixed reports.
type stubAnalytics struct {
	revenue *domain.AnalyticsReport
	growth  *domain.AnalyticsReport
	err     error
}

func (s *stubAnalytics) Channel(context.Context) (*domain.ChannelStats, error) {
	return nil, s.err
}

func (s *stubAnalytics) Videos(context.Context, int) ([]domain.VideoItem, error) {
	return nil, s.err
}

func (s *stubAnalytics) VideoAnalytics(context.Context, string, domain.DateRange) (*domain.AnalyticsReport, error) {
	return nil, s.err
}

func (s *stubAnalytics) RevenueReport(context.Context, domain.DateRange) (*domain.AnalyticsReport, error) {
	return s.revenue, s.err
}

func (s *stubAnalytics) GrowthReport(context.Context, domain.DateRange) (*domain.AnalyticsReport, error) {
	return s.growth, s.err
}

func (s *stubAnalytics) TopVideos(context.Context, domain.DateRange, int) (*domain.AnalyticsReport, error) {
	return nil, s.err
}

func (s *stubAnalytics) FormatComparison(context.Context, int) (*domain.FormatSummary, error) {
	return nil, s.err
}

// stubRates returns a fixed rate or error.
type stubRates struct {
	rate *domain.ExchangeRate
	err  error
}

func (s *stubRates) Latest(_ context.Context, base, quote string) (*domain.ExchangeRate, error) {
	if s.err != nil {
		return nil, s.err
	}
	r := *s.rate
	r.Base, r.Quote = base, quote
	return &r, nil
}
