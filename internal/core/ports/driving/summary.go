package driving

import (
	"context"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// ReportService runs catalog queries and summarises them for views.
type ReportService interface {
	// Revenue returns the revenue report and its totals.
	Revenue(ctx context.Context, r domain.DateRange) (*domain.AnalyticsReport, *domain.RevenueSummary, error)

	// Growth returns the growth report and its totals.
	Growth(ctx context.Context, r domain.DateRange) (*domain.AnalyticsReport, *domain.GrowthSummary, error)

	// ExchangeRate returns the USD rate for the given currency.
	// A nil rate with nil error means conversion is unavailable.
	ExchangeRate(ctx context.Context, quote string) (*domain.ExchangeRate, error)
}
