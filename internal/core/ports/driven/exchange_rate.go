package driven

import (
	"context"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// ExchangeRateProvider fetches currency conversion rates.
type ExchangeRateProvider interface {
	// Latest returns the most recent base->quote rate.
	Latest(ctx context.Context, base, quote string) (*domain.ExchangeRate, error)
}
