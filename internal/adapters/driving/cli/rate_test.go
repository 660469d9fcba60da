package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

func TestRateCmd(t *testing.T) {
	f := newFixture()
	f.reports.Rate = &domain.ExchangeRate{Base: "USD", Quote: "EUR", Rate: 0.92345, Date: "2024-03-29"}

	out, _, err := f.run(t, "rate", "EUR")

	require.NoError(t, err)
	assert.Equal(t, "1 USD = 0.9235 EUR (2024-03-29)\n", out)
}

func TestRateCmd_Unavailable(t *testing.T) {
	f := newFixture()

	_, _, err := f.run(t, "rate", "EUR")

	assert.EqualError(t, err, "exchange rate unavailable")
}

func TestRateCmd_InvalidCurrency(t *testing.T) {
	f := newFixture()
	f.reports.Err = domain.ErrInvalidInput

	_, _, err := f.run(t, "rate", "USD")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
