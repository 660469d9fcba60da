package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

func TestNewServer(t *testing.T) {
	t.Run("nil analytics service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{}, 28)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingAnalyticsService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Analytics: &mockAnalyticsService{}}, 7)
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.Equal(t, 7, server.reportDays)
	})

	t.Run("non-positive report days uses default", func(t *testing.T) {
		server, err := NewServer(&Ports{Analytics: &mockAnalyticsService{}}, 0)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultReportDays, server.reportDays)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil analytics service returns error", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingAnalyticsService)
	})

	t.Run("analytics only is valid", func(t *testing.T) {
		ports := &Ports{Analytics: &mockAnalyticsService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Analytics:    &mockAnalyticsService{},
			Reports:      &mockReportService{},
			SavedReports: &mockSavedReportService{},
		}
		assert.NoError(t, ports.Validate())
	})
}
