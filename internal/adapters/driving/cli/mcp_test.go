package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/tubedash/internal/adapters/driving/drivingtest"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/mcp"
	"github.com/custodia-labs/tubedash/internal/core/domain"
)

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")

	if assert.NotNil(t, flag) {
		assert.Equal(t, "p", flag.Shorthand)
		assert.Equal(t, "0", flag.DefValue)
	}
}

func TestMCPServeCmd_NoAnalytics(t *testing.T) {
	f := newFixture()
	f.analytics = nil

	_, _, err := f.run(t, "mcp", "serve")

	assert.ErrorIs(t, err, mcp.ErrMissingAnalyticsService)
}

func TestMCPServeCmd_SignInRequired(t *testing.T) {
	f := newFixture()
	f.session = &drivingtest.Session{}

	_, _, err := f.run(t, "mcp", "serve")

	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
}
