package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/tubedash/internal/adapters/driving/drivingtest"
)

func TestPorts_Validate_AnalyticsOnly(t *testing.T) {
	ports := &Ports{Analytics: &drivingtest.Analytics{}}

	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_AllSet(t *testing.T) {
	ports := &Ports{
		Analytics:    &drivingtest.Analytics{},
		Reports:      &drivingtest.Reports{},
		SavedReports: drivingtest.NewSavedReports(),
		Session:      &drivingtest.Session{User: "owner@example.com"},
	}

	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingAnalytics(t *testing.T) {
	ports := &Ports{SavedReports: drivingtest.NewSavedReports()}

	assert.ErrorIs(t, ports.Validate(), ErrMissingAnalyticsService)
}
