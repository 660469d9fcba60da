package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, DefaultDataBaseURL, s.API.DataBaseURL)
	assert.Equal(t, DefaultAnalyticsBaseURL, s.API.AnalyticsBaseURL)
	assert.Equal(t, DefaultExchangeRateURL, s.API.ExchangeRateURL)
	assert.Equal(t, DefaultConsentTimeout, s.OAuth.ConsentTimeout)
	assert.Equal(t, 28, s.ReportDays)
	assert.Empty(t, s.Account)
	assert.False(t, s.HasOAuthClient())
}

func TestSettings_HasOAuthClient(t *testing.T) {
	s := DefaultSettings()
	s.OAuth.ClientID = "123.apps.googleusercontent.com"

	assert.True(t, s.HasOAuthClient())
}

func TestSettingKinds(t *testing.T) {
	assert.Len(t, SettingKinds, 11)
	assert.Equal(t, SettingSecret, SettingKinds[SettingClientSecret])
	assert.Equal(t, SettingNumber, SettingKinds[SettingReportDays])
	assert.Equal(t, SettingURL, SettingKinds[SettingExchangeRateURL])
	assert.Equal(t, SettingText, SettingKinds[SettingAccount])
}
