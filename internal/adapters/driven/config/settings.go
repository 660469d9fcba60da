// Package config resolves typed settings from a key/value configuration store.
package config

import (
	"os"
	"time"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// Configuration keys.
const (
	KeyAccount          = domain.SettingAccount
	KeyClientID         = domain.SettingClientID
	KeyClientSecret     = domain.SettingClientSecret
	KeyCallbackPort     = domain.SettingCallbackPort
	KeyConsentTimeout   = domain.SettingConsentTimeout
	KeyDataBaseURL      = domain.SettingDataBaseURL
	KeyAnalyticsBaseURL = domain.SettingAnalyticsBaseURL
	KeyExchangeRateURL  = domain.SettingExchangeRateURL
	KeyAllowListPath    = domain.SettingAllowListPath
	KeyDataDir          = domain.SettingDataDir
	KeyReportDays       = domain.SettingReportDays
)

// Environment overrides.
const (
	EnvAccount      = "TUBEDASH_EMAIL"
	EnvClientID     = "TUBEDASH_CLIENT_ID"
	EnvClientSecret = "TUBEDASH_CLIENT_SECRET"
)

// KeyReader is the subset of a config store needed to resolve settings.
type KeyReader interface {
	GetString(key string) string
	GetInt(key string) int
}

// ResolveSettings builds typed settings from r, falling back to defaults
// for unset keys. Environment variables take precedence.
func ResolveSettings(r KeyReader) domain.Settings {
	s := domain.DefaultSettings()

	s.Account = firstNonEmpty(os.Getenv(EnvAccount), r.GetString(KeyAccount))

	s.OAuth.ClientID = firstNonEmpty(os.Getenv(EnvClientID), r.GetString(KeyClientID))
	s.OAuth.ClientSecret = firstNonEmpty(os.Getenv(EnvClientSecret), r.GetString(KeyClientSecret))
	if port := r.GetInt(KeyCallbackPort); port > 0 {
		s.OAuth.CallbackPort = port
	}
	if secs := r.GetInt(KeyConsentTimeout); secs > 0 {
		s.OAuth.ConsentTimeout = time.Duration(secs) * time.Second
	}

	s.API.DataBaseURL = firstNonEmpty(r.GetString(KeyDataBaseURL), s.API.DataBaseURL)
	s.API.AnalyticsBaseURL = firstNonEmpty(r.GetString(KeyAnalyticsBaseURL), s.API.AnalyticsBaseURL)
	s.API.ExchangeRateURL = firstNonEmpty(r.GetString(KeyExchangeRateURL), s.API.ExchangeRateURL)

	s.AllowListPath = r.GetString(KeyAllowListPath)
	s.DataDir = r.GetString(KeyDataDir)
	if days := r.GetInt(KeyReportDays); days > 0 {
		s.ReportDays = days
	}

	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
