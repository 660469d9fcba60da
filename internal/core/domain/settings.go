package domain

import "time"

// Default endpoints and limits.
const (
	DefaultDataBaseURL      = "https://www.googleapis.com/youtube/v3"
	DefaultAnalyticsBaseURL = "https://youtubeanalytics.googleapis.com/v2"
	DefaultExchangeRateURL  = "https://api.frankfurter.dev/v1"
	DefaultCallbackPort     = 0
	DefaultConsentTimeout   = 5 * time.Minute
	DefaultReportDays       = 28
	DefaultVideoLimit       = 50
	DefaultTopVideosLimit   = 20
)

// OAuthSettings configures the Google OAuth client.
type OAuthSettings struct {
	ClientID       string
	ClientSecret   string
	CallbackPort   int
	ConsentTimeout time.Duration
}

// APISettings configures upstream base URLs.
type APISettings struct {
	DataBaseURL      string
	AnalyticsBaseURL string
	ExchangeRateURL  string
}

// Settings is the application configuration.
type Settings struct {
	// Account is the email signed in by default.
	Account       string
	OAuth         OAuthSettings
	API           APISettings
	AllowListPath string
	DataDir       string
	ReportDays    int
}

// DefaultSettings returns settings with built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		OAuth: OAuthSettings{
			CallbackPort:   DefaultCallbackPort,
			ConsentTimeout: DefaultConsentTimeout,
		},
		API: APISettings{
			DataBaseURL:      DefaultDataBaseURL,
			AnalyticsBaseURL: DefaultAnalyticsBaseURL,
			ExchangeRateURL:  DefaultExchangeRateURL,
		},
		ReportDays: DefaultReportDays,
	}
}

// HasOAuthClient returns true if a client ID is configured.
func (s Settings) HasOAuthClient() bool {
	return s.OAuth.ClientID != ""
}

// Configuration keys.
const (
	SettingAccount          = "account.email"
	SettingClientID         = "oauth.client_id"
	SettingClientSecret     = "oauth.client_secret"
	SettingCallbackPort     = "oauth.callback_port"
	SettingConsentTimeout   = "oauth.consent_timeout"
	SettingDataBaseURL      = "api.data_base_url"
	SettingAnalyticsBaseURL = "api.analytics_base_url"
	SettingExchangeRateURL  = "api.exchange_rate_url"
	SettingAllowListPath    = "access.allowlist_path"
	SettingDataDir          = "storage.data_dir"
	SettingReportDays       = "report.default_days"
)

// SettingKind is the value type stored under a configuration key.
type SettingKind int

const (
	SettingText SettingKind = iota
	SettingNumber
	SettingURL
	SettingSecret
)

// SettingKinds maps every user-settable key to its value type.
var SettingKinds = map[string]SettingKind{
	SettingAccount:          SettingText,
	SettingClientID:         SettingText,
	SettingClientSecret:     SettingSecret,
	SettingCallbackPort:     SettingNumber,
	SettingConsentTimeout:   SettingNumber,
	SettingDataBaseURL:      SettingURL,
	SettingAnalyticsBaseURL: SettingURL,
	SettingExchangeRateURL:  SettingURL,
	SettingAllowListPath:    SettingText,
	SettingDataDir:          SettingText,
	SettingReportDays:       SettingNumber,
}
