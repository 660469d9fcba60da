package driving

import "github.com/custodia-labs/tubedash/internal/core/domain"

// SettingsService reads and updates the persisted configuration.
type SettingsService interface {
	// Get returns the resolved settings with defaults and environment overrides applied.
	Get() domain.Settings

	// Value returns the raw stored value of key, or "" if unset.
	// Returns domain.ErrInvalidInput for an unknown key.
	Value(key string) (string, error)

	// Set validates value for key and persists it.
	Set(key, value string) error

	// Path returns the configuration file path.
	Path() string
}
