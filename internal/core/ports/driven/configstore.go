package driven

import "github.com/custodia-labs/tubedash/internal/core/domain"

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Settings returns typed settings with defaults applied.
	Settings() domain.Settings

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
