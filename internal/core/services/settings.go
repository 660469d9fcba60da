package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driven"
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages the configuration file.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the resolved settings.
func (s *SettingsService) Get() domain.Settings {
	return s.configStore.Settings()
}

// Value returns the stored value of key.
func (s *SettingsService) Value(key string) (string, error) {
	if _, ok := domain.SettingKinds[key]; !ok {
		return "", unknownKey(key)
	}
	val, ok := s.configStore.Get(key)
	if !ok {
		return "", nil
	}
	return fmt.Sprint(val), nil
}

// Set validates and stores value under key. Numbers are stored as integers.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := domain.SettingKinds[key]
	if !ok {
		return unknownKey(key)
	}
	value = strings.TrimSpace(value)

	var stored any = value
	switch kind {
	case domain.SettingNumber:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative whole number", domain.ErrInvalidInput, key)
		}
		stored = n
	case domain.SettingURL:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %s must be an http(s) URL", domain.ErrInvalidInput, key)
		}
	case domain.SettingText, domain.SettingSecret:
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func unknownKey(key string) error {
	return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
}
