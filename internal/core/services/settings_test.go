package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tubedash/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tubedash/internal/core/domain"
)

func TestSettingsService_SetText(t *testing.T) {
	t.Setenv("TUBEDASH_EMAIL", "")
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.Set(domain.SettingAccount, " owner@example.com "))

	assert.Equal(t, "owner@example.com", svc.Get().Account)
	got, err := svc.Value(domain.SettingAccount)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", got)
}

func TestSettingsService_SetNumber(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.Set(domain.SettingReportDays, "90"))

	assert.Equal(t, 90, store.GetInt(domain.SettingReportDays))
	assert.Equal(t, 90, svc.Get().ReportDays)
}

func TestSettingsService_RejectsBadValues(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	tests := []struct {
		key, value string
	}{
		{domain.SettingReportDays, "many"},
		{domain.SettingCallbackPort, "-1"},
		{domain.SettingExchangeRateURL, "ftp://rates.example.com"},
		{domain.SettingDataBaseURL, "not a url"},
		{"search.mode", "hybrid"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.ErrorIs(t, svc.Set(tt.key, tt.value), domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_ValueUnset(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	got, err := svc.Value(domain.SettingClientSecret)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSettingsService_ValueUnknownKey(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	_, err := svc.Value("llm.provider")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_Path(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, memory.NewConfigStore().Path(), svc.Path())
}
