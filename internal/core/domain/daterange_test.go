package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLastNDays(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	r := LastNDays(28, now)

	assert.Equal(t, "2024-02-02", r.Start)
	assert.Equal(t, "2024-03-01", r.End)
	assert.NoError(t, r.Validate())
}

func TestDateRange_Validate(t *testing.T) {
	tests := []struct {
		name    string
		r       DateRange
		wantErr bool
	}{
		{"valid", DateRange{Start: "2024-01-01", End: "2024-01-31"}, false},
		{"same day", DateRange{Start: "2024-01-01", End: "2024-01-01"}, false},
		{"bad start", DateRange{Start: "01/01/2024", End: "2024-01-31"}, true},
		{"bad end", DateRange{Start: "2024-01-01", End: ""}, true},
		{"reversed", DateRange{Start: "2024-02-01", End: "2024-01-01"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccessToken_Redacted(t *testing.T) {
	assert.Equal(t, "****", AccessToken("short").Redacted())
	assert.Equal(t, "ya29****", AccessToken("ya29.a0AfH6SMBx").Redacted())
	assert.True(t, AccessToken("").IsZero())
}

func TestReportKind_IsValid(t *testing.T) {
	for _, k := range ReportKinds() {
		assert.True(t, k.IsValid(), k)
	}
	assert.False(t, ReportKind("weekly").IsValid())
}
