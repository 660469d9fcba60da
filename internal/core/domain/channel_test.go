package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"PT45S", 45},
		{"PT1M", 60},
		{"PT4M13S", 253},
		{"PT1H2M3S", 3723},
		{"PT2H", 7200},
		{"P1D", 0},
		{"", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseISODuration(tt.in))
		})
	}
}

func TestVideoItem_IsShort(t *testing.T) {
	assert.True(t, VideoItem{Duration: "PT59S"}.IsShort())
	assert.False(t, VideoItem{Duration: "PT1M"}.IsShort())
	assert.False(t, VideoItem{Duration: "PT10M5S"}.IsShort())
}

func TestVideoItem_Published(t *testing.T) {
	v := VideoItem{PublishedAt: "2024-03-01T10:00:00Z"}
	assert.Equal(t, 2024, v.Published().Year())

	assert.True(t, VideoItem{PublishedAt: "yesterday"}.Published().IsZero())
}
