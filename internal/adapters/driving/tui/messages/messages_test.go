package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewMenu, "menu"},
		{ViewOverview, "overview"},
		{ViewVideos, "videos"},
		{ViewReport, "report"},
		{ViewFormats, "formats"},
		{ViewSaved, "saved"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestViewType_MenuIsZero(t *testing.T) {
	var v ViewType
	assert.Equal(t, ViewMenu, v)
}
