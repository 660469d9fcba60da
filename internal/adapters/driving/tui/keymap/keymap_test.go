package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"help", km.Help, []string{"?"}},
		{"back", km.Back, []string{"esc"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"select", km.Select, []string{"enter"}},
		{"refresh", km.Refresh, []string{"r"}},
		{"next tab", km.NextTab, []string{"tab"}},
		{"prev tab", km.PrevTab, []string{"shift+tab"}},
		{"range", km.Range, []string{"p"}},
		{"save", km.Save, []string{"s"}},
		{"delete", km.Delete, []string{"d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range tt.keys {
				assert.Contains(t, tt.binding.Keys(), k)
			}
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_HelpGroups(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 3)
	assert.Contains(t, km.ReportHelp(), km.Save)
	assert.Contains(t, km.SavedHelp(), km.Delete)
	assert.Len(t, km.FullHelp(), 4)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("x", km.Delete))
	assert.False(t, Matches("z", km.Quit))
	assert.False(t, Matches("", km.Select))
}
