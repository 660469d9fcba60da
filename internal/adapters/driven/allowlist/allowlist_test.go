package allowlist

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestNewFile_Missing(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "allowlist.toml"))
	require.NoError(t, err)

	ok, err := f.IsAllowed(context.Background(), "anyone@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, f.Len())
}

func TestNewFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allowlist.toml")
	writeList(t, path, "emails = [")

	_, err := NewFile(path)
	assert.Error(t, err)
}

func TestFile_IsAllowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allowlist.toml")
	writeList(t, path, `emails = ["Creator@Example.com", "  manager@example.com ", ""]`)

	f, err := NewFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Len())

	tests := []struct {
		email string
		want  bool
	}{
		{"creator@example.com", true},
		{"CREATOR@EXAMPLE.COM", true},
		{"manager@example.com", true},
		{"stranger@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			ok, err := f.IsAllowed(context.Background(), tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestFile_ReloadKeepsListOnParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allowlist.toml")
	writeList(t, path, `emails = ["a@example.com"]`)
	f, err := NewFile(path)
	require.NoError(t, err)

	writeList(t, path, "emails = [")
	assert.Error(t, f.Reload())

	ok, _ := f.IsAllowed(context.Background(), "a@example.com")
	assert.True(t, ok)
}

func TestFile_WatchPicksUpChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allowlist.toml")
	writeList(t, path, `emails = ["a@example.com"]`)
	f, err := NewFile(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, f.Watch(ctx))

	writeList(t, path, `emails = ["a@example.com", "b@example.com"]`)

	assert.Eventually(t, func() bool {
		ok, _ := f.IsAllowed(context.Background(), "b@example.com")
		return ok
	}, 3*time.Second, 20*time.Millisecond)
}

func TestFile_WatchMissingDirectory(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "nope", "allowlist.toml"))
	require.NoError(t, err)

	assert.Error(t, f.Watch(context.Background()))
}
