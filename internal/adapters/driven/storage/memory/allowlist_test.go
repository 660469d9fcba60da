package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowList_CaseInsensitive(t *testing.T) {
	list := NewAllowList("Creator@Example.com")

	ok, err := list.IsAllowed(context.Background(), "creator@example.COM")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAllowList_Unknown(t *testing.T) {
	list := NewAllowList("a@example.com")

	ok, err := list.IsAllowed(context.Background(), "b@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAllowList_EmptyDeniesAll(t *testing.T) {
	ok, err := NewAllowList().IsAllowed(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}
