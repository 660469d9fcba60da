package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

func TestTokenStore_Empty(t *testing.T) {
	store := NewTokenStore()

	token, ok := store.Token()
	assert.False(t, ok)
	assert.True(t, token.IsZero())
}

func TestTokenStore_SetReplacesAndClear(t *testing.T) {
	store := NewTokenStore()

	store.Set("first")
	store.Set("second")

	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, domain.AccessToken("second"), token)

	store.Clear()
	_, ok = store.Token()
	assert.False(t, ok)
}

func TestTokenStore_SetEmptyIsAbsent(t *testing.T) {
	store := NewTokenStore()
	store.Set("")

	_, ok := store.Token()
	assert.False(t, ok)
}

func TestTokenStore_ConcurrentReadsSeeWholeValues(t *testing.T) {
	store := NewTokenStore()
	store.Set("aaaa")

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Set("bbbb")
		}()
		go func() {
			defer wg.Done()
			token, _ := store.Token()
			assert.Contains(t, []domain.AccessToken{"aaaa", "bbbb"}, token)
		}()
	}
	wg.Wait()
}
