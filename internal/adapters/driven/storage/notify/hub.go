// Package notify fans saved report changes out to live subscribers.
package notify

import (
	"context"
	"sync"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// Loader returns the current saved report list for an owner.
type Loader func(ctx context.Context, owner string) ([]domain.SavedReport, error)

type subscriber struct {
	ch chan []domain.SavedReport
}

// Hub tracks subscribers per owner. Subscribers always hold at most one
// pending list; a newer list replaces an unread one.
type Hub struct {
	mu   sync.Mutex
	load Loader
	subs map[string]map[*subscriber]struct{}
}

// NewHub creates a hub that reads lists with load.
func NewHub(load Loader) *Hub {
	return &Hub{
		load: load,
		subs: make(map[string]map[*subscriber]struct{}),
	}
}

// Subscribe registers a subscriber and sends it the current list.
// The returned channel is closed when ctx is done.
func (h *Hub) Subscribe(ctx context.Context, owner string) (<-chan []domain.SavedReport, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	list, err := h.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	sub := &subscriber{ch: make(chan []domain.SavedReport, 1)}
	if h.subs[owner] == nil {
		h.subs[owner] = make(map[*subscriber]struct{})
	}
	h.subs[owner][sub] = struct{}{}
	sub.ch <- list

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs[owner], sub)
		if len(h.subs[owner]) == 0 {
			delete(h.subs, owner)
		}
		close(sub.ch)
	}()

	return sub.ch, nil
}

// Publish sends the owner's current list to every subscriber of that owner.
func (h *Hub) Publish(ctx context.Context, owner string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.subs[owner]
	if len(subs) == 0 {
		return nil
	}

	list, err := h.load(ctx, owner)
	if err != nil {
		return err
	}

	for sub := range subs {
		select {
		case <-sub.ch:
		default:
		}
		sub.ch <- list
	}
	return nil
}

// Subscribers returns the number of live subscribers for owner.
func (h *Hub) Subscribers(owner string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[owner])
}
