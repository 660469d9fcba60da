package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/tubedash/internal/adapters/driven/storage/notify"
	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driven"
)

// Ensure SavedReportStore implements the interface.
var _ driven.SavedReportStore = (*SavedReportStore)(nil)

// SavedReportStore is an in-memory implementation of driven.SavedReportStore.
type SavedReportStore struct {
	mu      sync.RWMutex
	reports map[string]map[string]domain.SavedReport // owner -> id -> report
	hub     *notify.Hub
}

// NewSavedReportStore creates a new in-memory saved report store.
func NewSavedReportStore() *SavedReportStore {
	s := &SavedReportStore{
		reports: make(map[string]map[string]domain.SavedReport),
	}
	s.hub = notify.NewHub(s.List)
	return s
}

// Add stores a new saved report.
func (s *SavedReportStore) Add(ctx context.Context, report domain.SavedReport) error {
	s.mu.Lock()
	if s.reports[report.Owner] == nil {
		s.reports[report.Owner] = make(map[string]domain.SavedReport)
	}
	if _, exists := s.reports[report.Owner][report.ID]; exists {
		s.mu.Unlock()
		return domain.ErrInvalidInput
	}
	s.reports[report.Owner][report.ID] = copyReport(report)
	s.mu.Unlock()

	return s.hub.Publish(ctx, report.Owner)
}

// List returns the owner's saved reports, newest first.
func (s *SavedReportStore) List(_ context.Context, owner string) ([]domain.SavedReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.SavedReport, 0, len(s.reports[owner]))
	for _, r := range s.reports[owner] {
		result = append(result, copyReport(r))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Delete removes a saved report.
func (s *SavedReportStore) Delete(ctx context.Context, owner, id string) error {
	s.mu.Lock()
	if _, ok := s.reports[owner][id]; !ok {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	delete(s.reports[owner], id)
	s.mu.Unlock()

	return s.hub.Publish(ctx, owner)
}

// Subscribe streams the owner's list until ctx is done.
func (s *SavedReportStore) Subscribe(ctx context.Context, owner string) (<-chan []domain.SavedReport, error) {
	return s.hub.Subscribe(ctx, owner)
}

func copyReport(r domain.SavedReport) domain.SavedReport {
	if r.Params != nil {
		params := make(map[string]string, len(r.Params))
		for k, v := range r.Params {
			params[k] = v
		}
		r.Params = params
	}
	return r
}
