package driven

import (
	"context"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// SavedReportStore persists saved reports scoped to their owner.
type SavedReportStore interface {
	// Add stores a new saved report.
	Add(ctx context.Context, report domain.SavedReport) error

	// List returns the owner's saved reports, newest first.
	List(ctx context.Context, owner string) ([]domain.SavedReport, error)

	// Delete removes one of the owner's saved reports.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, owner, id string) error

	// Subscribe emits the owner's current list immediately and again after
	// every change. The channel is closed when ctx is done.
	Subscribe(ctx context.Context, owner string) (<-chan []domain.SavedReport, error)
}
