package driving

import (
	"context"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// SavedReportService manages the signed-in user's saved reports.
// Every method returns domain.ErrNotSignedIn when no user is signed in.
type SavedReportService interface {
	// Save stores a new report definition and returns it with its ID.
	Save(
		ctx context.Context,
		kind domain.ReportKind,
		title string,
		r domain.DateRange,
		params map[string]string,
	) (*domain.SavedReport, error)

	// List returns saved reports, newest first.
	List(ctx context.Context) ([]domain.SavedReport, error)

	// Delete removes a saved report.
	Delete(ctx context.Context, id string) error

	// Watch streams the saved report list until ctx is done.
	Watch(ctx context.Context) (<-chan []domain.SavedReport, error)
}
