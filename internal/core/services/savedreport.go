package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driven"
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
)

// Ensure SavedReportService implements the interface.
var _ driving.SavedReportService = (*SavedReportService)(nil)

// SavedReportService scopes the saved report store to the signed-in user.
type SavedReportService struct {
	store   driven.SavedReportStore
	session driving.SessionService
	newID   func() string
	now     func() time.Time
}

// NewSavedReportService creates a saved report service.
// newID generates report identifiers.
func NewSavedReportService(
	store driven.SavedReportStore,
	session driving.SessionService,
	newID func() string,
) *SavedReportService {
	return &SavedReportService{
		store:   store,
		session: session,
		newID:   newID,
		now:     time.Now,
	}
}

func (s *SavedReportService) owner() (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("saved report store not configured")
	}
	user := s.session.CurrentUser()
	if user == "" {
		return "", domain.ErrNotSignedIn
	}
	return user, nil
}

// Save stores a new report definition.
func (s *SavedReportService) Save(
	ctx context.Context,
	kind domain.ReportKind,
	title string,
	r domain.DateRange,
	params map[string]string,
) (*domain.SavedReport, error) {
	owner, err := s.owner()
	if err != nil {
		return nil, err
	}

	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown report kind %q", domain.ErrInvalidInput, kind)
	}
	if kind != domain.ReportFormats {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	if kind == domain.ReportVideo && params[domain.ParamVideoID] == "" {
		return nil, fmt.Errorf("%w: video report requires video_id", domain.ErrInvalidInput)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = fmt.Sprintf("%s %s", kind, r)
	}

	report := domain.SavedReport{
		ID:        s.newID(),
		Owner:     owner,
		Kind:      kind,
		Title:     title,
		Range:     r,
		Params:    params,
		CreatedAt: s.now().UTC(),
	}

	if err := s.store.Add(ctx, report); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	return &report, nil
}

// List returns the user's saved reports, newest first.
func (s *SavedReportService) List(ctx context.Context) ([]domain.SavedReport, error) {
	owner, err := s.owner()
	if err != nil {
		return nil, err
	}
	return s.store.List(ctx, owner)
}

// Delete removes one of the user's saved reports.
func (s *SavedReportService) Delete(ctx context.Context, id string) error {
	owner, err := s.owner()
	if err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidInput)
	}
	return s.store.Delete(ctx, owner, id)
}

// Watch streams the user's saved report list until ctx is done.
func (s *SavedReportService) Watch(ctx context.Context) (<-chan []domain.SavedReport, error) {
	owner, err := s.owner()
	if err != nil {
		return nil, err
	}
	return s.store.Subscribe(ctx, owner)
}
