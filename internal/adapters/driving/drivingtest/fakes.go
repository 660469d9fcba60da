// Package drivingtest provides in-memory driving ports for adapter tests.
package drivingtest

import (
	"context"
	"strconv"
	"sync"

	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
)

var (
	_ driving.AnalyticsService   = (*Analytics)(nil)
	_ driving.ReportService      = (*Reports)(nil)
	_ driving.SavedReportService = (*SavedReports)(nil)
	_ driving.SessionService     = (*Session)(nil)
)

// Analytics returns canned catalog results.
type Analytics struct {
	ChannelStats *domain.ChannelStats
	Uploads      []domain.VideoItem
	Report       *domain.AnalyticsReport
	Formats      *domain.FormatSummary
	Err          error

	mu    sync.Mutex
	Calls []string
	Range domain.DateRange
	Max   int
	Video string
}

func (a *Analytics) record(call string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Calls = append(a.Calls, call)
}

func (a *Analytics) Channel(_ context.Context) (*domain.ChannelStats, error) {
	a.record("channel")
	return a.ChannelStats, a.Err
}

func (a *Analytics) Videos(_ context.Context, maxResults int) ([]domain.VideoItem, error) {
	a.record("videos")
	a.Max = maxResults
	return a.Uploads, a.Err
}

func (a *Analytics) VideoAnalytics(_ context.Context, videoID string, r domain.DateRange) (*domain.AnalyticsReport, error) {
	a.record("video")
	a.Video, a.Range = videoID, r
	return a.Report, a.Err
}

func (a *Analytics) RevenueReport(_ context.Context, r domain.DateRange) (*domain.AnalyticsReport, error) {
	a.record("revenue")
	a.Range = r
	return a.Report, a.Err
}

func (a *Analytics) GrowthReport(_ context.Context, r domain.DateRange) (*domain.AnalyticsReport, error) {
	a.record("growth")
	a.Range = r
	return a.Report, a.Err
}

func (a *Analytics) TopVideos(_ context.Context, r domain.DateRange, maxResults int) (*domain.AnalyticsReport, error) {
	a.record("top")
	a.Range, a.Max = r, maxResults
	return a.Report, a.Err
}

func (a *Analytics) FormatComparison(_ context.Context, maxResults int) (*domain.FormatSummary, error) {
	a.record("formats")
	a.Max = maxResults
	return a.Formats, a.Err
}

// Reports returns canned summaries.
type Reports struct {
	Report         *domain.AnalyticsReport
	RevenueSummary *domain.RevenueSummary
	GrowthSummary  *domain.GrowthSummary
	Rate           *domain.ExchangeRate
	Err            error
}

func (r *Reports) Revenue(_ context.Context, _ domain.DateRange) (*domain.AnalyticsReport, *domain.RevenueSummary, error) {
	return r.Report, r.RevenueSummary, r.Err
}

func (r *Reports) Growth(_ context.Context, _ domain.DateRange) (*domain.AnalyticsReport, *domain.GrowthSummary, error) {
	return r.Report, r.GrowthSummary, r.Err
}

func (r *Reports) ExchangeRate(_ context.Context, _ string) (*domain.ExchangeRate, error) {
	return r.Rate, r.Err
}

// SavedReports keeps saved reports in a slice and streams them on change.
type SavedReports struct {
	Err error

	mu       sync.Mutex
	reports  []domain.SavedReport
	watchers []chan []domain.SavedReport
	nextID   int
}

// NewSavedReports returns a store seeded with reports.
func NewSavedReports(reports ...domain.SavedReport) *SavedReports {
	return &SavedReports{reports: reports}
}

func (s *SavedReports) Save(
	_ context.Context,
	kind domain.ReportKind,
	title string,
	r domain.DateRange,
	params map[string]string,
) (*domain.SavedReport, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	s.nextID++
	if title == "" {
		title = string(kind) + " " + r.String()
	}
	sr := domain.SavedReport{
		ID:     "saved-" + strconv.Itoa(s.nextID),
		Kind:   kind,
		Title:  title,
		Range:  r,
		Params: params,
	}
	s.reports = append([]domain.SavedReport{sr}, s.reports...)
	s.mu.Unlock()
	s.publish()
	return &sr, nil
}

func (s *SavedReports) List(_ context.Context) ([]domain.SavedReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SavedReport(nil), s.reports...), s.Err
}

func (s *SavedReports) Delete(_ context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	found := false
	for i, r := range s.reports {
		if r.ID == id {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return domain.ErrNotFound
	}
	s.publish()
	return nil
}

// Watch sends the current list, then every change, until ctx is done.
func (s *SavedReports) Watch(ctx context.Context) (<-chan []domain.SavedReport, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	ch := make(chan []domain.SavedReport, 8)
	s.mu.Lock()
	s.watchers = append(s.watchers, ch)
	ch <- append([]domain.SavedReport(nil), s.reports...)
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, w := range s.watchers {
			if w == ch {
				s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (s *SavedReports) publish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.watchers {
		select {
		case w <- append([]domain.SavedReport(nil), s.reports...):
		default:
		}
	}
}

// Session records sign-in attempts. SignInErr makes every attempt fail.
type Session struct {
	User      string
	SignInErr error
	SignIns   []string
}

func (s *Session) SignIn(_ context.Context, email string) error {
	s.SignIns = append(s.SignIns, email)
	if s.SignInErr != nil {
		return s.SignInErr
	}
	s.User = email
	return nil
}

func (s *Session) SignOut() {
	s.User = ""
}

func (s *Session) CurrentUser() string {
	return s.User
}
