package mcp

import (
	"context"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// mockAnalyticsService is a mock implementation of driving.AnalyticsService.
type mockAnalyticsService struct {
	channel *domain.ChannelStats
	videos  []domain.VideoItem
	report  *domain.AnalyticsReport
	formats *domain.FormatSummary
	err     error

	gotRange   domain.DateRange
	gotMax     int
	gotVideoID string
}

func (m *mockAnalyticsService) Channel(_ context.Context) (*domain.ChannelStats, error) {
	return m.channel, m.err
}

func (m *mockAnalyticsService) Videos(_ context.Context, maxResults int) ([]domain.VideoItem, error) {
	m.gotMax = maxResults
	return m.videos, m.err
}

func (m *mockAnalyticsService) VideoAnalytics(
	_ context.Context,
	videoID string,
	r domain.DateRange,
) (*domain.AnalyticsReport, error) {
	m.gotVideoID = videoID
	m.gotRange = r
	return m.report, m.err
}

func (m *mockAnalyticsService) RevenueReport(_ context.Context, r domain.DateRange) (*domain.AnalyticsReport, error) {
	m.gotRange = r
	return m.report, m.err
}

func (m *mockAnalyticsService) GrowthReport(_ context.Context, r domain.DateRange) (*domain.AnalyticsReport, error) {
	m.gotRange = r
	return m.report, m.err
}

func (m *mockAnalyticsService) TopVideos(
	_ context.Context,
	r domain.DateRange,
	maxResults int,
) (*domain.AnalyticsReport, error) {
	m.gotRange = r
	m.gotMax = maxResults
	return m.report, m.err
}

func (m *mockAnalyticsService) FormatComparison(_ context.Context, maxResults int) (*domain.FormatSummary, error) {
	m.gotMax = maxResults
	return m.formats, m.err
}

// mockReportService is a mock implementation of driving.ReportService.
type mockReportService struct {
	report  *domain.AnalyticsReport
	revenue *domain.RevenueSummary
	growth  *domain.GrowthSummary
	err     error
}

func (m *mockReportService) Revenue(
	_ context.Context,
	_ domain.DateRange,
) (*domain.AnalyticsReport, *domain.RevenueSummary, error) {
	return m.report, m.revenue, m.err
}

func (m *mockReportService) Growth(
	_ context.Context,
	_ domain.DateRange,
) (*domain.AnalyticsReport, *domain.GrowthSummary, error) {
	return m.report, m.growth, m.err
}

func (m *mockReportService) ExchangeRate(_ context.Context, _ string) (*domain.ExchangeRate, error) {
	return nil, m.err
}

// mockSavedReportService is a mock implementation of driving.SavedReportService.
type mockSavedReportService struct {
	reports []domain.SavedReport
	err     error
}

func (m *mockSavedReportService) Save(
	_ context.Context,
	_ domain.ReportKind,
	_ string,
	_ domain.DateRange,
	_ map[string]string,
) (*domain.SavedReport, error) {
	return nil, m.err
}

func (m *mockSavedReportService) List(_ context.Context) ([]domain.SavedReport, error) {
	return m.reports, m.err
}

func (m *mockSavedReportService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockSavedReportService) Watch(_ context.Context) (<-chan []domain.SavedReport, error) {
	return nil, m.err
}
