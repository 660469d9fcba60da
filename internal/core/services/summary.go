package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driven"
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
	"github.com/custodia-labs/tubedash/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService runs catalog reports and attaches their summaries.
type ReportService struct {
	analytics driving.AnalyticsService
	rates     driven.ExchangeRateProvider
}

// NewReportService creates a report service.
// rates may be nil; currency conversion is then unavailable.
func NewReportService(analytics driving.AnalyticsService, rates driven.ExchangeRateProvider) *ReportService {
	return &ReportService{
		analytics: analytics,
		rates:     rates,
	}
}

// Revenue returns the revenue report and its totals.
func (s *ReportService) Revenue(
	ctx context.Context,
	r domain.DateRange,
) (*domain.AnalyticsReport, *domain.RevenueSummary, error) {
	report, err := s.analytics.RevenueReport(ctx, r)
	if err != nil {
		return nil, nil, err
	}
	summary := SummariseRevenue(report)
	return report, &summary, nil
}

// Growth returns the growth report and its totals.
func (s *ReportService) Growth(
	ctx context.Context,
	r domain.DateRange,
) (*domain.AnalyticsReport, *domain.GrowthSummary, error) {
	report, err := s.analytics.GrowthReport(ctx, r)
	if err != nil {
		return nil, nil, err
	}
	summary := SummariseGrowth(report)
	return report, &summary, nil
}

// ExchangeRate returns the USD->quote rate.
// Failures are logged and reported as an unavailable rate.
func (s *ReportService) ExchangeRate(ctx context.Context, quote string) (*domain.ExchangeRate, error) {
	if s.rates == nil {
		return nil, nil
	}
	quote = strings.ToUpper(strings.TrimSpace(quote))
	if quote == "" || quote == "USD" {
		return nil, fmt.Errorf("%w: quote currency must differ from USD", domain.ErrInvalidInput)
	}

	rate, err := s.rates.Latest(ctx, "USD", quote)
	if err != nil {
		logger.Warn("exchange rate unavailable: %v", err)
		return nil, nil
	}
	return rate, nil
}

// SummariseRevenue totals a revenue report.
// CPM is averaged over days that had a positive CPM.
func SummariseRevenue(report *domain.AnalyticsReport) domain.RevenueSummary {
	var cpmTotal float64
	var cpmDays int
	for _, row := range report.Rows {
		if cpm := row.Float("cpm"); cpm > 0 {
			cpmTotal += cpm
			cpmDays++
		}
	}

	summary := domain.RevenueSummary{
		Views:              report.Sum("views"),
		EstimatedRevenue:   report.Sum("estimatedRevenue"),
		EstimatedAdRevenue: report.Sum("estimatedAdRevenue"),
		GrossRevenue:       report.Sum("grossRevenue"),
		MonetizedPlaybacks: report.Sum("monetizedPlaybacks"),
		Days:               len(report.Rows),
	}
	if cpmDays > 0 {
		summary.AverageCPM = cpmTotal / float64(cpmDays)
	}
	return summary
}

// SummariseGrowth totals a growth report.
func SummariseGrowth(report *domain.AnalyticsReport) domain.GrowthSummary {
	gained := report.Sum("subscribersGained")
	lost := report.Sum("subscribersLost")

	return domain.GrowthSummary{
		Views:                   report.Sum("views"),
		WatchMinutes:            report.Sum("estimatedMinutesWatched"),
		AverageViewDurationSecs: report.Mean("averageViewDuration"),
		Likes:                   report.Sum("likes"),
		SubscribersGained:       gained,
		SubscribersLost:         lost,
		NetSubscribers:          gained - lost,
		Days:                    len(report.Rows),
	}
}

// SummariseFormats splits videos into short-form and long-form groups.
func SummariseFormats(videos []domain.VideoItem) domain.FormatSummary {
	var summary domain.FormatSummary
	for _, v := range videos {
		group := &summary.LongForm
		if v.IsShort() {
			group = &summary.Shorts
		}
		group.Count++
		group.TotalViews += v.ViewCount
		group.TotalLikes += v.LikeCount
		group.TotalComments += v.CommentCount
	}

	for _, g := range []*domain.FormatGroup{&summary.Shorts, &summary.LongForm} {
		if g.Count > 0 {
			g.AverageViews = float64(g.TotalViews) / float64(g.Count)
		}
	}
	return summary
}
