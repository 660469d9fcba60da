package cli

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

func TestRangeFromFlags(t *testing.T) {
	defer resetFlags()
	defer SetServices(Services{Settings: domain.DefaultSettings()})
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		days       int
		start, end string
		configured int
		want       domain.DateRange
		wantErr    bool
	}{
		{name: "default", want: domain.DateRange{Start: "2024-03-03", End: "2024-03-31"}},
		{name: "days flag", days: 7, want: domain.DateRange{Start: "2024-03-24", End: "2024-03-31"}},
		{name: "configured days", configured: 90, want: domain.DateRange{Start: "2024-01-01", End: "2024-03-31"}},
		{
			name: "explicit range", start: "2024-01-01", end: "2024-01-31",
			want: domain.DateRange{Start: "2024-01-01", End: "2024-01-31"},
		},
		{name: "start without end", start: "2024-01-01", wantErr: true},
		{name: "end without start", end: "2024-01-31", wantErr: true},
		{name: "reversed", start: "2024-02-01", end: "2024-01-01", wantErr: true},
		{name: "bad date", start: "01/01/2024", end: "2024-01-31", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			s := domain.DefaultSettings()
			s.ReportDays = tt.configured
			SetServices(Services{Settings: s})
			reportDays, reportStart, reportEnd = tt.days, tt.start, tt.end

			got, err := rangeFromFlags(now)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReportParams(t *testing.T) {
	defer resetFlags()
	resetFlags()
	reportCurrency = " eur"

	assert.Equal(t, map[string]string{"video_id": "v1"}, reportParams(domain.ReportVideo, []string{"v1"}))
	assert.Equal(t, map[string]string{"max": "20"}, reportParams(domain.ReportTop, nil))
	assert.Equal(t, map[string]string{"max": "50"}, reportParams(domain.ReportFormats, nil))
	assert.Equal(t, map[string]string{"currency": "EUR"}, reportParams(domain.ReportRevenue, nil))
	assert.Empty(t, reportParams(domain.ReportGrowth, nil))
}

func TestReportTopCmd(t *testing.T) {
	f := newFixture()

	out, _, err := f.run(t, "report", "top", "--max", "5", "--start", "2024-03-01", "--end", "2024-03-31")

	require.NoError(t, err)
	assert.Equal(t, 5, f.analytics.Max)
	assert.Equal(t, domain.DateRange{Start: "2024-03-01", End: "2024-03-31"}, f.analytics.Range)
	assert.Contains(t, out, "2024-03-01")
	assert.Contains(t, out, "120")
}

func TestReportVideoCmd(t *testing.T) {
	f := newFixture()

	_, _, err := f.run(t, "report", "video", "abc123", "-d", "7")

	require.NoError(t, err)
	assert.Equal(t, "abc123", f.analytics.Video)
	assert.Equal(t, []string{"video"}, f.analytics.Calls)
}

func TestReportVideoCmd_RequiresID(t *testing.T) {
	f := newFixture()

	_, _, err := f.run(t, "report", "video")

	assert.Error(t, err)
	assert.Empty(t, f.analytics.Calls)
}

func TestReportCmd_HalfRange(t *testing.T) {
	f := newFixture()

	_, _, err := f.run(t, "report", "growth", "--start", "2024-03-01")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportCmd_EmptyReport(t *testing.T) {
	f := newFixture()
	f.analytics.Report = &domain.AnalyticsReport{Columns: []string{"day"}}

	out, _, err := f.run(t, "report", "top")

	require.NoError(t, err)
	assert.Equal(t, "No data for this period.\n", out)
}

func TestReportRevenueCmd(t *testing.T) {
	f := newFixture()
	f.reports.Report = f.analytics.Report
	f.reports.RevenueSummary = &domain.RevenueSummary{Views: 200, EstimatedRevenue: 12.5, AverageCPM: 3.2, Days: 2}

	out, errOut, err := f.run(t, "report", "revenue")

	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Totals over 2 days")
	assert.Contains(t, out, "$12.50")
}

func TestReportRevenueCmd_Currency(t *testing.T) {
	f := newFixture()
	f.reports.Report = f.analytics.Report
	f.reports.RevenueSummary = &domain.RevenueSummary{EstimatedRevenue: 10, Days: 28}
	f.reports.Rate = &domain.ExchangeRate{Base: "USD", Quote: "EUR", Rate: 0.9, Date: "2024-03-29"}

	out, _, err := f.run(t, "report", "revenue", "--currency", "eur")

	require.NoError(t, err)
	assert.Contains(t, out, "$10.00 (9.00 EUR)")
}

func TestReportRevenueCmd_RateUnavailable(t *testing.T) {
	f := newFixture()
	f.reports.Report = f.analytics.Report
	f.reports.RevenueSummary = &domain.RevenueSummary{EstimatedRevenue: 10, Days: 28}

	out, errOut, err := f.run(t, "report", "revenue", "--currency", "EUR")

	require.NoError(t, err)
	assert.Contains(t, errOut, "Exchange rate for EUR unavailable")
	assert.Contains(t, out, "$10.00")
	assert.NotContains(t, out, "EUR")
}

func TestReportRevenueCmd_NoReportService(t *testing.T) {
	f := newFixture()
	f.reports = nil

	_, _, err := f.run(t, "report", "revenue")

	assert.EqualError(t, err, "report service not configured")
}

func TestReportGrowthCmd_JSON(t *testing.T) {
	f := newFixture()
	f.reports.Report = f.analytics.Report
	f.reports.GrowthSummary = &domain.GrowthSummary{Views: 200, NetSubscribers: 4, Days: 2}

	out, _, err := f.run(t, "report", "growth", "--json")
	require.NoError(t, err)

	var got struct {
		Report  domain.AnalyticsReport `json:"report"`
		Summary domain.GrowthSummary   `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Report.Rows, 2)
	assert.Equal(t, 4.0, got.Summary.NetSubscribers)
}

func TestReportFormatsCmd(t *testing.T) {
	f := newFixture()
	f.analytics.Formats = &domain.FormatSummary{
		Shorts:   domain.FormatGroup{Count: 3, TotalViews: 3000, AverageViews: 1000},
		LongForm: domain.FormatGroup{Count: 2, TotalViews: 500, AverageViews: 250},
	}

	out, _, err := f.run(t, "report", "formats", "-n", "10")

	require.NoError(t, err)
	assert.Equal(t, 10, f.analytics.Max)
	assert.Contains(t, out, "shorts")
	assert.Contains(t, out, "long-form")
	assert.Contains(t, out, "3000")
}
