package cli

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// formatNumber prints whole numbers without decimals.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprintf("%.2f", f)
}

func printReport(cmd *cobra.Command, report *domain.AnalyticsReport) {
	if len(report.Rows) == 0 {
		cmd.Println("No data for this period.")
		return
	}

	t := newTable(report.Columns...)
	for _, row := range report.Rows {
		cells := make([]string, len(report.Columns))
		for i, col := range report.Columns {
			if f, ok := row[col].(float64); ok {
				cells[i] = formatNumber(f)
				continue
			}
			cells[i] = row.String(col)
		}
		t.Row(cells...)
	}
	cmd.Println(t.Render())
}

func count(n uint64) string {
	return fmt.Sprint(n)
}

func printChannel(cmd *cobra.Command, ch *domain.ChannelStats) {
	cmd.Printf("%s (%s)\n", ch.Title, ch.ID)
	cmd.Printf("  Subscribers: %d\n", ch.SubscriberCount)
	cmd.Printf("  Views:       %d\n", ch.ViewCount)
	cmd.Printf("  Videos:      %d\n", ch.VideoCount)
}

func printVideos(cmd *cobra.Command, videos []domain.VideoItem) {
	if len(videos) == 0 {
		cmd.Println("No uploads found.")
		return
	}

	t := newTable("ID", "PUBLISHED", "VIEWS", "LIKES", "COMMENTS", "FORMAT", "TITLE")
	for _, v := range videos {
		format := "long"
		if v.IsShort() {
			format = "short"
		}
		published := v.PublishedAt
		if t := v.Published(); !t.IsZero() {
			published = t.Format(domain.DateLayout)
		}
		t.Row(v.ID, published, count(v.ViewCount), count(v.LikeCount), count(v.CommentCount), format, v.Title)
	}
	cmd.Println(t.Render())
}

func printRevenueSummary(cmd *cobra.Command, s *domain.RevenueSummary, rate *domain.ExchangeRate) {
	cmd.Printf("\nTotals over %d days\n", s.Days)
	cmd.Printf("  Views:               %s\n", formatNumber(s.Views))
	cmd.Printf("  Estimated revenue:   %s\n", money(s.EstimatedRevenue, rate))
	cmd.Printf("  Ad revenue:          %s\n", money(s.EstimatedAdRevenue, rate))
	cmd.Printf("  Gross revenue:       %s\n", money(s.GrossRevenue, rate))
	cmd.Printf("  Monetized playbacks: %s\n", formatNumber(s.MonetizedPlaybacks))
	cmd.Printf("  Average CPM:         %s\n", money(s.AverageCPM, rate))
}

func money(usd float64, rate *domain.ExchangeRate) string {
	if rate == nil {
		return fmt.Sprintf("$%.2f", usd)
	}
	return fmt.Sprintf("$%.2f (%.2f %s)", usd, rate.Convert(usd), rate.Quote)
}

func printGrowthSummary(cmd *cobra.Command, s *domain.GrowthSummary) {
	cmd.Printf("\nTotals over %d days\n", s.Days)
	cmd.Printf("  Views:              %s\n", formatNumber(s.Views))
	cmd.Printf("  Watch minutes:      %s\n", formatNumber(s.WatchMinutes))
	cmd.Printf("  Avg view duration:  %.0fs\n", s.AverageViewDurationSecs)
	cmd.Printf("  Likes:              %s\n", formatNumber(s.Likes))
	cmd.Printf("  Subscribers:        +%s / -%s (net %s)\n",
		formatNumber(s.SubscribersGained), formatNumber(s.SubscribersLost), formatNumber(s.NetSubscribers))
}

func printFormats(cmd *cobra.Command, s *domain.FormatSummary) {
	t := newTable("FORMAT", "VIDEOS", "VIEWS", "LIKES", "COMMENTS", "AVG VIEWS")
	for _, g := range []struct {
		name  string
		group domain.FormatGroup
	}{
		{"shorts", s.Shorts},
		{"long-form", s.LongForm},
	} {
		t.Row(g.name, fmt.Sprint(g.group.Count), count(g.group.TotalViews), count(g.group.TotalLikes),
			count(g.group.TotalComments), fmt.Sprintf("%.0f", g.group.AverageViews))
	}
	cmd.Println(t.Render())
}
