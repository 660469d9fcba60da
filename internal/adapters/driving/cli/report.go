package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/logger"
)

// Range and limit flags shared by report and saved add.
var (
	reportDays     int
	reportStart    string
	reportEnd      string
	topMax         int
	formatsMax     int
	reportCurrency string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run an analytics report",
	Long: `Run an analytics report over a date range.

The range defaults to the last report.days days (28 unless configured).
Use --start and --end together for an explicit range.`,
}

var reportRevenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Daily revenue and CPM",
	Args:  cobra.NoArgs,
	RunE:  runReport(domain.ReportRevenue),
}

var reportGrowthCmd = &cobra.Command{
	Use:   "growth",
	Short: "Daily views, watch time and subscribers",
	Args:  cobra.NoArgs,
	RunE:  runReport(domain.ReportGrowth),
}

var reportTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Most viewed videos in the range",
	Args:  cobra.NoArgs,
	RunE:  runReport(domain.ReportTop),
}

var reportVideoCmd = &cobra.Command{
	Use:   "video <video-id>",
	Short: "Daily metrics for one video",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport(domain.ReportVideo),
}

var reportFormatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Compare shorts with long-form uploads",
	Args:  cobra.NoArgs,
	RunE:  runReport(domain.ReportFormats),
}

func init() {
	addRangeFlags(reportCmd)
	reportTopCmd.Flags().IntVarP(&topMax, "max", "n", domain.DefaultTopVideosLimit, "number of videos")
	reportFormatsCmd.Flags().IntVarP(&formatsMax, "max", "n", domain.DefaultVideoLimit, "uploads to compare (1-50)")
	reportRevenueCmd.Flags().StringVar(&reportCurrency, "currency", "", "also show amounts in this currency (e.g. EUR)")

	reportCmd.AddCommand(reportRevenueCmd, reportGrowthCmd, reportTopCmd, reportVideoCmd, reportFormatsCmd)
	rootCmd.AddCommand(reportCmd)
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVarP(&reportDays, "days", "d", 0, "report the last N days")
	cmd.PersistentFlags().StringVar(&reportStart, "start", "", "start date (YYYY-MM-DD)")
	cmd.PersistentFlags().StringVar(&reportEnd, "end", "", "end date (YYYY-MM-DD)")
}

// rangeFromFlags resolves --start/--end or --days into a date range.
func rangeFromFlags(now time.Time) (domain.DateRange, error) {
	if reportStart != "" || reportEnd != "" {
		if reportStart == "" || reportEnd == "" {
			return domain.DateRange{}, fmt.Errorf("%w: --start and --end must be used together", domain.ErrInvalidInput)
		}
		r := domain.DateRange{Start: reportStart, End: reportEnd}
		return r, r.Validate()
	}

	days := reportDays
	if days <= 0 {
		days = settings.ReportDays
	}
	if days <= 0 {
		days = domain.DefaultReportDays
	}
	return domain.LastNDays(days, now), nil
}

// reportParams collects the kind-specific flags for saving or replaying.
func reportParams(kind domain.ReportKind, args []string) map[string]string {
	params := map[string]string{}
	switch kind {
	case domain.ReportVideo:
		if len(args) > 0 {
			params[domain.ParamVideoID] = args[0]
		}
	case domain.ReportTop:
		if topMax > 0 {
			params[domain.ParamMax] = strconv.Itoa(topMax)
		}
	case domain.ReportFormats:
		if formatsMax > 0 {
			params[domain.ParamMax] = strconv.Itoa(formatsMax)
		}
	case domain.ReportRevenue:
		if c := strings.TrimSpace(reportCurrency); c != "" {
			params[domain.ParamCurrency] = strings.ToUpper(c)
		}
	}
	return params
}

func runReport(kind domain.ReportKind) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		r, err := rangeFromFlags(time.Now())
		if err != nil {
			return err
		}
		return renderKind(cmd, kind, r, reportParams(kind, args))
	}
}

// renderKind runs one report kind and prints it.
func renderKind(cmd *cobra.Command, kind domain.ReportKind, r domain.DateRange, params map[string]string) error {
	ctx := cmd.Context()
	if err := requireAnalytics(ctx); err != nil {
		return err
	}
	logger.Debug("report %s %s params=%v", kind, r, params)

	limit := 0
	if v, ok := params[domain.ParamMax]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: max %q is not a number", domain.ErrInvalidInput, v)
		}
		limit = n
	}

	switch kind {
	case domain.ReportRevenue:
		return renderRevenue(cmd, r, params[domain.ParamCurrency])
	case domain.ReportGrowth:
		return renderGrowth(cmd, r)
	case domain.ReportTop:
		report, err := analyticsService.TopVideos(ctx, r, limit)
		if err != nil {
			return err
		}
		return emitReport(cmd, report)
	case domain.ReportVideo:
		report, err := analyticsService.VideoAnalytics(ctx, params[domain.ParamVideoID], r)
		if err != nil {
			return err
		}
		return emitReport(cmd, report)
	case domain.ReportFormats:
		if limit <= 0 {
			limit = domain.DefaultVideoLimit
		}
		summary, err := analyticsService.FormatComparison(ctx, limit)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, summary)
		}
		printFormats(cmd, summary)
		return nil
	default:
		return fmt.Errorf("%w: unknown report kind %q", domain.ErrInvalidInput, kind)
	}
}

func emitReport(cmd *cobra.Command, report *domain.AnalyticsReport) error {
	if jsonOutput {
		return printJSON(cmd, report)
	}
	printReport(cmd, report)
	return nil
}

func renderRevenue(cmd *cobra.Command, r domain.DateRange, currency string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}
	ctx := cmd.Context()

	report, summary, err := reportService.Revenue(ctx, r)
	if err != nil {
		return err
	}

	var rate *domain.ExchangeRate
	if currency != "" {
		rate, err = reportService.ExchangeRate(ctx, currency)
		if err != nil {
			return err
		}
		if rate == nil {
			cmd.PrintErrf("Exchange rate for %s unavailable, showing USD only.\n", currency)
		}
	}

	if jsonOutput {
		return printJSON(cmd, struct {
			Report  *domain.AnalyticsReport `json:"report"`
			Summary *domain.RevenueSummary  `json:"summary"`
			Rate    *domain.ExchangeRate    `json:"rate,omitempty"`
		}{report, summary, rate})
	}
	printReport(cmd, report)
	printRevenueSummary(cmd, summary, rate)
	return nil
}

func renderGrowth(cmd *cobra.Command, r domain.DateRange) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	report, summary, err := reportService.Growth(cmd.Context(), r)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd, struct {
			Report  *domain.AnalyticsReport `json:"report"`
			Summary *domain.GrowthSummary   `json:"summary"`
		}{report, summary})
	}
	printReport(cmd, report)
	printGrowthSummary(cmd, summary)
	return nil
}
