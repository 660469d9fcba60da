package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// RangeInput selects the report period.
type RangeInput struct {
	StartDate string `json:"start_date,omitempty" jsonschema:"first day, YYYY-MM-DD (requires end_date)"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"last day, YYYY-MM-DD (requires start_date)"`
	Days      int    `json:"days,omitempty" jsonschema:"report the last N days when no dates are given"`
}

// ChannelInput is the input schema for the channel_stats tool.
type ChannelInput struct{}

// ChannelOutput is the output schema for the channel_stats tool.
type ChannelOutput struct {
	Channel domain.ChannelStats `json:"channel"`
}

// VideosInput is the input schema for the list_videos tool.
type VideosInput struct {
	Max int `json:"max,omitempty" jsonschema:"maximum uploads to return, 1-50 (default 50)"`
}

// VideosOutput is the output schema for the list_videos tool.
type VideosOutput struct {
	Videos []domain.VideoItem `json:"videos"`
	Count  int                `json:"count"`
}

// TopVideosInput is the input schema for the top_videos tool.
type TopVideosInput struct {
	RangeInput
	Max int `json:"max,omitempty" jsonschema:"number of videos (default 20)"`
}

// VideoAnalyticsInput is the input schema for the video_analytics tool.
type VideoAnalyticsInput struct {
	RangeInput
	VideoID string `json:"video_id" jsonschema:"the YouTube video ID"`
}

// ReportOutput is the output schema for the report tools.
type ReportOutput struct {
	Range   domain.DateRange         `json:"range"`
	Columns []string                 `json:"columns"`
	Rows    []domain.AnalyticsRecord `json:"rows"`
	Revenue *domain.RevenueSummary   `json:"revenue,omitempty"`
	Growth  *domain.GrowthSummary    `json:"growth,omitempty"`
}

// FormatsOutput is the output schema for the format_comparison tool.
type FormatsOutput struct {
	Summary domain.FormatSummary `json:"summary"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "channel_stats",
		Description: "Subscriber, view and video counts for the signed-in channel",
	}, s.handleChannel)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_videos",
		Description: "Recent uploads with view, like and comment counts",
	}, s.handleVideos)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "revenue_report",
		Description: "Daily estimated revenue, ad revenue and CPM with totals",
	}, s.handleRevenue)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "growth_report",
		Description: "Daily views, watch time and subscriber changes with totals",
	}, s.handleGrowth)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "top_videos",
		Description: "Most viewed videos in a period",
	}, s.handleTopVideos)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "video_analytics",
		Description: "Daily metrics for a single video",
	}, s.handleVideoAnalytics)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "format_comparison",
		Description: "Compare shorts with long-form uploads",
	}, s.handleFormats)
}

// resolveRange turns tool input into a validated date range.
func (s *Server) resolveRange(in RangeInput) (domain.DateRange, error) {
	if in.StartDate != "" || in.EndDate != "" {
		r := domain.DateRange{Start: in.StartDate, End: in.EndDate}
		return r, r.Validate()
	}
	days := in.Days
	if days <= 0 {
		days = s.reportDays
	}
	return domain.LastNDays(days, s.now()), nil
}

// toolError keeps the cause but shows the user-facing message.
func toolError(err error) error {
	msg := domain.UserMessage(err)
	if msg == err.Error() {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func reportOutput(r domain.DateRange, report *domain.AnalyticsReport) ReportOutput {
	return ReportOutput{
		Range:   r,
		Columns: report.Columns,
		Rows:    report.Rows,
	}
}

func (s *Server) handleChannel(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ChannelInput,
) (*mcp.CallToolResult, ChannelOutput, error) {
	ch, err := s.ports.Analytics.Channel(ctx)
	if err != nil {
		return nil, ChannelOutput{}, toolError(err)
	}
	return nil, ChannelOutput{Channel: *ch}, nil
}

func (s *Server) handleVideos(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input VideosInput,
) (*mcp.CallToolResult, VideosOutput, error) {
	videos, err := s.ports.Analytics.Videos(ctx, input.Max)
	if err != nil {
		return nil, VideosOutput{}, toolError(err)
	}
	return nil, VideosOutput{Videos: videos, Count: len(videos)}, nil
}

func (s *Server) handleRevenue(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RangeInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	r, err := s.resolveRange(input)
	if err != nil {
		return nil, ReportOutput{}, toolError(err)
	}

	if s.ports.Reports == nil {
		report, err := s.ports.Analytics.RevenueReport(ctx, r)
		if err != nil {
			return nil, ReportOutput{}, toolError(err)
		}
		return nil, reportOutput(r, report), nil
	}

	report, summary, err := s.ports.Reports.Revenue(ctx, r)
	if err != nil {
		return nil, ReportOutput{}, toolError(err)
	}
	out := reportOutput(r, report)
	out.Revenue = summary
	return nil, out, nil
}

func (s *Server) handleGrowth(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RangeInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	r, err := s.resolveRange(input)
	if err != nil {
		return nil, ReportOutput{}, toolError(err)
	}

	if s.ports.Reports == nil {
		report, err := s.ports.Analytics.GrowthReport(ctx, r)
		if err != nil {
			return nil, ReportOutput{}, toolError(err)
		}
		return nil, reportOutput(r, report), nil
	}

	report, summary, err := s.ports.Reports.Growth(ctx, r)
	if err != nil {
		return nil, ReportOutput{}, toolError(err)
	}
	out := reportOutput(r, report)
	out.Growth = summary
	return nil, out, nil
}

func (s *Server) handleTopVideos(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TopVideosInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	r, err := s.resolveRange(input.RangeInput)
	if err != nil {
		return nil, ReportOutput{}, toolError(err)
	}

	report, err := s.ports.Analytics.TopVideos(ctx, r, input.Max)
	if err != nil {
		return nil, ReportOutput{}, toolError(err)
	}
	return nil, reportOutput(r, report), nil
}

func (s *Server) handleVideoAnalytics(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input VideoAnalyticsInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	r, err := s.resolveRange(input.RangeInput)
	if err != nil {
		return nil, ReportOutput{}, toolError(err)
	}

	report, err := s.ports.Analytics.VideoAnalytics(ctx, input.VideoID, r)
	if err != nil {
		return nil, ReportOutput{}, toolError(err)
	}
	return nil, reportOutput(r, report), nil
}

func (s *Server) handleFormats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input VideosInput,
) (*mcp.CallToolResult, FormatsOutput, error) {
	limit := input.Max
	if limit <= 0 {
		limit = domain.DefaultVideoLimit
	}

	summary, err := s.ports.Analytics.FormatComparison(ctx, limit)
	if err != nil {
		return nil, FormatsOutput{}, toolError(err)
	}
	return nil, FormatsOutput{Summary: *summary}, nil
}
