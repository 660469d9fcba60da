package driving

import (
	"context"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// AnalyticsService is the fixed catalog of channel queries used by every view.
type AnalyticsService interface {
	// Channel returns the signed-in account's channel metadata.
	Channel(ctx context.Context) (*domain.ChannelStats, error)

	// Videos lists up to maxResults of the channel's uploads.
	// Returns domain.ErrNoUploadsCollection if the uploads playlist is missing.
	Videos(ctx context.Context, maxResults int) ([]domain.VideoItem, error)

	// VideoAnalytics returns daily metrics for one video.
	VideoAnalytics(ctx context.Context, videoID string, r domain.DateRange) (*domain.AnalyticsReport, error)

	// RevenueReport returns daily revenue metrics.
	RevenueReport(ctx context.Context, r domain.DateRange) (*domain.AnalyticsReport, error)

	// GrowthReport returns daily audience growth metrics.
	GrowthReport(ctx context.Context, r domain.DateRange) (*domain.AnalyticsReport, error)

	// TopVideos returns per-video metrics sorted by views descending.
	TopVideos(ctx context.Context, r domain.DateRange, maxResults int) (*domain.AnalyticsReport, error)

	// FormatComparison compares short-form and long-form uploads.
	FormatComparison(ctx context.Context, maxResults int) (*domain.FormatSummary, error)
}
