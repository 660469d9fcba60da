package youtube

import (
	"context"
	"strconv"
	"strings"

	"google.golang.org/api/youtube/v3"
	"google.golang.org/api/youtubeanalytics/v2"

	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
	"github.com/custodia-labs/tubedash/internal/core/services"
)

// Ensure Catalog implements the interface.
var _ driving.AnalyticsService = (*Catalog)(nil)

// API paths.
const (
	pathChannels      = "/channels"
	pathPlaylistItems = "/playlistItems"
	pathVideos        = "/videos"
	pathReports       = "/reports"
)

// Metric sets requested by each report.
const (
	videoMetrics   = "views,estimatedMinutesWatched,averageViewDuration,likes,subscribersGained,estimatedRevenue"
	revenueMetrics = "views,estimatedRevenue,estimatedAdRevenue,grossRevenue,cpm,monetizedPlaybacks"
	growthMetrics  = "views,estimatedMinutesWatched,averageViewDuration,likes,subscribersGained,subscribersLost"
	topMetrics     = "views,estimatedMinutesWatched,likes,estimatedRevenue"
)

// maxPageSize is the Data API's per-page ceiling.
const maxPageSize = 50

// analyticsQuery describes one analytics report request.
type analyticsQuery struct {
	metrics    string
	dimensions string
	filters    string
	sort       string
	maxResults int
}

// Catalog is the fixed set of channel queries. Every request goes through
// the fetcher, so each one gets the token/retry protocol independently.
type Catalog struct {
	fetcher      driving.Fetcher
	dataURL      string
	analyticsURL string
}

// NewCatalog creates a catalog using the API base URLs in settings.
func NewCatalog(fetcher driving.Fetcher, settings domain.APISettings) *Catalog {
	return &Catalog{
		fetcher:      fetcher,
		dataURL:      settings.DataBaseURL,
		analyticsURL: settings.AnalyticsBaseURL,
	}
}

// Channel returns the signed-in account's channel.
func (c *Catalog) Channel(ctx context.Context) (*domain.ChannelStats, error) {
	params := domain.NewQueryParams("part", "snippet,statistics", "mine", "true")

	var resp youtube.ChannelListResponse
	if err := c.data(ctx, pathChannels, params, &resp, "channel list"); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 || resp.Items[0] == nil {
		return nil, domain.ErrNoChannel
	}
	return channelStats(resp.Items[0]), nil
}

// Videos lists up to maxResults uploads in three sequential calls:
// uploads playlist lookup, playlist page, then video details.
func (c *Catalog) Videos(ctx context.Context, maxResults int) ([]domain.VideoItem, error) {
	uploads, err := c.uploadsPlaylist(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := c.playlistVideoIDs(ctx, uploads, clampPageSize(maxResults))
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.VideoItem{}, nil
	}

	params := domain.NewQueryParams(
		"part", "snippet,statistics,contentDetails",
		"id", strings.Join(ids, ","),
	)
	var resp youtube.VideoListResponse
	if err := c.data(ctx, pathVideos, params, &resp, "video list"); err != nil {
		return nil, err
	}

	videos := make([]domain.VideoItem, 0, len(resp.Items))
	for _, v := range resp.Items {
		if v != nil {
			videos = append(videos, videoItem(v))
		}
	}
	return videos, nil
}

func (c *Catalog) uploadsPlaylist(ctx context.Context) (string, error) {
	params := domain.NewQueryParams("part", "contentDetails", "mine", "true")

	var resp youtube.ChannelListResponse
	if err := c.data(ctx, pathChannels, params, &resp, "channel list"); err != nil {
		return "", err
	}
	if len(resp.Items) == 0 || resp.Items[0] == nil {
		return "", domain.ErrNoUploadsCollection
	}
	details := resp.Items[0].ContentDetails
	if details == nil || details.RelatedPlaylists == nil || details.RelatedPlaylists.Uploads == "" {
		return "", domain.ErrNoUploadsCollection
	}
	return details.RelatedPlaylists.Uploads, nil
}

func (c *Catalog) playlistVideoIDs(ctx context.Context, playlistID string, limit int) ([]string, error) {
	params := domain.NewQueryParams(
		"part", "contentDetails",
		"playlistId", playlistID,
		"maxResults", strconv.Itoa(limit),
	)

	var resp youtube.PlaylistItemListResponse
	if err := c.data(ctx, pathPlaylistItems, params, &resp, "playlist items"); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item != nil && item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
			ids = append(ids, item.ContentDetails.VideoId)
		}
	}
	return ids, nil
}

// VideoAnalytics returns daily metrics for one video.
func (c *Catalog) VideoAnalytics(
	ctx context.Context,
	videoID string,
	r domain.DateRange,
) (*domain.AnalyticsReport, error) {
	if videoID == "" {
		return nil, domain.ErrInvalidInput
	}
	return c.report(ctx, r, analyticsQuery{
		metrics:    videoMetrics,
		dimensions: "day",
		filters:    "video==" + videoID,
		sort:       "day",
	})
}

// RevenueReport returns daily revenue metrics.
func (c *Catalog) RevenueReport(ctx context.Context, r domain.DateRange) (*domain.AnalyticsReport, error) {
	return c.report(ctx, r, analyticsQuery{
		metrics:    revenueMetrics,
		dimensions: "day",
		sort:       "day",
	})
}

// GrowthReport returns daily audience growth metrics.
func (c *Catalog) GrowthReport(ctx context.Context, r domain.DateRange) (*domain.AnalyticsReport, error) {
	return c.report(ctx, r, analyticsQuery{
		metrics:    growthMetrics,
		dimensions: "day",
		sort:       "day",
	})
}

// TopVideos returns per-video metrics, most viewed first.
func (c *Catalog) TopVideos(
	ctx context.Context,
	r domain.DateRange,
	maxResults int,
) (*domain.AnalyticsReport, error) {
	if maxResults <= 0 {
		maxResults = domain.DefaultTopVideosLimit
	}
	return c.report(ctx, r, analyticsQuery{
		metrics:    topMetrics,
		dimensions: "video",
		sort:       "-views",
		maxResults: maxResults,
	})
}

// FormatComparison splits recent uploads into shorts and long-form videos.
func (c *Catalog) FormatComparison(ctx context.Context, maxResults int) (*domain.FormatSummary, error) {
	videos, err := c.Videos(ctx, maxResults)
	if err != nil {
		return nil, err
	}
	summary := services.SummariseFormats(videos)
	return &summary, nil
}

func (c *Catalog) report(
	ctx context.Context,
	r domain.DateRange,
	q analyticsQuery,
) (*domain.AnalyticsReport, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	params := domain.NewQueryParams(
		"ids", "channel==MINE",
		"startDate", r.Start,
		"endDate", r.End,
		"metrics", q.metrics,
	)
	params.SetIfNotEmpty("dimensions", q.dimensions)
	params.SetIfNotEmpty("filters", q.filters)
	params.SetIfNotEmpty("sort", q.sort)
	if q.maxResults > 0 {
		params.Set("maxResults", strconv.Itoa(q.maxResults))
	}

	payload, err := c.fetcher.Fetch(ctx, c.analyticsURL, pathReports, params)
	if err != nil {
		return nil, err
	}

	var resp youtubeanalytics.QueryResponse
	if err := decode(payload, &resp, "analytics report"); err != nil {
		return nil, err
	}
	return services.NormalizeReport(toColumnar(&resp))
}

func (c *Catalog) data(ctx context.Context, path string, params domain.QueryParams, v any, what string) error {
	payload, err := c.fetcher.Fetch(ctx, c.dataURL, path, params)
	if err != nil {
		return err
	}
	return decode(payload, v, what)
}

func clampPageSize(n int) int {
	switch {
	case n <= 0:
		return domain.DefaultVideoLimit
	case n > maxPageSize:
		return maxPageSize
	default:
		return n
	}
}
