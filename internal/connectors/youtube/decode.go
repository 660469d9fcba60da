package youtube

import (
	"encoding/json"
	"fmt"

	"google.golang.org/api/youtube/v3"
	"google.golang.org/api/youtubeanalytics/v2"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

func decode(payload []byte, v any, what string) error {
	if err := json.Unmarshal(payload, v); err != nil {
		return &domain.MalformedReportError{Row: -1, Reason: fmt.Sprintf("decoding %s: %v", what, err)}
	}
	return nil
}

// toColumnar converts an analytics query response to the columnar payload.
func toColumnar(resp *youtubeanalytics.QueryResponse) domain.ColumnarPayload {
	headers := make([]domain.ColumnHeader, 0, len(resp.ColumnHeaders))
	for _, h := range resp.ColumnHeaders {
		if h == nil {
			headers = append(headers, domain.ColumnHeader{})
			continue
		}
		headers = append(headers, domain.ColumnHeader{
			Name:       h.Name,
			ColumnType: h.ColumnType,
			DataType:   h.DataType,
		})
	}

	rows := make([][]any, len(resp.Rows))
	for i, row := range resp.Rows {
		rows[i] = row
	}

	return domain.ColumnarPayload{ColumnHeaders: headers, Rows: rows}
}

func channelStats(ch *youtube.Channel) *domain.ChannelStats {
	stats := &domain.ChannelStats{ID: ch.Id}
	if ch.Snippet != nil {
		stats.Title = ch.Snippet.Title
		if th := ch.Snippet.Thumbnails; th != nil {
			stats.Thumbnail = thumbnailURL(th.Default)
		}
	}
	if ch.Statistics != nil {
		stats.SubscriberCount = ch.Statistics.SubscriberCount
		stats.ViewCount = ch.Statistics.ViewCount
		stats.VideoCount = ch.Statistics.VideoCount
	}
	return stats
}

func videoItem(v *youtube.Video) domain.VideoItem {
	item := domain.VideoItem{ID: v.Id}
	if v.Snippet != nil {
		item.Title = v.Snippet.Title
		item.PublishedAt = v.Snippet.PublishedAt
		if th := v.Snippet.Thumbnails; th != nil {
			item.Thumbnail = thumbnailURL(th.Medium)
		}
	}
	if v.Statistics != nil {
		item.ViewCount = v.Statistics.ViewCount
		item.LikeCount = v.Statistics.LikeCount
		item.CommentCount = v.Statistics.CommentCount
	}
	if v.ContentDetails != nil {
		item.Duration = v.ContentDetails.Duration
	}
	return item
}

// thumbnailURL returns the URL of th, or "" when that size is missing.
// Channels show the default size and videos the medium one.
func thumbnailURL(th *youtube.Thumbnail) string {
	if th == nil {
		return ""
	}
	return th.Url
}
