package domain

import (
	"regexp"
	"strconv"
	"time"
)

// ShortFormMaxSeconds is the duration below which a video counts as a short.
const ShortFormMaxSeconds = 60

// ChannelStats is the flattened channel metadata used by views.
type ChannelStats struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Thumbnail       string `json:"thumbnail"`
	SubscriberCount uint64 `json:"subscriber_count"`
	ViewCount       uint64 `json:"view_count"`
	VideoCount      uint64 `json:"video_count"`
}

// VideoItem is the flattened video metadata used by views.
type VideoItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	PublishedAt  string `json:"published_at"`
	ViewCount    uint64 `json:"view_count"`
	LikeCount    uint64 `json:"like_count"`
	CommentCount uint64 `json:"comment_count"`
	Duration     string `json:"duration"`
}

// DurationSeconds returns the ISO-8601 duration in seconds.
func (v VideoItem) DurationSeconds() int {
	return ParseISODuration(v.Duration)
}

// IsShort returns true for short-form videos.
func (v VideoItem) IsShort() bool {
	return v.DurationSeconds() < ShortFormMaxSeconds
}

// Published returns the publish time, or the zero time if unparseable.
func (v VideoItem) Published() time.Time {
	t, err := time.Parse(time.RFC3339, v.PublishedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

var isoDurationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseISODuration converts a PT#H#M#S duration to seconds.
// Unrecognised input yields 0.
func ParseISODuration(iso string) int {
	m := isoDurationPattern.FindStringSubmatch(iso)
	if m == nil {
		return 0
	}
	seconds := 0
	for i, mult := range []int{3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0
		}
		seconds += n * mult
	}
	return seconds
}
