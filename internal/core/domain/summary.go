package domain

// RevenueSummary totals a revenue report.
type RevenueSummary struct {
	Views              float64 `json:"views"`
	EstimatedRevenue   float64 `json:"estimated_revenue"`
	EstimatedAdRevenue float64 `json:"estimated_ad_revenue"`
	GrossRevenue       float64 `json:"gross_revenue"`
	MonetizedPlaybacks float64 `json:"monetized_playbacks"`
	AverageCPM         float64 `json:"average_cpm"`
	Days               int     `json:"days"`
}

// GrowthSummary totals a growth report.
type GrowthSummary struct {
	Views                   float64 `json:"views"`
	WatchMinutes            float64 `json:"watch_minutes"`
	AverageViewDurationSecs float64 `json:"average_view_duration_secs"`
	Likes                   float64 `json:"likes"`
	SubscribersGained       float64 `json:"subscribers_gained"`
	SubscribersLost         float64 `json:"subscribers_lost"`
	NetSubscribers          float64 `json:"net_subscribers"`
	Days                    int     `json:"days"`
}

// FormatGroup aggregates videos of one format.
type FormatGroup struct {
	Count         int     `json:"count"`
	TotalViews    uint64  `json:"total_views"`
	TotalLikes    uint64  `json:"total_likes"`
	TotalComments uint64  `json:"total_comments"`
	AverageViews  float64 `json:"average_views"`
}

// FormatSummary compares short-form and long-form videos.
type FormatSummary struct {
	Shorts   FormatGroup `json:"shorts"`
	LongForm FormatGroup `json:"long_form"`
}
