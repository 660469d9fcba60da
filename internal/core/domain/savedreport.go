package domain

import "time"

// ReportKind identifies which catalog query a saved report replays.
type ReportKind string

// Available report kinds.
const (
	ReportRevenue ReportKind = "revenue"
	ReportGrowth  ReportKind = "growth"
	ReportTop     ReportKind = "top"
	ReportVideo   ReportKind = "video"
	ReportFormats ReportKind = "formats"
)

// IsValid returns true if the report kind is recognised.
func (k ReportKind) IsValid() bool {
	switch k {
	case ReportRevenue, ReportGrowth, ReportTop, ReportVideo, ReportFormats:
		return true
	default:
		return false
	}
}

// ReportKinds returns all report kinds.
func ReportKinds() []ReportKind {
	return []ReportKind{ReportRevenue, ReportGrowth, ReportTop, ReportVideo, ReportFormats}
}

// SavedReport is a report definition saved by a user.
type SavedReport struct {
	ID        string            `json:"id"`
	Owner     string            `json:"owner"`
	Kind      ReportKind        `json:"kind"`
	Title     string            `json:"title"`
	Range     DateRange         `json:"range"`
	Params    map[string]string `json:"params,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Saved report parameter names.
const (
	ParamVideoID  = "video_id"
	ParamMax      = "max"
	ParamCurrency = "currency"
)
