// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewOverview shows channel totals.
	ViewOverview
	// ViewVideos lists recent uploads.
	ViewVideos
	// ViewReport shows revenue, growth and top video tables.
	ViewReport
	// ViewFormats compares shorts with long-form uploads.
	ViewFormats
	// ViewSaved lists saved reports.
	ViewSaved
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewOverview:
		return "overview"
	case ViewVideos:
		return "videos"
	case ViewReport:
		return "report"
	case ViewFormats:
		return "formats"
	case ViewSaved:
		return "saved"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// ChannelLoaded carries channel totals and recent growth.
type ChannelLoaded struct {
	Channel *domain.ChannelStats
	Growth  *domain.GrowthSummary
	Err     error
}

// VideosLoaded carries the channel's recent uploads.
type VideosLoaded struct {
	Videos []domain.VideoItem
	Err    error
}

// ReportRequested asks the report view to run a query.
type ReportRequested struct {
	Kind   domain.ReportKind
	Range  domain.DateRange
	Params map[string]string
}

// ReportLoaded carries a finished report.
// Revenue and Growth are set only for their kinds.
type ReportLoaded struct {
	Kind    domain.ReportKind
	Range   domain.DateRange
	Report  *domain.AnalyticsReport
	Revenue *domain.RevenueSummary
	Growth  *domain.GrowthSummary
	Err     error
}

// FormatsRequested asks for the format comparison over Limit uploads.
type FormatsRequested struct {
	Limit int
}

// FormatsLoaded carries the shorts vs long-form comparison.
type FormatsLoaded struct {
	Summary *domain.FormatSummary
	Err     error
}

// SavedReportsUpdated carries the latest saved report list.
type SavedReportsUpdated struct {
	Reports []domain.SavedReport
}

// SavedReportsClosed signals the saved report stream ended.
type SavedReportsClosed struct{}

// ReportSaved signals a report definition was stored.
type ReportSaved struct {
	Report *domain.SavedReport
	Err    error
}

// SavedReportDeleted signals a saved report was removed.
type SavedReportDeleted struct {
	ID  string
	Err error
}
