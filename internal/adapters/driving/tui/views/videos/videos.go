// Package videos provides the uploads table view for the TUI.
package videos

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/components/format"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
)

// View lists the channel's recent uploads.
type View struct {
	styles    *styles.Styles
	analytics driving.AnalyticsService
	limit     int

	table   table.Model
	videos  []domain.VideoItem
	loading bool
	err     error
	width   int
	height  int
}

var columns = []table.Column{
	{Title: "Published", Width: 10},
	{Title: "Title", Width: 40},
	{Title: "Length", Width: 8},
	{Title: "Views", Width: 11},
	{Title: "Likes", Width: 9},
	{Title: "Comments", Width: 9},
}

// NewView creates a videos view.
func NewView(s *styles.Styles, analytics driving.AnalyticsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		analytics: analytics,
		limit:     domain.DefaultVideoLimit,
		table:     newTable(s),
		width:     80,
		height:    24,
	}
}

func newTable(s *styles.Styles) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Foreground(s.Theme().Secondary).Bold(true)
	ts.Selected = s.Selected
	t.SetStyles(ts)
	return t
}

// Init loads the uploads.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil
	analytics, limit := v.analytics, v.limit
	return func() tea.Msg {
		videos, err := analytics.Videos(context.Background(), limit)
		return messages.VideosLoaded{Videos: videos, Err: err}
	}
}

// Update handles messages for the videos view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.VideosLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.videos = msg.Videos
			v.table.SetRows(rows(msg.Videos))
			v.table.GotoTop()
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return v, v.Init()
		case "esc":
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		}
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func rows(videos []domain.VideoItem) []table.Row {
	out := make([]table.Row, len(videos))
	for i, vid := range videos {
		published := vid.PublishedAt
		if t := vid.Published(); !t.IsZero() {
			published = t.Format(domain.DateLayout)
		}
		length := format.Duration(vid.DurationSeconds())
		if vid.IsShort() {
			length += " S"
		}
		out[i] = table.Row{
			published,
			format.Truncate(vid.Title, 40),
			length,
			format.Count(vid.ViewCount),
			format.Count(vid.LikeCount),
			format.Count(vid.CommentCount),
		}
	}
	return out
}

// View renders the uploads table.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Videos"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading uploads..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(domain.UserMessage(v.err)))
	case len(v.videos) == 0:
		b.WriteString(v.styles.Muted.Render("No uploads found."))
	default:
		b.WriteString(v.table.View())
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d uploads  (S = short)", len(v.videos))))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	if h := height - 8; h > 3 {
		v.table.SetHeight(h)
	}
}

// Videos returns the loaded uploads.
func (v *View) Videos() []domain.VideoItem {
	return v.videos
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
