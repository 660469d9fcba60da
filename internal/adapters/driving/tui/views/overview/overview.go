// Package overview provides the channel overview view for the TUI.
package overview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/components/format"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
)

// View shows channel totals and growth over the default period.
type View struct {
	styles    *styles.Styles
	analytics driving.AnalyticsService
	reports   driving.ReportService
	days      int
	now       func() time.Time

	channel *domain.ChannelStats
	growth  *domain.GrowthSummary
	loading bool
	err     error
	width   int
	height  int
}

// NewView creates an overview view. reports may be nil.
func NewView(
	s *styles.Styles,
	analytics driving.AnalyticsService,
	reports driving.ReportService,
	days int,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if days <= 0 {
		days = domain.DefaultReportDays
	}
	return &View{
		styles:    s,
		analytics: analytics,
		reports:   reports,
		days:      days,
		now:       time.Now,
		width:     80,
		height:    24,
	}
}

// Init loads the channel.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil
	return v.load()
}

func (v *View) load() tea.Cmd {
	analytics, reports := v.analytics, v.reports
	r := domain.LastNDays(v.days, v.now())
	return func() tea.Msg {
		ctx := context.Background()
		ch, err := analytics.Channel(ctx)
		if err != nil {
			return messages.ChannelLoaded{Err: err}
		}
		msg := messages.ChannelLoaded{Channel: ch}
		if reports != nil {
			// Growth is optional; the channel card still renders without it.
			if _, growth, err := reports.Growth(ctx, r); err == nil {
				msg.Growth = growth
			}
		}
		return msg
	}
}

// Update handles messages for the overview view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ChannelLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.channel = msg.Channel
			v.growth = msg.Growth
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
	return v, nil
}

// View renders the overview.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Overview"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading channel..."))
		return b.String()
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(domain.UserMessage(v.err)))
		return b.String()
	case v.channel == nil:
		b.WriteString(v.styles.Muted.Render("No channel loaded"))
		return b.String()
	}

	b.WriteString(v.styles.Subtitle.Render(v.channel.Title))
	b.WriteString(v.styles.Muted.Render("  " + v.channel.ID))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		v.styles.Metric("Subscribers", format.Count(v.channel.SubscriberCount)),
		v.styles.Metric("Views", format.Count(v.channel.ViewCount)),
		v.styles.Metric("Videos", format.Count(v.channel.VideoCount)),
	))

	if g := v.growth; g != nil {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Last %d days", v.days)))
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			v.styles.Metric("Views", format.Number(g.Views)),
			v.styles.Metric("Watch minutes", format.Number(g.WatchMinutes)),
			v.styles.Metric("Avg view", format.Duration(int(g.AverageViewDurationSecs))),
			v.styles.Metric("Net subscribers", signed(g.NetSubscribers)),
		))
	}
	return b.String()
}

func signed(f float64) string {
	if f > 0 {
		return "+" + format.Number(f)
	}
	return format.Number(f)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Channel returns the loaded channel, if any.
func (v *View) Channel() *domain.ChannelStats {
	return v.channel
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
