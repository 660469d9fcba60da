// Package formats provides the shorts vs long-form comparison view.
package formats

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/components/format"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
)

// View compares short-form and long-form uploads.
type View struct {
	styles    *styles.Styles
	analytics driving.AnalyticsService
	limit     int

	summary *domain.FormatSummary
	loading bool
	err     error
}

// NewView creates a formats view.
func NewView(s *styles.Styles, analytics driving.AnalyticsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		analytics: analytics,
		limit:     domain.DefaultVideoLimit,
	}
}

// SetLimit sets how many recent uploads are compared.
func (v *View) SetLimit(n int) {
	if n > 0 {
		v.limit = n
	}
}

// Init loads the comparison.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil
	analytics, limit := v.analytics, v.limit
	return func() tea.Msg {
		summary, err := analytics.FormatComparison(context.Background(), limit)
		return messages.FormatsLoaded{Summary: summary, Err: err}
	}
}

// Update handles messages for the formats view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.FormatsLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.summary = msg.Summary
		}
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

// View renders both format groups side by side.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Shorts vs long-form"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Last %d uploads, shorts are under %ds", v.limit, domain.ShortFormMaxSeconds)))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Comparing uploads..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(domain.UserMessage(v.err)))
	case v.summary == nil:
		b.WriteString(v.styles.Muted.Render("No uploads compared yet."))
	default:
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			v.renderGroup("Shorts", v.summary.Shorts),
			v.renderGroup("Long-form", v.summary.LongForm),
		))
	}
	return b.String()
}

func (v *View) renderGroup(name string, g domain.FormatGroup) string {
	lines := []string{
		v.styles.Subtitle.Render(name),
		"",
		v.styles.MetricValue.Render(fmt.Sprint(g.Count)) + v.styles.MetricLabel.Render(" videos"),
		v.styles.MetricValue.Render(format.Count(g.TotalViews)) + v.styles.MetricLabel.Render(" views"),
		v.styles.MetricValue.Render(format.Number(g.AverageViews)) + v.styles.MetricLabel.Render(" avg views"),
		v.styles.MetricValue.Render(format.Count(g.TotalLikes)) + v.styles.MetricLabel.Render(" likes"),
		v.styles.MetricValue.Render(format.Count(g.TotalComments)) + v.styles.MetricLabel.Render(" comments"),
	}
	return v.styles.Card.Render(strings.Join(lines, "\n"))
}

// Summary returns the loaded comparison.
func (v *View) Summary() *domain.FormatSummary {
	return v.summary
}
