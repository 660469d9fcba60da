// Package report provides the tabbed analytics report view for the TUI.
package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/components/format"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
)

// Tabs lists the report kinds reachable with tab.
var Tabs = []domain.ReportKind{domain.ReportRevenue, domain.ReportGrowth, domain.ReportTop}

// Periods lists the day counts cycled with the period key.
var Periods = []int{7, 28, 90, 365}

// View runs and renders one analytics report at a time.
type View struct {
	styles    *styles.Styles
	analytics driving.AnalyticsService
	reports   driving.ReportService
	saved     driving.SavedReportService
	now       func() time.Time

	kind    domain.ReportKind
	period  int
	fixed   *domain.DateRange
	params  map[string]string
	table   table.Model
	report  *domain.AnalyticsReport
	revenue *domain.RevenueSummary
	growth  *domain.GrowthSummary
	loading bool
	err     error
	width   int
	height  int
}

// NewView creates a report view. reports and saved may be nil.
func NewView(
	s *styles.Styles,
	analytics driving.AnalyticsService,
	reports driving.ReportService,
	saved driving.SavedReportService,
	days int,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	t := table.New(table.WithFocused(true), table.WithHeight(12))
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Foreground(s.Theme().Secondary).Bold(true)
	ts.Selected = s.Selected
	t.SetStyles(ts)

	return &View{
		styles:    s,
		analytics: analytics,
		reports:   reports,
		saved:     saved,
		now:       time.Now,
		kind:      domain.ReportRevenue,
		period:    periodIndex(days),
		params:    map[string]string{},
		table:     t,
		width:     80,
		height:    24,
	}
}

// periodIndex picks the preset matching days, or 28 days.
func periodIndex(days int) int {
	for i, p := range Periods {
		if p == days {
			return i
		}
	}
	return 1
}

// Range returns the active date range.
func (v *View) Range() domain.DateRange {
	if v.fixed != nil {
		return *v.fixed
	}
	return domain.LastNDays(Periods[v.period], v.now())
}

// Kind returns the active report kind.
func (v *View) Kind() domain.ReportKind {
	return v.kind
}

// Init runs the active report.
func (v *View) Init() tea.Cmd {
	return v.run()
}

// Open switches to a specific report, e.g. one replayed from the saved list.
func (v *View) Open(req messages.ReportRequested) tea.Cmd {
	v.kind = req.Kind
	r := req.Range
	v.fixed = &r
	v.params = copyParams(req.Params)
	return v.run()
}

func copyParams(p map[string]string) map[string]string {
	out := make(map[string]string, len(p))
	for k, val := range p {
		out[k] = val
	}
	return out
}

func (v *View) run() tea.Cmd {
	v.loading = true
	v.err = nil
	kind, r, params := v.kind, v.Range(), copyParams(v.params)
	analytics, reports := v.analytics, v.reports

	return func() tea.Msg {
		ctx := context.Background()
		msg := messages.ReportLoaded{Kind: kind, Range: r}
		switch kind {
		case domain.ReportRevenue:
			if reports != nil {
				msg.Report, msg.Revenue, msg.Err = reports.Revenue(ctx, r)
			} else {
				msg.Report, msg.Err = analytics.RevenueReport(ctx, r)
			}
		case domain.ReportGrowth:
			if reports != nil {
				msg.Report, msg.Growth, msg.Err = reports.Growth(ctx, r)
			} else {
				msg.Report, msg.Err = analytics.GrowthReport(ctx, r)
			}
		case domain.ReportTop:
			limit, _ := strconv.Atoi(params[domain.ParamMax])
			msg.Report, msg.Err = analytics.TopVideos(ctx, r, limit)
		case domain.ReportVideo:
			msg.Report, msg.Err = analytics.VideoAnalytics(ctx, params[domain.ParamVideoID], r)
		default:
			msg.Err = fmt.Errorf("%w: report kind %q has no table", domain.ErrInvalidInput, kind)
		}
		return msg
	}
}

func (v *View) save() tea.Cmd {
	if v.saved == nil {
		return nil
	}
	saved, kind, r, params := v.saved, v.kind, v.Range(), copyParams(v.params)
	return func() tea.Msg {
		report, err := saved.Save(context.Background(), kind, "", r, params)
		return messages.ReportSaved{Report: report, Err: err}
	}
}

// Update handles messages for the report view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ReportLoaded:
		// Drop results for a report the user has already moved away from.
		if msg.Kind != v.kind || msg.Range != v.Range() {
			return v, nil
		}
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.setReport(msg.Report)
			v.revenue = msg.Revenue
			v.growth = msg.Growth
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "l", "right":
			return v, v.switchTab(1)
		case "shift+tab", "h", "left":
			return v, v.switchTab(-1)
		case "p":
			v.fixed = nil
			v.period = (v.period + 1) % len(Periods)
			return v, v.run()
		case "r":
			return v, v.run()
		case "s":
			return v, v.save()
		case "esc":
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		}
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func (v *View) switchTab(step int) tea.Cmd {
	idx := 0
	for i, k := range Tabs {
		if k == v.kind {
			idx = i
		}
	}
	idx = (idx + step + len(Tabs)) % len(Tabs)
	v.kind = Tabs[idx]
	v.fixed = nil
	v.params = map[string]string{}
	return v.run()
}

// setReport replaces the table contents. Rows are cleared first so the
// table never renders old rows against new columns.
func (v *View) setReport(report *domain.AnalyticsReport) {
	v.report = report
	v.table.SetRows(nil)
	if report == nil {
		v.table.SetColumns(nil)
		return
	}

	cols := make([]table.Column, len(report.Columns))
	for i, name := range report.Columns {
		w := len(name) + 2
		if w < 12 {
			w = 12
		}
		cols[i] = table.Column{Title: name, Width: w}
	}
	v.table.SetColumns(cols)

	rows := make([]table.Row, len(report.Rows))
	for i, rec := range report.Rows {
		row := make(table.Row, len(report.Columns))
		for j, col := range report.Columns {
			if f, ok := rec[col].(float64); ok {
				row[j] = format.Number(f)
				continue
			}
			row[j] = rec.String(col)
		}
		rows[i] = row
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

// View renders the tabs, the table and the totals.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Reports"))
	b.WriteString("\n\n")
	b.WriteString(v.renderTabs())
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(v.Range().String()))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Running report..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(domain.UserMessage(v.err)))
	case v.report == nil || len(v.report.Rows) == 0:
		b.WriteString(v.styles.Muted.Render("No data for this period."))
	default:
		b.WriteString(v.table.View())
		if totals := v.renderTotals(); totals != "" {
			b.WriteString("\n\n")
			b.WriteString(totals)
		}
	}
	return b.String()
}

func (v *View) renderTabs() string {
	tabs := make([]string, 0, len(Tabs)+1)
	for _, k := range Tabs {
		style := v.styles.Tab
		if k == v.kind {
			style = v.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(tabLabel(k)))
	}
	if v.kind == domain.ReportVideo {
		tabs = append(tabs, v.styles.ActiveTab.Render("Video "+v.params[domain.ParamVideoID]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func tabLabel(k domain.ReportKind) string {
	switch k {
	case domain.ReportRevenue:
		return "Revenue"
	case domain.ReportGrowth:
		return "Growth"
	case domain.ReportTop:
		return "Top videos"
	default:
		return string(k)
	}
}

func (v *View) renderTotals() string {
	switch {
	case v.kind == domain.ReportRevenue && v.revenue != nil:
		s := v.revenue
		return lipgloss.JoinHorizontal(lipgloss.Top,
			v.styles.Metric("Estimated revenue", format.Money(s.EstimatedRevenue)),
			v.styles.Metric("Ad revenue", format.Money(s.EstimatedAdRevenue)),
			v.styles.Metric("Avg CPM", format.Money(s.AverageCPM)),
			v.styles.Metric("Monetized playbacks", format.Number(s.MonetizedPlaybacks)),
		)
	case v.kind == domain.ReportGrowth && v.growth != nil:
		s := v.growth
		return lipgloss.JoinHorizontal(lipgloss.Top,
			v.styles.Metric("Views", format.Number(s.Views)),
			v.styles.Metric("Watch minutes", format.Number(s.WatchMinutes)),
			v.styles.Metric("Gained", format.Number(s.SubscribersGained)),
			v.styles.Metric("Lost", format.Number(s.SubscribersLost)),
		)
	}
	return ""
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	if h := height - 16; h > 3 {
		v.table.SetHeight(h)
	}
}

// Report returns the loaded report.
func (v *View) Report() *domain.AnalyticsReport {
	return v.report
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
