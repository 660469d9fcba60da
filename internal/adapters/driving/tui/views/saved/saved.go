// Package saved provides the saved reports view for the TUI.
package saved

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/components/format"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
)

// View lists saved reports and keeps the list live.
type View struct {
	styles  *styles.Styles
	service driving.SavedReportService

	updates  <-chan []domain.SavedReport
	table    table.Model
	reports  []domain.SavedReport
	watching bool
	err      error
}

var columns = []table.Column{
	{Title: "Title", Width: 32},
	{Title: "Kind", Width: 8},
	{Title: "Range", Width: 22},
	{Title: "Saved", Width: 16},
}

// NewView creates a saved reports view. service may be nil.
func NewView(s *styles.Styles, service driving.SavedReportService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Foreground(s.Theme().Secondary).Bold(true)
	ts.Selected = s.Selected
	t.SetStyles(ts)

	return &View{
		styles:  s,
		service: service,
		table:   t,
	}
}

// Watch subscribes to the saved report list until ctx is done.
// Later calls are no-ops while the subscription is open.
func (v *View) Watch(ctx context.Context) tea.Cmd {
	if v.service == nil || v.watching {
		return nil
	}
	updates, err := v.service.Watch(ctx)
	if err != nil {
		v.err = err
		return nil
	}
	v.err = nil
	v.updates = updates
	v.watching = true
	return waitForUpdate(updates)
}

func waitForUpdate(updates <-chan []domain.SavedReport) tea.Cmd {
	return func() tea.Msg {
		reports, ok := <-updates
		if !ok {
			return messages.SavedReportsClosed{}
		}
		return messages.SavedReportsUpdated{Reports: reports}
	}
}

// Update handles messages for the saved reports view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.SavedReportsUpdated:
		v.setReports(msg.Reports)
		if v.updates == nil {
			return v, nil
		}
		return v, waitForUpdate(v.updates)

	case messages.SavedReportsClosed:
		v.watching = false
		v.updates = nil
		return v, nil

	case messages.SavedReportDeleted:
		v.err = msg.Err
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return v, v.open()
		case "d", "x":
			return v, v.deleteSelected()
		case "esc":
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		}
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func (v *View) setReports(reports []domain.SavedReport) {
	v.reports = reports
	rows := make([]table.Row, len(reports))
	for i, r := range reports {
		rows[i] = table.Row{
			format.Truncate(r.Title, 32),
			string(r.Kind),
			r.Range.String(),
			format.Ago(r.CreatedAt),
		}
	}
	v.table.SetRows(rows)
	if c := v.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		v.table.SetCursor(len(rows) - 1)
	}
}

// Selected returns the highlighted saved report.
func (v *View) Selected() (domain.SavedReport, bool) {
	c := v.table.Cursor()
	if c < 0 || c >= len(v.reports) {
		return domain.SavedReport{}, false
	}
	return v.reports[c], true
}

func (v *View) open() tea.Cmd {
	sr, ok := v.Selected()
	if !ok {
		return nil
	}
	if sr.Kind == domain.ReportFormats {
		limit, _ := strconv.Atoi(sr.Params[domain.ParamMax])
		return func() tea.Msg { return messages.FormatsRequested{Limit: limit} }
	}
	return func() tea.Msg {
		return messages.ReportRequested{Kind: sr.Kind, Range: sr.Range, Params: sr.Params}
	}
}

func (v *View) deleteSelected() tea.Cmd {
	sr, ok := v.Selected()
	if !ok || v.service == nil {
		return nil
	}
	service := v.service
	return func() tea.Msg {
		err := service.Delete(context.Background(), sr.ID)
		return messages.SavedReportDeleted{ID: sr.ID, Err: err}
	}
}

// View renders the saved report table.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Saved reports"))
	b.WriteString("\n\n")

	switch {
	case v.service == nil:
		b.WriteString(v.styles.Muted.Render("Saved reports are not available."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(domain.UserMessage(v.err)))
	case len(v.reports) == 0:
		b.WriteString(v.styles.Muted.Render("No saved reports. Press s in a report to save it."))
	default:
		b.WriteString(v.table.View())
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(_, height int) {
	if h := height - 8; h > 3 {
		v.table.SetHeight(h)
	}
}

// Reports returns the current list.
func (v *View) Reports() []domain.SavedReport {
	return v.reports
}
