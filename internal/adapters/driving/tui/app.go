package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/views/formats"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/views/overview"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/views/report"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/views/saved"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/views/videos"
	"github.com/custodia-labs/tubedash/internal/core/domain"
)

// App is the dashboard application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap
	status *status.Bar

	menuView     *menu.View
	overviewView *overview.View
	videosView   *videos.View
	reportView   *report.View
	formatsView  *formats.View
	savedView    *saved.View

	currentView messages.ViewType

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the dashboard. reportDays is the default period.
func NewApp(ports *Ports, reportDays int) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	a := &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		status:       status.NewBar(s, km),
		menuView:     menu.NewView(s),
		overviewView: overview.NewView(s, ports.Analytics, ports.Reports, reportDays),
		videosView:   videos.NewView(s, ports.Analytics),
		reportView:   report.NewView(s, ports.Analytics, ports.Reports, ports.SavedReports, reportDays),
		formatsView:  formats.NewView(s, ports.Analytics),
		savedView:    saved.NewView(s, ports.SavedReports),
		currentView:  messages.ViewMenu,
	}

	if ports.Session != nil {
		user := ports.Session.CurrentUser()
		a.menuView.SetUser(user)
		a.status.SetUser(user)
	}
	return a, nil
}

// WithContext sets the context that bounds background subscriptions.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("tubedash")
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message router
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if msg.String() == "?" && a.currentView != messages.ViewMenu {
			return a.switchTo(messages.ViewHelp)
		}
		return a.forwardKey(msg)

	case messages.ViewChanged:
		return a.switchTo(msg.View)

	case messages.ReportRequested:
		a.currentView = messages.ViewReport
		a.status.SetHints(a.keymap.ReportHelp())
		a.status.SetState(status.StateLoading)
		return a, a.reportView.Open(msg)

	case messages.FormatsRequested:
		a.currentView = messages.ViewFormats
		a.status.SetHints(a.keymap.ShortHelp())
		a.status.SetState(status.StateLoading)
		a.formatsView.SetLimit(msg.Limit)
		return a, a.formatsView.Init()

	case messages.ChannelLoaded:
		a.settle(msg.Err)
		a.overviewView, cmd = a.overviewView.Update(msg)
		return a, cmd

	case messages.VideosLoaded:
		a.settle(msg.Err)
		a.videosView, cmd = a.videosView.Update(msg)
		return a, cmd

	case messages.ReportLoaded:
		if msg.Kind == a.reportView.Kind() && msg.Range == a.reportView.Range() {
			a.settle(msg.Err)
		}
		a.reportView, cmd = a.reportView.Update(msg)
		return a, cmd

	case messages.FormatsLoaded:
		a.settle(msg.Err)
		a.formatsView, cmd = a.formatsView.Update(msg)
		return a, cmd

	case messages.SavedReportsUpdated, messages.SavedReportsClosed:
		// The subscription outlives the saved view, so always route here.
		a.savedView, cmd = a.savedView.Update(msg)
		return a, cmd

	case messages.SavedReportDeleted:
		if msg.Err != nil {
			a.status.SetError(domain.UserMessage(msg.Err))
		} else {
			a.status.SetInfo("Deleted")
		}
		a.savedView, cmd = a.savedView.Update(msg)
		return a, cmd

	case messages.ReportSaved:
		if msg.Err != nil {
			a.status.SetError(domain.UserMessage(msg.Err))
			return a, nil
		}
		a.status.SetInfo(fmt.Sprintf("Saved %q", msg.Report.Title))
		return a, a.savedView.Watch(a.ctx)

	case messages.ErrorOccurred:
		a.status.SetError(domain.UserMessage(msg.Err))
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// settle moves the status bar out of the loading state.
func (a *App) settle(err error) {
	if err != nil {
		a.status.SetError(domain.UserMessage(err))
		return
	}
	a.status.Clear()
}

func (a *App) switchTo(view messages.ViewType) (tea.Model, tea.Cmd) {
	a.currentView = view
	a.status.Clear()
	a.status.SetHints(a.keymap.ShortHelp())

	switch view {
	case messages.ViewOverview:
		a.status.SetState(status.StateLoading)
		return a, a.overviewView.Init()
	case messages.ViewVideos:
		a.status.SetState(status.StateLoading)
		return a, a.videosView.Init()
	case messages.ViewReport:
		a.status.SetHints(a.keymap.ReportHelp())
		a.status.SetState(status.StateLoading)
		return a, a.reportView.Init()
	case messages.ViewFormats:
		a.status.SetState(status.StateLoading)
		return a, a.formatsView.Init()
	case messages.ViewSaved:
		a.status.SetHints(a.keymap.SavedHelp())
		return a, a.savedView.Watch(a.ctx)
	case messages.ViewMenu, messages.ViewHelp:
	}
	return a, nil
}

func (a *App) forwardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewOverview:
		a.overviewView, cmd = a.overviewView.Update(msg)
	case messages.ViewVideos:
		a.videosView, cmd = a.videosView.Update(msg)
	case messages.ViewReport:
		a.reportView, cmd = a.reportView.Update(msg)
	case messages.ViewFormats:
		a.formatsView, cmd = a.formatsView.Update(msg)
	case messages.ViewSaved:
		a.savedView, cmd = a.savedView.Update(msg)
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc {
			return a.switchTo(messages.ViewMenu)
		}
		if msg.String() == "q" {
			return a, tea.Quit
		}
	}

	// Keys that start a load flip the status bar into loading.
	if cmd != nil && msg.String() == "r" {
		a.status.SetState(status.StateLoading)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewOverview:
		body = a.overviewView.View()
	case messages.ViewVideos:
		body = a.videosView.View()
	case messages.ViewReport:
		body = a.reportView.View()
	case messages.ViewFormats:
		body = a.formatsView.View()
	case messages.ViewSaved:
		body = a.savedView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		return a.menuView.View()
	}
	return body + "\n\n" + a.status.View()
}

func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Navigation:
  esc            Back to menu
  ?              This help
  ctrl+c         Quit

Lists and tables:
  j/k, ↑/↓       Move
  enter          Open
  r              Refresh

Reports:
  tab/shift+tab  Switch report
  p              Cycle period (7, 28, 90, 365 days)
  s              Save report

Saved reports:
  enter          Run report
  d              Delete

[esc] back to menu`
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.status
}

// Ready returns whether the app has been sized.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.overviewView.SetDimensions(width, height)
	a.videosView.SetDimensions(width, height)
	a.reportView.SetDimensions(width, height)
	a.savedView.SetDimensions(width, height)
	a.status.SetWidth(width)
}
