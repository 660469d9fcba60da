package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui"
)

// runProgram runs a bubbletea model full screen. Tests replace it.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"dashboard"},
	Short:   "Launch the interactive dashboard",
	Long: `Launch the interactive analytics dashboard.

Signs in first if needed, then shows the channel overview, recent uploads,
revenue and growth reports, top videos, the shorts vs long-form comparison
and saved reports.

Controls:
  ↑/k, ↓/j      Navigate
  Enter         Select / run
  Tab           Next report
  p             Cycle period
  s             Save report
  Esc           Back
  ?             Help
  q, ctrl+c     Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}
	// Consent opens a browser and blocks, so finish it before the alt screen.
	if err := ensureSignedIn(cmd.Context()); err != nil {
		return err
	}

	ports := &tui.Ports{
		Analytics:    analyticsService,
		Reports:      reportService,
		SavedReports: savedReportService,
		Session:      sessionService,
	}
	app, err := tui.NewApp(ports, settings.ReportDays)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := runProgram(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
