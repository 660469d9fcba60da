// Package cli implements the tubedash command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
	"github.com/custodia-labs/tubedash/internal/logger"
)

var version = "dev"

// Global flags.
var (
	verbose    bool
	jsonOutput bool
	account    string
)

// Services wired by main.
var (
	sessionService     driving.SessionService
	analyticsService   driving.AnalyticsService
	reportService      driving.ReportService
	savedReportService driving.SavedReportService
	settingsService    driving.SettingsService
	settings           = domain.DefaultSettings()
)

// Services holds the core services the commands drive.
type Services struct {
	Session      driving.SessionService
	Analytics    driving.AnalyticsService
	Reports      driving.ReportService
	SavedReports driving.SavedReportService
	Config       driving.SettingsService
	Settings     domain.Settings
}

// SetServices installs the services used by all commands.
func SetServices(s Services) {
	sessionService = s.Session
	analyticsService = s.Analytics
	reportService = s.Reports
	savedReportService = s.SavedReports
	settingsService = s.Config
	settings = s.Settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "tubedash",
	Short: "YouTube channel analytics in your terminal",
	Long: `tubedash signs in to YouTube with read-only access and reports on your
channel: uploads, revenue, audience growth, top videos and format comparison.

Access is limited to accounts on the allow-list. Tokens are kept in memory
only, so each run asks for consent on first use.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&account, "email", "", "account email (default from account.email)")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// accountEmail returns the account to sign in as.
func accountEmail() string {
	if a := strings.TrimSpace(account); a != "" {
		return a
	}
	return settings.Account
}

// ensureSignedIn signs in the configured account unless a session exists.
func ensureSignedIn(ctx context.Context) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}
	if sessionService.CurrentUser() != "" {
		return nil
	}
	email := accountEmail()
	if email == "" {
		return fmt.Errorf("%w: pass --email or set account.email", domain.ErrNotSignedIn)
	}
	return sessionService.SignIn(ctx, email)
}

func requireAnalytics(ctx context.Context) error {
	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}
	return ensureSignedIn(ctx)
}
