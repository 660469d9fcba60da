package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/custodia-labs/tubedash/internal/adapters/driving/drivingtest"
	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driving"
)

// fixture holds the fake services installed for one command run.
type fixture struct {
	session   *drivingtest.Session
	analytics *drivingtest.Analytics
	reports   *drivingtest.Reports
	saved     *drivingtest.SavedReports
	config    driving.SettingsService
	settings  domain.Settings
}

func newFixture() *fixture {
	return &fixture{
		session: &drivingtest.Session{User: "owner@example.com"},
		analytics: &drivingtest.Analytics{
			ChannelStats: &domain.ChannelStats{
				ID: "UC123", Title: "Cooking Daily", SubscriberCount: 1200, ViewCount: 98000, VideoCount: 42,
			},
			Report: &domain.AnalyticsReport{
				Columns: []string{"day", "views"},
				Rows: []domain.AnalyticsRecord{
					{"day": "2024-03-01", "views": 120.0},
					{"day": "2024-03-02", "views": 80.0},
				},
			},
		},
		reports:  &drivingtest.Reports{},
		saved:    drivingtest.NewSavedReports(),
		settings: domain.DefaultSettings(),
	}
}

// resetFlags restores every flag variable to its default.
func resetFlags() {
	verbose = false
	jsonOutput = false
	account = ""
	videosMax = domain.DefaultVideoLimit
	reportDays = 0
	reportStart = ""
	reportEnd = ""
	topMax = domain.DefaultTopVideosLimit
	formatsMax = domain.DefaultVideoLimit
	reportCurrency = ""
	savedTitle = ""
	savedMax = 0
	savedCurrency = ""
}

func (f *fixture) install() {
	s := Services{Settings: f.settings}
	// Nil pointers must stay nil interfaces.
	if f.session != nil {
		s.Session = f.session
	}
	if f.analytics != nil {
		s.Analytics = f.analytics
	}
	if f.reports != nil {
		s.Reports = f.reports
	}
	if f.saved != nil {
		s.SavedReports = f.saved
	}
	s.Config = f.config
	SetServices(s)
}

// run executes the root command with args and returns stdout and stderr.
func (f *fixture) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	f.install()
	t.Cleanup(func() {
		resetFlags()
		SetServices(Services{Settings: domain.DefaultSettings()})
		rootCmd.SetArgs(nil)
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// syncBuffer is a bytes.Buffer safe for a command writing in another goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Contains(s string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Contains(b.buf.String(), s)
}
