package cli

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tubedash/internal/adapters/driving/drivingtest"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tubedash/internal/core/domain"
)

func stubProgram(t *testing.T, err error) *tea.Model {
	t.Helper()
	var got tea.Model
	original := runProgram
	runProgram = func(m tea.Model) error {
		got = m
		return err
	}
	t.Cleanup(func() { runProgram = original })
	return &got
}

func TestTUICmd_Aliases(t *testing.T) {
	assert.Contains(t, tuiCmd.Aliases, "dashboard")
	assert.Contains(t, tuiCmd.Long, "Controls:")
}

func TestTUICmd_RunsDashboard(t *testing.T) {
	f := newFixture()
	got := stubProgram(t, nil)

	_, _, err := f.run(t, "dashboard")

	require.NoError(t, err)
	app, ok := (*got).(*tui.App)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestTUICmd_SignsInBeforeStarting(t *testing.T) {
	f := newFixture()
	f.session = &drivingtest.Session{SignInErr: domain.ErrNotAllowed}
	got := stubProgram(t, nil)

	_, _, err := f.run(t, "tui", "--email", "intruder@example.com")

	assert.ErrorIs(t, err, domain.ErrNotAllowed)
	assert.Nil(t, *got)
}

func TestTUICmd_NoAnalytics(t *testing.T) {
	f := newFixture()
	f.analytics = nil
	stubProgram(t, nil)

	_, _, err := f.run(t, "tui")

	assert.EqualError(t, err, "analytics service not configured")
}

func TestTUICmd_ProgramError(t *testing.T) {
	f := newFixture()
	stubProgram(t, errors.New("no tty"))

	_, _, err := f.run(t, "tui")

	assert.EqualError(t, err, "TUI error: no tty")
}
