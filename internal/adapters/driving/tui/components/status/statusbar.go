// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
	StateInfo    State = "info"
)

// Bar displays the signed-in account, load state and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	user    string
	hints   []key.Binding
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		hints:  km.ShortHelp(),
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	var parts []string
	if s.user != "" {
		parts = append(parts, s.styles.Subtitle.Render(s.user))
	}

	switch s.state {
	case StateLoading:
		parts = append(parts, s.styles.Muted.Render("Loading..."))
	case StateError:
		msg := "Error"
		if s.message != "" {
			msg = s.message
		}
		parts = append(parts, s.styles.Error.Render(msg))
	case StateInfo:
		parts = append(parts, s.styles.Success.Render(s.message))
	case StateReady:
		parts = append(parts, s.styles.Muted.Render("Ready"))
	}
	return strings.Join(parts, "  ")
}

func (s *Bar) renderRight() string {
	hints := make([]string, 0, len(s.hints))
	for _, b := range s.hints {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetError shows err's message in the error state.
func (s *Bar) SetError(message string) {
	s.state = StateError
	s.message = message
}

// SetInfo shows a transient confirmation.
func (s *Bar) SetInfo(message string) {
	s.state = StateInfo
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetUser sets the signed-in email shown on the left.
func (s *Bar) SetUser(email string) {
	s.user = email
}

// SetHints replaces the keybinding hints.
func (s *Bar) SetHints(bindings []key.Binding) {
	s.hints = bindings
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to the ready state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
