package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/pathpilot/pathpilot/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// SwitchMsg asks the application to replace the active screen.
type SwitchMsg struct {
	Screen Screen
}

// BackMsg asks the application to return to the home screen.
type BackMsg struct{}

// Switch returns a command that switches to the given screen.
func Switch(s Screen) tea.Cmd {
	return func() tea.Msg { return SwitchMsg{Screen: s} }
}

// Back returns a command that navigates back to home.
func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}
