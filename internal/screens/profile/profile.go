// Package profile lets the learner edit their callsign.
package profile

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/pathpilot/pathpilot/internal/progress"
	"github.com/pathpilot/pathpilot/internal/screen"
	"github.com/pathpilot/pathpilot/internal/ui/components"
	"github.com/pathpilot/pathpilot/internal/ui/layout"
	"github.com/pathpilot/pathpilot/internal/ui/theme"
)

// ProfileScreen edits the display name on the progress record.
type ProfileScreen struct {
	svc   *progress.Service
	input components.TextInput
	saved bool
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a profile screen pre-filled with the current callsign.
func New(svc *progress.Service) *ProfileScreen {
	input := components.NewTextInput("Your callsign...", 20)
	input.SetValue(svc.Load().Username)
	return &ProfileScreen{svc: svc, input: input}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return p.input.Init()
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name := strings.TrimSpace(p.input.Value())
		if name == "" {
			p.input.Submit(false)
			return p, nil
		}
		_, saved := p.svc.SetUsername(name)
		p.input.Submit(saved)
		p.saved = saved
		return p, nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *ProfileScreen) Title() string {
	return "Callsign"
}

func (p *ProfileScreen) View(width, height int) string {
	lines := []string{
		theme.Title.Render("Choose your callsign"),
		"",
		p.input.View(),
	}
	if p.saved {
		lines = append(lines, "", theme.Correct.Render("Saved."))
	}
	content := strings.Join(lines, "\n")
	return layout.Center(theme.Card.Width(min(width-4, 50)).Render(content), width, height)
}
