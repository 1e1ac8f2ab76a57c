package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathpilot/pathpilot/internal/ui/theme"
)

// Choice is an answer selector for a quiz question. The correct answer
// is known only to the scoring service, so the component styles by
// cursor and recorded choice alone.
type Choice struct {
	Prompt  string
	Options []string

	// Cursor is the highlighted option.
	Cursor int

	// Picked is the recorded answer index, or -1 when unanswered.
	Picked int
}

// NewChoice creates an answer selector with no recorded answer.
func NewChoice(prompt string, options []string, picked int) Choice {
	cursor := picked
	if cursor < 0 {
		cursor = 0
	}
	return Choice{
		Prompt:  prompt,
		Options: options,
		Cursor:  cursor,
		Picked:  picked,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement. Recording the picked answer is the
// caller's job on enter, via SetPicked.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	}

	return c, nil
}

// SetPicked records the answer at the cursor.
func (c *Choice) SetPicked() {
	c.Picked = c.Cursor
}

// View renders the prompt and options.
func (c Choice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		label := string(rune('A' + i))
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		marker := " "
		if i == c.Picked {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == c.Picked:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
