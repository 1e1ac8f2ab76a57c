package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pathpilot/pathpilot/internal/ui/theme"
)

// ProgressBar is the horizontal XP gauge shown on the dashboard.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the gauge as a bracketed rune bar.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - lipgloss.Width(b.String()) - percentWidth - 2
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth)*p.Percent + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	frame := lipgloss.NewStyle().Foreground(theme.Border)
	b.WriteString(frame.Render("["))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(strings.Repeat("█", filled)))
	b.WriteString(frame.Render(strings.Repeat("░", barWidth-filled)))
	b.WriteString(frame.Render("]"))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf(" %3d%%", int(p.Percent*100))))
	}

	return b.String()
}
