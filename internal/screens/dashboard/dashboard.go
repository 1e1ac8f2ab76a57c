// Package dashboard shows the learner's standing: level, XP progress,
// streak, and lifetime counters.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/pathpilot/pathpilot/internal/api"
	"github.com/pathpilot/pathpilot/internal/progress"
	"github.com/pathpilot/pathpilot/internal/screen"
	"github.com/pathpilot/pathpilot/internal/ui/components"
	"github.com/pathpilot/pathpilot/internal/ui/layout"
	"github.com/pathpilot/pathpilot/internal/ui/theme"
)

// refreshMsg carries the record and level classification.
type refreshMsg struct {
	Record    *progress.Record
	Info      *api.LevelInfo
	Celebrate bool
}

// DashboardScreen renders the progress overview.
type DashboardScreen struct {
	svc    *progress.Service
	levels *progress.LevelSync

	record    *progress.Record
	level     *api.LevelInfo
	celebrate bool
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates a dashboard screen.
func New(svc *progress.Service, levels *progress.LevelSync) *DashboardScreen {
	return &DashboardScreen{svc: svc, levels: levels}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		info, celebrate := d.levels.Refresh(context.Background())
		return refreshMsg{
			Record:    d.svc.Load(),
			Info:      info,
			Celebrate: celebrate,
		}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(refreshMsg); ok {
		d.record = m.Record
		d.level = m.Info
		d.celebrate = m.Celebrate
	}
	return d, nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) View(width, height int) string {
	if d.record == nil || d.level == nil {
		return layout.Center(theme.Hint.Render("Loading..."), width, height)
	}

	rec := d.record
	lvl := d.level

	var lines []string

	lines = append(lines, theme.Title.Render(fmt.Sprintf(
		"%s · Level %d %s", rec.Username, lvl.CurrentLevel, lvl.CurrentTitle,
	)))

	if d.celebrate {
		lines = append(lines, theme.Unlocked.Render("⬆ You just leveled up!"))
	}
	lines = append(lines, "")

	span := lvl.XPProgress + lvl.XPNeeded
	percent := 1.0
	if span > 0 {
		percent = float64(lvl.XPProgress) / float64(span)
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("%d XP", rec.TotalXP), percent, true, min(width-12, 60),
	)
	lines = append(lines, bar.View())
	if lvl.XPNeeded > 0 {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("%d XP to the next level", lvl.XPNeeded)))
	}
	lines = append(lines, "")

	stats := []struct {
		label string
		value int
	}{
		{"Courses completed", rec.CoursesCompleted},
		{"Quizzes attempted", rec.QuizzesAttempted},
		{"Quizzes passed", rec.QuizzesPassed},
		{"Perfect quizzes", rec.PerfectQuizzes},
		{"Skills learned", rec.UniqueSkills},
		{"Paths generated", rec.PathsGenerated},
		{"Current streak", rec.StreakDays},
		{"Early-bird sessions", rec.EarlyCompletions},
		{"Night-owl sessions", rec.LateCompletions},
		{"Achievements", len(rec.UnlockedAchievements)},
	}
	for _, s := range stats {
		lines = append(lines, fmt.Sprintf(
			"%s %s",
			theme.Body.Render(fmt.Sprintf("%-22s", s.label)),
			theme.Selected.Render(fmt.Sprintf("%5d", s.value)),
		))
	}

	if rec.LastActivityDate != nil {
		lines = append(lines, "", theme.Hint.Render("Last activity: "+rec.LastActivityDate.String()))
	}

	content := strings.Join(lines, "\n")
	return layout.Center(theme.Card.Width(min(width-4, 64)).Render(content), width, height)
}
