// Package achievements shows the full achievement catalog with the
// learner's unlocked entries highlighted.
package achievements

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/pathpilot/pathpilot/internal/api"
	"github.com/pathpilot/pathpilot/internal/progress"
	"github.com/pathpilot/pathpilot/internal/screen"
	"github.com/pathpilot/pathpilot/internal/ui/layout"
	"github.com/pathpilot/pathpilot/internal/ui/theme"
)

// catalogMsg carries the fetched catalog.
type catalogMsg struct {
	Items []api.Achievement
	Err   error
}

// AchievementsScreen lists the catalog with locked/unlocked state.
type AchievementsScreen struct {
	svc     *progress.Service
	remote  api.AchievementService
	items   []api.Achievement
	loaded  bool
	loadErr bool
}

var _ screen.Screen = (*AchievementsScreen)(nil)

// New creates an achievements screen.
func New(svc *progress.Service, remote api.AchievementService) *AchievementsScreen {
	return &AchievementsScreen{svc: svc, remote: remote}
}

func (a *AchievementsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		items, err := a.remote.AchievementCatalog(context.Background())
		return catalogMsg{Items: items, Err: err}
	}
}

func (a *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(catalogMsg); ok {
		a.loaded = true
		a.loadErr = m.Err != nil
		a.items = m.Items
	}
	return a, nil
}

func (a *AchievementsScreen) Title() string {
	return "Achievements"
}

func (a *AchievementsScreen) View(width, height int) string {
	if !a.loaded {
		return layout.Center(theme.Hint.Render("Loading catalog..."), width, height)
	}
	if a.loadErr {
		return layout.Center(theme.Incorrect.Render("Could not load the achievement catalog."), width, height)
	}
	if len(a.items) == 0 {
		return layout.Center(theme.Hint.Render("No achievements published yet."), width, height)
	}

	rec := a.svc.Load()

	unlockedCount := 0
	var lines []string
	for _, item := range a.items {
		unlocked := rec.HasAchievement(item.ID)
		if unlocked {
			unlockedCount++
		}

		name := fmt.Sprintf("%s  %s", item.Icon, item.Name)
		detail := fmt.Sprintf("%s  (+%d XP)", item.Description, item.Points)

		if unlocked {
			lines = append(lines,
				theme.Unlocked.Render("★ "+name),
				"  "+theme.Body.Render(detail),
			)
		} else {
			lines = append(lines,
				theme.Locked.Render("☆ "+name),
				"  "+theme.Locked.Render(detail),
			)
		}
		lines = append(lines, "")
	}

	header := theme.Title.Render(fmt.Sprintf("Achievements  %d / %d", unlockedCount, len(a.items)))
	content := header + "\n\n" + strings.Join(lines, "\n")
	return layout.Center(theme.Card.Width(min(width-4, 70)).Render(content), width, height)
}
