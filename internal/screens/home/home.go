package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathpilot/pathpilot/internal/api"
	"github.com/pathpilot/pathpilot/internal/progress"
	"github.com/pathpilot/pathpilot/internal/screen"
	"github.com/pathpilot/pathpilot/internal/screens/achievements"
	"github.com/pathpilot/pathpilot/internal/screens/dashboard"
	"github.com/pathpilot/pathpilot/internal/screens/profile"
	quizscreen "github.com/pathpilot/pathpilot/internal/screens/quiz"
	"github.com/pathpilot/pathpilot/internal/ui/components"
	"github.com/pathpilot/pathpilot/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu     components.Menu
	username string
	xp       int
	streak   int
	skills   []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *progress.Service, quizzes api.QuizService, levels *progress.LevelSync, achievementSvc api.AchievementService) *HomeScreen {
	rec := svc.Load()

	items := []components.MenuItem{
		{Label: "TAKE QUIZ", Hint: "test a skill", Action: func() tea.Cmd {
			return screen.Switch(quizscreen.New(svc, quizzes, levels, rec.SkillsLearned))
		}},
		{Label: "DASHBOARD", Hint: "XP, streak, stats", Action: func() tea.Cmd {
			return screen.Switch(dashboard.New(svc, levels))
		}},
		{Label: "ACHIEVEMENTS", Hint: "unlocked badges", Action: func() tea.Cmd {
			return screen.Switch(achievements.New(svc, achievementSvc))
		}},
		{Label: "CALLSIGN", Hint: "change your name", Action: func() tea.Cmd {
			return screen.Switch(profile.New(svc))
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		username: rec.Username,
		xp:       rec.TotalXP,
		streak:   rec.StreakDays,
		skills:   rec.SkillsLearned,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("P A T H P I L O T")
	subtitle := theme.Subtitle.Render("chart your course, earn your wings")

	greeting := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("Welcome back, %s", h.username))
	stats := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d XP  ·  %d day streak  ·  %d skills", h.xp, h.streak, len(h.skills)))

	card := theme.Card.Render(strings.Join([]string{
		greeting,
		stats,
	}, "\n"))

	content := strings.Join([]string{
		title,
		subtitle,
		"",
		card,
		"",
		h.menu.View(),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
