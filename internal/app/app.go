package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathpilot/pathpilot/internal/api"
	"github.com/pathpilot/pathpilot/internal/progress"
	"github.com/pathpilot/pathpilot/internal/screen"
	"github.com/pathpilot/pathpilot/internal/screens/home"
	"github.com/pathpilot/pathpilot/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. It owns the active screen and
// switches between screens in place; Esc always returns home.
type AppModel struct {
	svc          *progress.Service
	quizzes      api.QuizService
	levels       *progress.LevelSync
	achievements api.AchievementService

	active screen.Screen
	atHome bool
	width  int
	height int
}

func newAppModel(svc *progress.Service, quizzes api.QuizService, levels *progress.LevelSync, achievements api.AchievementService) AppModel {
	m := AppModel{
		svc:          svc,
		quizzes:      quizzes,
		levels:       levels,
		achievements: achievements,
	}
	m.active = home.New(svc, quizzes, levels, achievements)
	m.atHome = true
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.SwitchMsg:
		m.active = msg.Screen
		m.atHome = false
		return m, m.active.Init()

	case screen.BackMsg:
		return m.goHome()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if !m.atHome {
				return m, screen.Back()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

// goHome rebuilds the home screen so its stats reflect the latest record.
func (m AppModel) goHome() (tea.Model, tea.Cmd) {
	m.active = home.New(m.svc, m.quizzes, m.levels, m.achievements)
	m.atHome = true
	return m, m.active.Init()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	rec := m.svc.Load()
	header := layout.RenderHeader(m.active.Title(), rec.TotalXP, rec.StreakDays, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := m.active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.atHome {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.active.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(svc *progress.Service, quizzes api.QuizService, levels *progress.LevelSync, achievements api.AchievementService) error {
	p := tea.NewProgram(newAppModel(svc, quizzes, levels, achievements))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
