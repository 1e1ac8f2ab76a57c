// Package quiz is the interactive quiz screen. It owns a single quiz
// session and walks it from skill selection through scoring.
package quiz

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/pathpilot/pathpilot/internal/api"
	"github.com/pathpilot/pathpilot/internal/progress"
	quizsession "github.com/pathpilot/pathpilot/internal/quiz"
	"github.com/pathpilot/pathpilot/internal/screen"
	"github.com/pathpilot/pathpilot/internal/ui/components"
	"github.com/pathpilot/pathpilot/internal/ui/layout"
)

// phase is the screen-local stage, wrapping the session's own lifecycle
// with the setup steps that precede generation.
type phase int

const (
	phaseSkill phase = iota
	phaseDifficulty
	phaseLoading
	phaseQuestion
	phaseSubmitting
	phaseResults
)

// difficulties must use the same vocabulary as course difficulty; the
// quiz service filters its question bank by exact match.
var difficulties = []string{
	progress.DifficultyBeginner,
	progress.DifficultyIntermediate,
	progress.DifficultyAdvanced,
}

// defaultSkills seeds the skill picker for learners with no recorded
// skills yet.
var defaultSkills = []string{"Python", "JavaScript", "SQL", "Data Science", "Web Development"}

// QuizScreen drives a quiz session.
type QuizScreen struct {
	session *quizsession.Session
	levels  *progress.LevelSync

	phase      phase
	skillPick  components.Choice
	diffPick   components.Choice
	answerPick components.Choice

	skill      string
	difficulty string

	level     *api.LevelInfo
	leveledUp bool
	errMsg    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen offering the learner's known skills, padded
// with a default set when fewer than the picker minimum exist.
func New(svc *progress.Service, quizzes api.QuizService, levels *progress.LevelSync, knownSkills []string) *QuizScreen {
	skills := make([]string, 0, len(knownSkills)+len(defaultSkills))
	seen := make(map[string]bool)
	for _, s := range knownSkills {
		if !seen[s] {
			seen[s] = true
			skills = append(skills, s)
		}
	}
	for _, s := range defaultSkills {
		if !seen[s] {
			seen[s] = true
			skills = append(skills, s)
		}
	}

	return &QuizScreen{
		session:   quizsession.NewSession(quizzes, svc),
		levels:    levels,
		phase:     phaseSkill,
		skillPick: components.NewChoice("Which skill do you want to test?", skills, -1),
		diffPick:  components.NewChoice("Pick a difficulty.", difficulties, -1),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseSkill, phaseDifficulty:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "←→", Description: "Question"},
			{Key: "S", Description: "Submit"},
		}
	case phaseResults:
		return []layout.KeyHint{
			{Key: "R", Description: "Retake"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return nil
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return q.handleStarted(msg)
	case scoredMsg:
		return q.handleScored(msg)
	case levelMsg:
		q.level = msg.Info
		q.leveledUp = msg.Celebrate
		return q, nil
	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch q.phase {
	case phaseSkill:
		if msg.String() == "enter" {
			q.skill = q.skillPick.Options[q.skillPick.Cursor]
			q.phase = phaseDifficulty
			return q, nil
		}
		q.skillPick, _ = q.skillPick.Update(msg)
		return q, nil

	case phaseDifficulty:
		if msg.String() == "enter" {
			q.difficulty = q.diffPick.Options[q.diffPick.Cursor]
			q.phase = phaseLoading
			q.errMsg = ""
			return q, q.startQuiz()
		}
		q.diffPick, _ = q.diffPick.Update(msg)
		return q, nil

	case phaseQuestion:
		return q.handleQuestionKey(msg)

	case phaseResults:
		switch msg.String() {
		case "r":
			if err := q.session.Retake(); err == nil {
				q.level = nil
				q.leveledUp = false
				q.errMsg = ""
				q.syncAnswerPick()
				q.phase = phaseQuestion
			}
			return q, nil
		}
	}
	return q, nil
}

func (q *QuizScreen) handleQuestionKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := q.session.SelectAnswer(q.answerPick.Cursor); err == nil {
			q.answerPick.SetPicked()
		}
		return q, nil
	case "right", "l", "n":
		if err := q.session.Next(); err == nil {
			q.syncAnswerPick()
		}
		return q, nil
	case "left", "h", "p":
		if err := q.session.Previous(); err == nil {
			q.syncAnswerPick()
		}
		return q, nil
	case "s":
		q.phase = phaseSubmitting
		q.errMsg = ""
		return q, q.submitQuiz()
	}

	q.answerPick, _ = q.answerPick.Update(msg)
	return q, nil
}

func (q *QuizScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		q.errMsg = "Could not reach the quiz service. Try again in a moment."
		q.phase = phaseDifficulty
		return q, nil
	}
	q.syncAnswerPick()
	q.phase = phaseQuestion
	return q, nil
}

func (q *QuizScreen) handleScored(msg scoredMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		q.errMsg = "Scoring failed. Your answers are safe; try submitting again."
		q.phase = phaseQuestion
		return q, nil
	}
	q.phase = phaseResults
	return q, q.refreshLevel()
}

// syncAnswerPick rebuilds the answer selector for the current question,
// restoring any recorded answer.
func (q *QuizScreen) syncAnswerPick() {
	question := q.session.CurrentQuestion()
	if question == nil {
		return
	}
	picked := -1
	if idx, ok := q.session.AnswerFor(question.ID); ok {
		picked = idx
	}
	q.answerPick = components.NewChoice(question.Question, question.Options, picked)
}

func (q *QuizScreen) startQuiz() tea.Cmd {
	return func() tea.Msg {
		err := q.session.Start(context.Background(), []string{q.skill}, q.difficulty)
		return startedMsg{Err: err}
	}
}

func (q *QuizScreen) submitQuiz() tea.Cmd {
	return func() tea.Msg {
		err := q.session.Submit(context.Background())
		return scoredMsg{Err: err}
	}
}

func (q *QuizScreen) refreshLevel() tea.Cmd {
	return func() tea.Msg {
		info, celebrate := q.levels.Refresh(context.Background())
		return levelMsg{Info: info, Celebrate: celebrate}
	}
}
