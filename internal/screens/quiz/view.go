package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pathpilot/pathpilot/internal/progress"
	"github.com/pathpilot/pathpilot/internal/ui/layout"
	"github.com/pathpilot/pathpilot/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	switch q.phase {
	case phaseSkill:
		return layout.Center(q.withError(q.skillPick.View()), width, height)
	case phaseDifficulty:
		return layout.Center(q.withError(q.diffPick.View()), width, height)
	case phaseLoading:
		return layout.Center(theme.Hint.Render("Building your quiz..."), width, height)
	case phaseQuestion:
		return q.viewQuestion(width, height)
	case phaseSubmitting:
		return layout.Center(theme.Hint.Render("Scoring..."), width, height)
	case phaseResults:
		return q.viewResults(width, height)
	}
	return ""
}

func (q *QuizScreen) withError(body string) string {
	if q.errMsg == "" {
		return body
	}
	return theme.Incorrect.Render(q.errMsg) + "\n\n" + body
}

func (q *QuizScreen) viewQuestion(width, height int) string {
	quiz := q.session.Quiz()
	if quiz == nil {
		return layout.Center(theme.Hint.Render("No quiz active."), width, height)
	}

	position := theme.Subtitle.Render(fmt.Sprintf(
		"Question %d of %d  ·  %d answered",
		q.session.CurrentIndex()+1, len(quiz.Questions), q.session.Answered(),
	))

	header := theme.Title.Render(fmt.Sprintf("%s · %s", quiz.Skill, quiz.Difficulty))

	content := strings.Join([]string{
		header,
		position,
		"",
		q.withError(q.answerPick.View()),
	}, "\n")

	return layout.Center(theme.Card.Width(min(width-4, 76)).Render(content), width, height)
}

func (q *QuizScreen) viewResults(width, height int) string {
	result := q.session.Result()
	completion := q.session.Completion()
	if result == nil || completion == nil {
		return layout.Center(theme.Hint.Render("No results yet."), width, height)
	}

	var lines []string

	verdict := theme.Incorrect.Render("Not passed")
	if result.ScorePercentage >= progress.PassThreshold {
		verdict = theme.Correct.Render("Passed")
	}
	if result.Perfect() {
		verdict = theme.Correct.Render("Perfect score!")
	}

	lines = append(lines,
		theme.Title.Render(fmt.Sprintf("Score: %.0f%%", result.ScorePercentage)),
		verdict,
		theme.Hint.Render("attempt "+shortAttempt(q.session.AttemptID())),
		"",
		theme.Body.Render(fmt.Sprintf("+%d XP  (total %d)", completion.XPResult.XPEarned, completion.XPResult.TotalXP)),
	)

	if q.leveledUp && q.level != nil {
		lines = append(lines, theme.Unlocked.Render(fmt.Sprintf(
			"⬆ Level %d · %s", q.level.CurrentLevel, q.level.CurrentTitle,
		)))
	}

	for _, a := range completion.NewAchievements {
		lines = append(lines, theme.Unlocked.Render(fmt.Sprintf("%s  %s unlocked (+%d XP)", a.Icon, a.Name, a.Points)))
	}

	if completion.SaveFailed {
		lines = append(lines, theme.Hint.Render("Heads up: progress could not be saved to disk."))
	}

	if result.Feedback != "" {
		lines = append(lines, "", theme.Body.Render(result.Feedback))
	}

	lines = append(lines, "")
	for i, r := range result.Results {
		mark := theme.Incorrect.Render("✗")
		if r.IsCorrect {
			mark = theme.Correct.Render("✓")
		}
		line := fmt.Sprintf("%s %d. %s", mark, i+1, truncate(r.Question, 56))
		lines = append(lines, line)
		if !r.IsCorrect {
			detail := fmt.Sprintf("     answer: %s", r.CorrectOption)
			lines = append(lines, theme.Hint.Render(truncate(detail, 64)))
		}
		if r.Explanation != "" {
			lines = append(lines, theme.Hint.Render(truncate("     "+r.Explanation, 72)))
		}
	}

	content := strings.Join(lines, "\n")
	return layout.Center(theme.Card.Width(min(width-4, 76)).Render(content), width, height)
}

// shortAttempt abbreviates a uuid attempt id for display.
func shortAttempt(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
