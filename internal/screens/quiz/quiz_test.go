package quiz

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/pathpilot/pathpilot/internal/api"
	"github.com/pathpilot/pathpilot/internal/progress"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuiz() *api.Quiz {
	return &api.Quiz{
		QuizID:         "quiz-1",
		Skill:          "Python",
		Difficulty:     progress.DifficultyIntermediate,
		TotalQuestions: 2,
		Questions: []api.Question{
			{ID: "q1", Question: "First?", Options: []string{"a", "b", "c", "d"}},
			{ID: "q2", Question: "Second?", Options: []string{"a", "b", "c", "d"}},
		},
	}
}

func testQuizScreen(mock *api.Mock) *QuizScreen {
	store := &progress.MemoryStore{}
	svc := progress.NewService(store, mock, mock)
	levels := progress.NewLevelSync(store, mock)
	return New(svc, mock, levels, nil)
}

func TestDifficultyPickerUsesCourseVocabulary(t *testing.T) {
	q := testQuizScreen(&api.Mock{})

	want := []string{
		progress.DifficultyBeginner,
		progress.DifficultyIntermediate,
		progress.DifficultyAdvanced,
	}
	got := q.diffPick.Options
	if len(got) != len(want) {
		t.Fatalf("difficulty options = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("option %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStartSendsPickedDifficultyVerbatim(t *testing.T) {
	mock := &api.Mock{Quiz: testQuiz()}
	q := testQuizScreen(mock)

	// Confirm the first skill, then the second difficulty.
	q.Update(specialKey(tea.KeyEnter))
	if q.phase != phaseDifficulty {
		t.Fatalf("phase = %d, want difficulty picker", q.phase)
	}
	q.Update(keyPress('j'))
	_, cmd := q.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("confirming a difficulty must start generation")
	}
	cmd()

	if len(mock.GenerateCalls) != 1 {
		t.Fatalf("GenerateCalls = %d, want 1", len(mock.GenerateCalls))
	}
	req := mock.GenerateCalls[0]
	if req.Difficulty != progress.DifficultyIntermediate {
		t.Errorf("difficulty sent = %q, want %q", req.Difficulty, progress.DifficultyIntermediate)
	}
	if req.NumQuestions == 0 || len(req.Skills) != 1 {
		t.Errorf("request = %+v, want one skill and a question count", req)
	}
}

func TestResultsShowAttemptAndExplanations(t *testing.T) {
	mock := &api.Mock{
		Quiz: testQuiz(),
		Result: &api.QuizResult{
			QuizID:          "quiz-1",
			TotalQuestions:  2,
			CorrectAnswers:  1,
			ScorePercentage: 50,
			XPEarned:        10,
			Results: []api.QuestionResult{
				{QuestionID: "q1", Question: "First?", IsCorrect: true, Explanation: "Lists are mutable."},
				{QuestionID: "q2", Question: "Second?", IsCorrect: false, CorrectOption: "b", Explanation: "Tuples are immutable."},
			},
		},
	}
	q := testQuizScreen(mock)

	ctx := context.Background()
	if err := q.session.Start(ctx, []string{"Python"}, progress.DifficultyBeginner); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := q.session.SelectAnswer(0); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := q.session.Submit(ctx); err != nil {
		t.Fatalf("submit: %v", err)
	}
	q.phase = phaseResults

	out := q.View(100, 40)
	if !strings.Contains(out, shortAttempt(q.session.AttemptID())) {
		t.Error("results must show the attempt id")
	}
	for _, want := range []string{"Lists are mutable.", "Tuples are immutable.", "answer: b"} {
		if !strings.Contains(out, want) {
			t.Errorf("results missing %q", want)
		}
	}
}

func TestRetakeChangesDisplayedAttempt(t *testing.T) {
	mock := &api.Mock{
		Quiz:   testQuiz(),
		Result: &api.QuizResult{QuizID: "quiz-1", TotalQuestions: 2, ScorePercentage: 50, XPEarned: 10},
	}
	q := testQuizScreen(mock)

	ctx := context.Background()
	if err := q.session.Start(ctx, []string{"Python"}, progress.DifficultyBeginner); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := q.session.Submit(ctx); err != nil {
		t.Fatalf("submit: %v", err)
	}
	first := q.session.AttemptID()
	q.phase = phaseResults

	q.Update(keyPress('r'))
	if q.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question after retake", q.phase)
	}
	if q.session.AttemptID() == first {
		t.Error("retake must issue a fresh attempt id")
	}
}
