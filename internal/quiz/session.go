// Package quiz drives the lifecycle of a single quiz attempt, from
// generation through navigation and answer capture to submission. The
// Session is owned by the active screen and is never shared; all
// transitions run on the UI event loop, one to completion at a time.
package quiz

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pathpilot/pathpilot/internal/api"
	"github.com/pathpilot/pathpilot/internal/progress"
)

// NumQuestions is the fixed quiz length requested from the quiz service.
const NumQuestions = 10

// Status is the lifecycle state of a Session.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusInProgress
	StatusSubmitting
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusInProgress:
		return "in-progress"
	case StatusSubmitting:
		return "submitting"
	case StatusCompleted:
		return "completed"
	}
	return "unknown"
}

// ErrInvalidTransition reports an operation called outside the status
// that permits it.
type ErrInvalidTransition struct {
	Op     string
	Status Status
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("quiz: cannot %s while %s", e.Op, e.Status)
}

// Session is the state machine for one quiz. Generation and scoring go
// through the quiz service; a successful submission feeds the score into
// the progress service. The zero value is not usable; construct with
// NewSession.
type Session struct {
	quizzes  api.QuizService
	progress *progress.Service

	status    Status
	attemptID string
	skill     string
	quiz      *api.Quiz
	current   int
	answers   map[string]int
	result    *api.QuizResult
	completed *progress.CompletionResult
}

// NewSession returns an idle session.
func NewSession(quizzes api.QuizService, progress *progress.Service) *Session {
	return &Session{
		quizzes:  quizzes,
		progress: progress,
		status:   StatusIdle,
	}
}

// Start generates a fresh quiz for the given skills and difficulty and
// moves the session to InProgress at the first question. Valid from Idle
// or Completed. A generation failure leaves the session Idle.
func (s *Session) Start(ctx context.Context, skills []string, difficulty string) error {
	if s.status != StatusIdle && s.status != StatusCompleted {
		return &ErrInvalidTransition{Op: "start", Status: s.status}
	}

	s.status = StatusLoading
	quiz, err := s.quizzes.GenerateQuiz(ctx, skills, difficulty, NumQuestions)
	if err != nil {
		s.status = StatusIdle
		s.quiz = nil
		s.result = nil
		s.completed = nil
		return err
	}

	s.quiz = quiz
	s.skill = quiz.Skill
	s.attemptID = uuid.NewString()
	s.current = 0
	s.answers = make(map[string]int)
	s.result = nil
	s.completed = nil
	s.status = StatusInProgress
	return nil
}

// SelectAnswer records the option choice for the current question,
// overwriting any earlier choice. The position does not move.
func (s *Session) SelectAnswer(optionIndex int) error {
	if s.status != StatusInProgress {
		return &ErrInvalidTransition{Op: "answer", Status: s.status}
	}

	q := s.quiz.Questions[s.current]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return fmt.Errorf("quiz: option %d out of range for question %s", optionIndex, q.ID)
	}

	s.answers[q.ID] = optionIndex
	return nil
}

// Next moves forward one question, stopping at the last.
func (s *Session) Next() error {
	if s.status != StatusInProgress {
		return &ErrInvalidTransition{Op: "navigate", Status: s.status}
	}
	if s.current < len(s.quiz.Questions)-1 {
		s.current++
	}
	return nil
}

// Previous moves back one question, stopping at the first.
func (s *Session) Previous() error {
	if s.status != StatusInProgress {
		return &ErrInvalidTransition{Op: "navigate", Status: s.status}
	}
	if s.current > 0 {
		s.current--
	}
	return nil
}

// Submit sends the captured answers for scoring. Unanswered questions
// are allowed; the service scores them as incorrect. On success the
// session moves to Completed and the score is recorded against the
// progress record. A scoring failure reverts the session to InProgress
// with answers intact.
func (s *Session) Submit(ctx context.Context) error {
	if s.status != StatusInProgress {
		return &ErrInvalidTransition{Op: "submit", Status: s.status}
	}

	s.status = StatusSubmitting
	result, err := s.quizzes.EvaluateQuiz(ctx, s.quiz.QuizID, s.answers)
	if err != nil {
		s.status = StatusInProgress
		return err
	}

	s.result = result
	s.completed = s.progress.CompleteQuiz(ctx, s.quiz.QuizID, s.skill, result.ScorePercentage, result.Perfect())
	s.status = StatusCompleted
	return nil
}

// Retake restarts the completed quiz with the same questions. Answers
// are cleared and the position resets; no regeneration happens, so the
// quiz id is unchanged and the next submission counts as a fresh
// attempt.
func (s *Session) Retake() error {
	if s.status != StatusCompleted {
		return &ErrInvalidTransition{Op: "retake", Status: s.status}
	}

	s.attemptID = uuid.NewString()
	s.current = 0
	s.answers = make(map[string]int)
	s.result = nil
	s.completed = nil
	s.status = StatusInProgress
	return nil
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// AttemptID identifies the current attempt; it changes on every Start
// and Retake.
func (s *Session) AttemptID() string { return s.attemptID }

// Quiz returns the active quiz, or nil before the first Start.
func (s *Session) Quiz() *api.Quiz { return s.quiz }

// CurrentIndex returns the position within the question sequence.
func (s *Session) CurrentIndex() int { return s.current }

// CurrentQuestion returns the question at the current position, or nil
// if no quiz is active.
func (s *Session) CurrentQuestion() *api.Question {
	if s.quiz == nil || s.current >= len(s.quiz.Questions) {
		return nil
	}
	return &s.quiz.Questions[s.current]
}

// AnswerFor returns the recorded option index for a question id.
func (s *Session) AnswerFor(questionID string) (int, bool) {
	idx, ok := s.answers[questionID]
	return idx, ok
}

// Answered returns how many questions have a recorded answer.
func (s *Session) Answered() int { return len(s.answers) }

// Result returns the scoring outcome, set only in Completed.
func (s *Session) Result() *api.QuizResult { return s.result }

// Completion returns the progress outcome of the last submission, set
// only in Completed.
func (s *Session) Completion() *progress.CompletionResult { return s.completed }
