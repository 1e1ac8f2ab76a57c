package progress

import (
	"context"
	"time"

	"github.com/pathpilot/pathpilot/internal/api"
)

// Course difficulty levels as published by the platform.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// PassThreshold is the score percentage at or above which a quiz counts
// as passed.
const PassThreshold = 60

// CompletionResult is the outcome of a completion operation.
type CompletionResult struct {
	// AlreadyCompleted is set when the idempotence gate rejected the
	// operation; nothing was mutated.
	AlreadyCompleted bool

	XPResult        *XPResult
	NewAchievements []api.Achievement
	Progress        *Record

	// SaveFailed reports that persisting the record did not succeed.
	// The in-memory record remains authoritative for this run.
	SaveFailed bool
}

// Service owns the atomic completion operations over the persisted
// record. Each operation is a single logical transaction on one in-memory
// record: mutate, persist, reconcile achievements, persist again if the
// reconciliation changed anything. Callers run operations one at a time;
// the Service performs no locking of its own.
type Service struct {
	store      RecordStore
	ledger     *Ledger
	reconciler *Reconciler

	// Now is the clock used for streaks and completion-hour
	// classification. Overridable in tests.
	Now func() time.Time
}

// NewService wires a Service from its collaborators.
func NewService(store RecordStore, leveling api.LevelingService, achievements api.AchievementService) *Service {
	return &Service{
		store:      store,
		ledger:     NewLedger(leveling),
		reconciler: NewReconciler(achievements),
		Now:        time.Now,
	}
}

// Load returns the current record.
func (s *Service) Load() *Record {
	return s.store.Load()
}

// CompleteCourse records a course completion. A course id already in the
// completed set short-circuits with AlreadyCompleted and no mutation.
func (s *Service) CompleteCourse(ctx context.Context, courseID, title, difficulty string, skills []string) *CompletionResult {
	rec := s.store.Load()

	if rec.HasCompletedCourse(courseID) {
		return &CompletionResult{AlreadyCompleted: true, Progress: rec}
	}

	rec.CompletedCourses = append(rec.CompletedCourses, courseID)
	rec.CoursesCompleted++
	rec.LearnSkills(skills)

	now := s.Now()
	switch hour := now.Hour(); {
	case hour < 9:
		rec.EarlyCompletions++
	case hour >= 22:
		rec.LateCompletions++
	}

	UpdateStreak(rec, DateOf(now))

	xpResult := s.ledger.AddXP(ctx, rec, courseXP(difficulty), SourceCourseComplete)

	return s.finish(ctx, rec, xpResult)
}

// CompleteQuiz records a quiz submission. The quiz id joins the completed
// set at most once, but every call counts as an attempt — retakes of a
// recorded quiz id still increment quizzes_attempted and earn XP.
func (s *Service) CompleteQuiz(ctx context.Context, quizID, skill string, scorePercentage float64, isPerfect bool) *CompletionResult {
	rec := s.store.Load()

	if !rec.HasCompletedQuiz(quizID) {
		rec.CompletedQuizzes = append(rec.CompletedQuizzes, quizID)
	}
	rec.QuizzesAttempted++

	if scorePercentage >= PassThreshold {
		rec.QuizzesPassed++
	}
	if isPerfect {
		rec.PerfectQuizzes++
	}

	UpdateStreak(rec, DateOf(s.Now()))

	xp := 10
	if isPerfect {
		xp = 100
	} else if scorePercentage >= PassThreshold {
		xp = 30
	}
	xpResult := s.ledger.AddXP(ctx, rec, xp, SourceQuizComplete)

	return s.finish(ctx, rec, xpResult)
}

// finish persists, reconciles achievements, and persists again when the
// reconciliation changed the record.
func (s *Service) finish(ctx context.Context, rec *Record, xpResult *XPResult) *CompletionResult {
	saveFailed := s.store.Save(rec) != nil

	newAchievements := s.reconciler.Check(ctx, rec)
	if len(newAchievements) > 0 {
		if err := s.store.Save(rec); err != nil {
			saveFailed = true
		}
	}

	return &CompletionResult{
		XPResult:        xpResult,
		NewAchievements: newAchievements,
		Progress:        rec,
		SaveFailed:      saveFailed,
	}
}

// RecordPathGeneration counts a generated learning path.
func (s *Service) RecordPathGeneration() (*Record, bool) {
	rec := s.store.Load()
	rec.PathsGenerated++
	saveFailed := s.store.Save(rec) != nil
	return rec, !saveFailed
}

// SetUsername updates the display name on the record.
func (s *Service) SetUsername(name string) (*Record, bool) {
	rec := s.store.Load()
	rec.Username = name
	saveFailed := s.store.Save(rec) != nil
	return rec, !saveFailed
}

// Reset deletes the stored record entirely.
func (s *Service) Reset() error {
	return s.store.Reset()
}

// courseXP is the course completion reward: 50 base, scaled by
// difficulty.
func courseXP(difficulty string) int {
	switch difficulty {
	case DifficultyAdvanced:
		return 100
	case DifficultyIntermediate:
		return 75
	default:
		return 50
	}
}
