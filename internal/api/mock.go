package api

import (
	"context"
	"sync"
)

// Mock is a deterministic in-process backend for testing. It classifies
// levels with the platform's linear 100-XP-per-level formula, returns
// canned achievements and quizzes, and records every call. Any of the
// Fail* switches makes the corresponding service report unavailability.
type Mock struct {
	mu sync.Mutex

	// Canned data.
	Achievements []Achievement // evaluate results, re-reported on every call
	CatalogItems []Achievement
	Quiz         *Quiz
	Result       *QuizResult

	// Failure switches.
	FailLeveling     bool
	FailAchievements bool
	FailQuiz         bool

	// Recorded calls.
	LevelCalls    []int
	EvaluateCalls []UserStats
	GenerateCalls []QuizRequest
	SubmitCalls   []map[string]int
}

// QuizRequest captures the arguments of one GenerateQuiz call.
type QuizRequest struct {
	Skills       []string
	Difficulty   string
	NumQuestions int
}

var (
	_ LevelingService    = (*Mock)(nil)
	_ AchievementService = (*Mock)(nil)
	_ QuizService        = (*Mock)(nil)
)

// LevelFor classifies xp with the linear formula: level 1 covers 0-99,
// level 2 covers 100-199, and so on.
func (m *Mock) LevelFor(_ context.Context, xp int) (*LevelInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LevelCalls = append(m.LevelCalls, xp)
	if m.FailLeveling {
		return nil, &ErrServiceUnavailable{}
	}

	level := xp/100 + 1
	floor := (level - 1) * 100
	ceil := level * 100
	return &LevelInfo{
		CurrentLevel:      level,
		CurrentTitle:      titleFor(level),
		CurrentXP:         xp,
		XPForCurrentLevel: floor,
		XPForNextLevel:    ceil,
		XPProgress:        xp - floor,
		XPNeeded:          ceil - xp,
	}, nil
}

func titleFor(level int) string {
	titles := []string{"Novice", "Explorer", "Apprentice", "Navigator", "Pilot"}
	if level <= len(titles) {
		return titles[level-1]
	}
	return "Master"
}

// CheckAchievements returns the canned achievement list regardless of stats,
// mirroring a service that re-reports already-unlocked items.
func (m *Mock) CheckAchievements(_ context.Context, stats UserStats) ([]Achievement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.EvaluateCalls = append(m.EvaluateCalls, stats)
	if m.FailAchievements {
		return nil, &ErrServiceUnavailable{}
	}
	return m.Achievements, nil
}

// AchievementCatalog returns the canned catalog.
func (m *Mock) AchievementCatalog(_ context.Context) ([]Achievement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailAchievements {
		return nil, &ErrServiceUnavailable{}
	}
	return m.CatalogItems, nil
}

// GenerateQuiz returns the canned quiz.
func (m *Mock) GenerateQuiz(_ context.Context, skills []string, difficulty string, numQuestions int) (*Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GenerateCalls = append(m.GenerateCalls, QuizRequest{
		Skills:       skills,
		Difficulty:   difficulty,
		NumQuestions: numQuestions,
	})
	if m.FailQuiz || m.Quiz == nil {
		return nil, &ErrServiceUnavailable{}
	}
	return m.Quiz, nil
}

// EvaluateQuiz returns the canned result.
func (m *Mock) EvaluateQuiz(_ context.Context, _ string, answers map[string]int) (*QuizResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SubmitCalls = append(m.SubmitCalls, answers)
	if m.FailQuiz || m.Result == nil {
		return nil, &ErrServiceUnavailable{}
	}
	return m.Result, nil
}
