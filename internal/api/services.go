// Package api implements the client for the PathPilot platform backend:
// level classification, achievement evaluation, and quiz generation and
// scoring. All remote computation lives behind these interfaces; the rest
// of the app only sees their contracts.
package api

import "context"

// LevelingService classifies an XP total into a level.
type LevelingService interface {
	// LevelFor returns the level classification for the given XP total.
	LevelFor(ctx context.Context, xp int) (*LevelInfo, error)
}

// AchievementService evaluates unlock conditions and serves the catalog.
type AchievementService interface {
	// CheckAchievements submits the user's countable stats and returns achievements
	// whose unlock condition newly holds. The service may re-report
	// achievements the caller already holds; deduplication is the
	// caller's responsibility.
	CheckAchievements(ctx context.Context, stats UserStats) ([]Achievement, error)

	// AchievementCatalog returns every defined achievement.
	AchievementCatalog(ctx context.Context) ([]Achievement, error)
}

// QuizService generates and scores quizzes.
type QuizService interface {
	// GenerateQuiz builds a quiz for the given skills and difficulty.
	GenerateQuiz(ctx context.Context, skills []string, difficulty string, numQuestions int) (*Quiz, error)

	// EvaluateQuiz scores the given answers (question id → option index).
	// Unanswered questions are scored as incorrect by the service.
	EvaluateQuiz(ctx context.Context, quizID string, answers map[string]int) (*QuizResult, error)
}
