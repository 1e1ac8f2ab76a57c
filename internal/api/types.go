package api

// LevelInfo is the level classification returned by the leveling service
// for a given XP total.
type LevelInfo struct {
	CurrentLevel      int    `json:"current_level"`
	CurrentTitle      string `json:"current_title"`
	CurrentXP         int    `json:"current_xp"`
	XPForCurrentLevel int    `json:"xp_for_current_level"`
	// XPForNextLevel is 0 when the user is at the final level.
	XPForNextLevel int `json:"xp_for_next_level"`
	XPProgress     int `json:"xp_progress"`
	XPNeeded       int `json:"xp_needed"`
}

// Achievement is a named, point-valued unlock returned by the achievement
// service, either from the catalog or as a newly unlocked entry.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Points      int    `json:"points"`
}

// UserStats is the countable-field snapshot submitted for achievement
// evaluation. The service only inspects these fields.
type UserStats struct {
	TotalXP              int      `json:"total_xp"`
	CoursesCompleted     int      `json:"courses_completed"`
	QuizzesAttempted     int      `json:"quizzes_attempted"`
	QuizzesPassed        int      `json:"quizzes_passed"`
	PerfectQuizzes       int      `json:"perfect_quizzes"`
	StreakDays           int      `json:"streak_days"`
	UniqueSkills         int      `json:"unique_skills"`
	PathsGenerated       int      `json:"paths_generated"`
	EarlyCompletions     int      `json:"early_completions"`
	LateCompletions      int      `json:"late_completions"`
	UnlockedAchievements []string `json:"unlocked_achievements"`
}

// Question is a single quiz question as served to the client. The correct
// answer index is withheld by the service until evaluation.
type Question struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty,omitempty"`
}

// Quiz is a generated quiz.
type Quiz struct {
	QuizID         string     `json:"quiz_id"`
	Skill          string     `json:"skill"`
	Difficulty     string     `json:"difficulty"`
	TotalQuestions int        `json:"total_questions"`
	Questions      []Question `json:"questions"`
}

// QuestionResult is the per-question breakdown in an evaluation response.
type QuestionResult struct {
	QuestionID     string `json:"question_id"`
	Question       string `json:"question"`
	UserAnswer     *int   `json:"user_answer"`
	CorrectAnswer  int    `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
	Explanation    string `json:"explanation"`
	SelectedOption string `json:"selected_option"`
	CorrectOption  string `json:"correct_option"`
}

// QuizResult is the scored outcome of a submitted quiz.
type QuizResult struct {
	QuizID          string           `json:"quiz_id"`
	TotalQuestions  int              `json:"total_questions"`
	CorrectAnswers  int              `json:"correct_answers"`
	ScorePercentage float64          `json:"score_percentage"`
	Passed          bool             `json:"passed"`
	XPEarned        int              `json:"xp_earned"`
	Feedback        string           `json:"feedback"`
	Results         []QuestionResult `json:"results"`
}

// Perfect reports whether the quiz was answered with a full score.
func (r *QuizResult) Perfect() bool {
	return r.ScorePercentage == 100
}
