// Package progress implements the gamified progress engine: the persisted
// progress record, streak arithmetic, the XP ledger, achievement
// reconciliation, and the completion operations that tie them together.
package progress

import "github.com/pathpilot/pathpilot/internal/api"

// StorageKey is the key under which the record is persisted.
const StorageKey = "pathpilot_user_progress"

// DefaultUsername is the display name on a fresh record.
const DefaultUsername = "Pilot"

// Record is the sole persisted entity. It is mutated only through the
// Service's completion operations and saved as a whole.
type Record struct {
	TotalXP              int      `json:"total_xp"`
	CoursesCompleted     int      `json:"courses_completed"`
	QuizzesPassed        int      `json:"quizzes_passed"`
	QuizzesAttempted     int      `json:"quizzes_attempted"`
	PerfectQuizzes       int      `json:"perfect_quizzes"`
	StreakDays           int      `json:"streak_days"`
	LastActivityDate     *Date    `json:"last_activity_date"`
	UniqueSkills         int      `json:"unique_skills"`
	PathsGenerated       int      `json:"paths_generated"`
	EarlyCompletions     int      `json:"early_completions"`
	LateCompletions      int      `json:"late_completions"`
	UnlockedAchievements []string `json:"unlocked_achievements"`
	CompletedCourses     []string `json:"completed_courses"`
	CompletedQuizzes     []string `json:"completed_quizzes"`
	SkillsLearned        []string `json:"skills_learned"`
	Username             string   `json:"username"`
	LastNotifiedLevel    int      `json:"last_notified_level"`
}

// NewRecord returns a zeroed record with default values.
func NewRecord() *Record {
	return &Record{
		UnlockedAchievements: []string{},
		CompletedCourses:     []string{},
		CompletedQuizzes:     []string{},
		SkillsLearned:        []string{},
		Username:             DefaultUsername,
		LastNotifiedLevel:    1,
	}
}

// HasCompletedCourse reports whether courseID is in the completed set.
func (r *Record) HasCompletedCourse(courseID string) bool {
	return contains(r.CompletedCourses, courseID)
}

// HasCompletedQuiz reports whether quizID is in the completed set.
func (r *Record) HasCompletedQuiz(quizID string) bool {
	return contains(r.CompletedQuizzes, quizID)
}

// HasAchievement reports whether the achievement id is already unlocked.
func (r *Record) HasAchievement(id string) bool {
	return contains(r.UnlockedAchievements, id)
}

// LearnSkills merges skills into the learned set and recomputes the
// unique skill count.
func (r *Record) LearnSkills(skills []string) {
	for _, skill := range skills {
		if !contains(r.SkillsLearned, skill) {
			r.SkillsLearned = append(r.SkillsLearned, skill)
		}
	}
	r.UniqueSkills = len(r.SkillsLearned)
}

// Stats builds the countable-field snapshot submitted for achievement
// evaluation.
func (r *Record) Stats() api.UserStats {
	return api.UserStats{
		TotalXP:              r.TotalXP,
		CoursesCompleted:     r.CoursesCompleted,
		QuizzesAttempted:     r.QuizzesAttempted,
		QuizzesPassed:        r.QuizzesPassed,
		PerfectQuizzes:       r.PerfectQuizzes,
		StreakDays:           r.StreakDays,
		UniqueSkills:         r.UniqueSkills,
		PathsGenerated:       r.PathsGenerated,
		EarlyCompletions:     r.EarlyCompletions,
		LateCompletions:      r.LateCompletions,
		UnlockedAchievements: r.UnlockedAchievements,
	}
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	cp := *r
	cp.UnlockedAchievements = append([]string(nil), r.UnlockedAchievements...)
	cp.CompletedCourses = append([]string(nil), r.CompletedCourses...)
	cp.CompletedQuizzes = append([]string(nil), r.CompletedQuizzes...)
	cp.SkillsLearned = append([]string(nil), r.SkillsLearned...)
	if r.LastActivityDate != nil {
		d := *r.LastActivityDate
		cp.LastActivityDate = &d
	}
	return &cp
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// RecordStore persists the progress record as a whole. Load never fails
// the caller: a read error yields a fresh default record. Save attempts a
// whole-record atomic replace.
type RecordStore interface {
	Load() *Record
	Save(*Record) error

	// Reset removes the stored record entirely.
	Reset() error
}
