package progress

import (
	"context"
	"testing"
	"time"

	"github.com/pathpilot/pathpilot/internal/api"
)

// fixedClock returns a clock pinned to the given local hour on a fixed
// day.
func fixedClock(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, time.March, 10, hour, 30, 0, 0, time.Local)
	}
}

func newTestService(mock *api.Mock) (*Service, *MemoryStore) {
	store := &MemoryStore{}
	svc := NewService(store, mock, mock)
	svc.Now = fixedClock(14)
	return svc, store
}

func TestCompleteCourse_FreshRecord(t *testing.T) {
	svc, store := newTestService(&api.Mock{})

	result := svc.CompleteCourse(context.Background(), "c1", "Intro", DifficultyBeginner, []string{"Python"})

	if result.AlreadyCompleted {
		t.Fatal("fresh course must not be already completed")
	}
	if result.XPResult.XPEarned != 50 {
		t.Errorf("XPEarned = %d, want 50", result.XPResult.XPEarned)
	}
	if result.SaveFailed {
		t.Error("save should succeed")
	}

	rec := store.Load()
	if rec.CoursesCompleted != 1 {
		t.Errorf("CoursesCompleted = %d, want 1", rec.CoursesCompleted)
	}
	if len(rec.SkillsLearned) != 1 || rec.SkillsLearned[0] != "Python" {
		t.Errorf("SkillsLearned = %v, want [Python]", rec.SkillsLearned)
	}
	if rec.UniqueSkills != 1 {
		t.Errorf("UniqueSkills = %d, want 1", rec.UniqueSkills)
	}
	if rec.StreakDays != 1 {
		t.Errorf("StreakDays = %d, want 1", rec.StreakDays)
	}
}

func TestCompleteCourse_Idempotent(t *testing.T) {
	svc, store := newTestService(&api.Mock{})
	ctx := context.Background()

	svc.CompleteCourse(ctx, "c1", "Intro", DifficultyBeginner, []string{"Python"})
	before := store.Load()

	result := svc.CompleteCourse(ctx, "c1", "Intro", DifficultyBeginner, []string{"Python"})

	if !result.AlreadyCompleted {
		t.Fatal("second completion must report AlreadyCompleted")
	}

	after := store.Load()
	if after.TotalXP != before.TotalXP {
		t.Errorf("TotalXP changed: %d -> %d", before.TotalXP, after.TotalXP)
	}
	if after.CoursesCompleted != before.CoursesCompleted {
		t.Errorf("CoursesCompleted changed: %d -> %d", before.CoursesCompleted, after.CoursesCompleted)
	}
	if len(after.SkillsLearned) != len(before.SkillsLearned) {
		t.Errorf("SkillsLearned changed: %v -> %v", before.SkillsLearned, after.SkillsLearned)
	}
}

func TestCompleteCourse_DifficultyMultiplier(t *testing.T) {
	tests := []struct {
		difficulty string
		wantXP     int
	}{
		{DifficultyBeginner, 50},
		{DifficultyIntermediate, 75},
		{DifficultyAdvanced, 100},
		{"Unknown", 50},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			svc, _ := newTestService(&api.Mock{})
			result := svc.CompleteCourse(context.Background(), "c1", "T", tt.difficulty, nil)
			if result.XPResult.XPEarned != tt.wantXP {
				t.Errorf("XPEarned = %d, want %d", result.XPResult.XPEarned, tt.wantXP)
			}
		})
	}
}

func TestCompleteCourse_SkillUnion(t *testing.T) {
	svc, store := newTestService(&api.Mock{})
	ctx := context.Background()

	svc.CompleteCourse(ctx, "c1", "A", DifficultyBeginner, []string{"Python", "SQL"})
	svc.CompleteCourse(ctx, "c2", "B", DifficultyBeginner, []string{"SQL", "Go"})

	rec := store.Load()
	if rec.UniqueSkills != 3 {
		t.Errorf("UniqueSkills = %d, want 3", rec.UniqueSkills)
	}
	if len(rec.SkillsLearned) != 3 {
		t.Errorf("SkillsLearned = %v, want 3 distinct skills", rec.SkillsLearned)
	}
}

func TestCompleteCourse_HourClassification(t *testing.T) {
	tests := []struct {
		name      string
		hour      int
		wantEarly int
		wantLate  int
	}{
		{"early morning", 6, 1, 0},
		{"boundary 9h is neither", 9, 0, 0},
		{"afternoon", 15, 0, 0},
		{"boundary 22h is late", 22, 0, 1},
		{"midnight counts early", 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService(&api.Mock{})
			svc.Now = fixedClock(tt.hour)

			svc.CompleteCourse(context.Background(), "c1", "T", DifficultyBeginner, nil)

			rec := store.Load()
			if rec.EarlyCompletions != tt.wantEarly {
				t.Errorf("EarlyCompletions = %d, want %d", rec.EarlyCompletions, tt.wantEarly)
			}
			if rec.LateCompletions != tt.wantLate {
				t.Errorf("LateCompletions = %d, want %d", rec.LateCompletions, tt.wantLate)
			}
		})
	}
}

func TestCompleteQuiz_Perfect(t *testing.T) {
	svc, store := newTestService(&api.Mock{})

	result := svc.CompleteQuiz(context.Background(), "q1", "Python", 100, true)

	if result.XPResult.XPEarned != 100 {
		t.Errorf("XPEarned = %d, want 100", result.XPResult.XPEarned)
	}

	rec := store.Load()
	if rec.QuizzesAttempted != 1 {
		t.Errorf("QuizzesAttempted = %d, want 1", rec.QuizzesAttempted)
	}
	if rec.QuizzesPassed != 1 {
		t.Errorf("QuizzesPassed = %d, want 1", rec.QuizzesPassed)
	}
	if rec.PerfectQuizzes != 1 {
		t.Errorf("PerfectQuizzes = %d, want 1", rec.PerfectQuizzes)
	}
}

func TestCompleteQuiz_Failed(t *testing.T) {
	svc, store := newTestService(&api.Mock{})

	result := svc.CompleteQuiz(context.Background(), "q2", "Python", 40, false)

	if result.XPResult.XPEarned != 10 {
		t.Errorf("XPEarned = %d, want 10", result.XPResult.XPEarned)
	}

	rec := store.Load()
	if rec.QuizzesPassed != 0 {
		t.Errorf("QuizzesPassed = %d, want 0", rec.QuizzesPassed)
	}
	if rec.QuizzesAttempted != 1 {
		t.Errorf("QuizzesAttempted = %d, want 1", rec.QuizzesAttempted)
	}
}

func TestCompleteQuiz_PassThreshold(t *testing.T) {
	tests := []struct {
		score      float64
		wantPassed int
		wantXP     int
	}{
		{100, 1, 30}, // not perfect despite full score flag unset
		{60, 1, 30},
		{59.9, 0, 10},
		{0, 0, 10},
	}

	for _, tt := range tests {
		svc, store := newTestService(&api.Mock{})
		result := svc.CompleteQuiz(context.Background(), "q1", "Python", tt.score, false)

		rec := store.Load()
		if rec.QuizzesPassed != tt.wantPassed {
			t.Errorf("score %.1f: QuizzesPassed = %d, want %d", tt.score, rec.QuizzesPassed, tt.wantPassed)
		}
		if result.XPResult.XPEarned != tt.wantXP {
			t.Errorf("score %.1f: XPEarned = %d, want %d", tt.score, result.XPResult.XPEarned, tt.wantXP)
		}
	}
}

func TestCompleteQuiz_RetakeCountsAttempt(t *testing.T) {
	svc, store := newTestService(&api.Mock{})
	ctx := context.Background()

	svc.CompleteQuiz(ctx, "q1", "Python", 80, false)
	svc.CompleteQuiz(ctx, "q1", "Python", 100, true)

	rec := store.Load()
	if len(rec.CompletedQuizzes) != 1 {
		t.Errorf("CompletedQuizzes = %v, want a single id", rec.CompletedQuizzes)
	}
	if rec.QuizzesAttempted != 2 {
		t.Errorf("QuizzesAttempted = %d, want 2", rec.QuizzesAttempted)
	}
	if rec.QuizzesPassed != 2 {
		t.Errorf("QuizzesPassed = %d, want 2", rec.QuizzesPassed)
	}
}

func TestCompletion_StreakAcrossDays(t *testing.T) {
	svc, store := newTestService(&api.Mock{})
	ctx := context.Background()

	dayN := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	svc.Now = func() time.Time { return dayN }
	svc.CompleteCourse(ctx, "c1", "A", DifficultyBeginner, nil)
	svc.CompleteQuiz(ctx, "q1", "Python", 80, false)

	if got := store.Load().StreakDays; got != 1 {
		t.Fatalf("after two completions on day N: StreakDays = %d, want 1", got)
	}

	svc.Now = func() time.Time { return dayN.AddDate(0, 0, 1) }
	svc.CompleteCourse(ctx, "c2", "B", DifficultyBeginner, nil)

	if got := store.Load().StreakDays; got != 2 {
		t.Fatalf("after completion on day N+1: StreakDays = %d, want 2", got)
	}
}

func TestCompletion_AchievementBonusPersisted(t *testing.T) {
	mock := &api.Mock{
		Achievements: []api.Achievement{{ID: "first_course", Points: 25}},
	}
	svc, store := newTestService(mock)

	result := svc.CompleteCourse(context.Background(), "c1", "A", DifficultyBeginner, nil)

	if len(result.NewAchievements) != 1 {
		t.Fatalf("NewAchievements = %v, want 1", result.NewAchievements)
	}

	rec := store.Load()
	if rec.TotalXP != 75 {
		t.Errorf("TotalXP = %d, want 75 (50 course + 25 bonus)", rec.TotalXP)
	}
	if !rec.HasAchievement("first_course") {
		t.Error("achievement id must be persisted")
	}
	// Mutate + persist, reconcile + persist.
	if store.Saves != 2 {
		t.Errorf("Saves = %d, want 2", store.Saves)
	}
}

func TestCompletion_SaveFailureReported(t *testing.T) {
	svc, store := newTestService(&api.Mock{})
	store.FailSave = true

	result := svc.CompleteCourse(context.Background(), "c1", "A", DifficultyBeginner, nil)

	if !result.SaveFailed {
		t.Error("SaveFailed must be reported")
	}
	// The in-memory record is still the authoritative outcome.
	if result.Progress.CoursesCompleted != 1 {
		t.Errorf("in-memory CoursesCompleted = %d, want 1", result.Progress.CoursesCompleted)
	}
}

func TestRecordPathGeneration(t *testing.T) {
	svc, store := newTestService(&api.Mock{})

	rec, saved := svc.RecordPathGeneration()
	if !saved {
		t.Error("expected save to succeed")
	}
	if rec.PathsGenerated != 1 {
		t.Errorf("PathsGenerated = %d, want 1", rec.PathsGenerated)
	}
	if store.Load().PathsGenerated != 1 {
		t.Error("PathsGenerated must be persisted")
	}
}

func TestReset(t *testing.T) {
	svc, store := newTestService(&api.Mock{})
	svc.CompleteCourse(context.Background(), "c1", "A", DifficultyBeginner, nil)

	if err := svc.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	rec := store.Load()
	if rec.TotalXP != 0 || rec.CoursesCompleted != 0 {
		t.Errorf("record after reset = %+v, want defaults", rec)
	}
	if rec.Username != DefaultUsername {
		t.Errorf("Username = %q, want %q", rec.Username, DefaultUsername)
	}
}
