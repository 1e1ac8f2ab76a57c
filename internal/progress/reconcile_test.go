package progress

import (
	"context"
	"testing"

	"github.com/pathpilot/pathpilot/internal/api"
)

func TestReconciler_MergesNewAchievements(t *testing.T) {
	mock := &api.Mock{
		Achievements: []api.Achievement{
			{ID: "first_course", Name: "First Steps", Points: 25},
			{ID: "streak_3", Name: "On Fire", Points: 30},
		},
	}
	r := NewReconciler(mock)
	rec := NewRecord()
	rec.TotalXP = 100

	added := r.Check(context.Background(), rec)

	if len(added) != 2 {
		t.Fatalf("added %d achievements, want 2", len(added))
	}
	if rec.TotalXP != 155 {
		t.Errorf("TotalXP = %d, want 155 (100 + 25 + 30)", rec.TotalXP)
	}
	if !rec.HasAchievement("first_course") || !rec.HasAchievement("streak_3") {
		t.Errorf("UnlockedAchievements = %v, want both ids", rec.UnlockedAchievements)
	}
}

func TestReconciler_AtMostOnceCredit(t *testing.T) {
	mock := &api.Mock{
		Achievements: []api.Achievement{{ID: "first_course", Points: 25}},
	}
	r := NewReconciler(mock)
	rec := NewRecord()

	first := r.Check(context.Background(), rec)
	if len(first) != 1 {
		t.Fatalf("first check added %d, want 1", len(first))
	}
	xpAfterFirst := rec.TotalXP

	// The service re-reports the same achievement on every call.
	second := r.Check(context.Background(), rec)
	if len(second) != 0 {
		t.Errorf("second check added %d, want 0", len(second))
	}
	if rec.TotalXP != xpAfterFirst {
		t.Errorf("TotalXP = %d after second check, want %d", rec.TotalXP, xpAfterFirst)
	}
	if len(rec.UnlockedAchievements) != 1 {
		t.Errorf("UnlockedAchievements = %v, want exactly one entry", rec.UnlockedAchievements)
	}
}

func TestReconciler_ReturnsOnlyNewlyAdded(t *testing.T) {
	mock := &api.Mock{
		Achievements: []api.Achievement{
			{ID: "old", Points: 10},
			{ID: "new", Points: 20},
		},
	}
	r := NewReconciler(mock)
	rec := NewRecord()
	rec.UnlockedAchievements = []string{"old"}

	added := r.Check(context.Background(), rec)

	if len(added) != 1 || added[0].ID != "new" {
		t.Fatalf("added = %v, want only \"new\"", added)
	}
	if rec.TotalXP != 20 {
		t.Errorf("TotalXP = %d, want 20 (old not re-credited)", rec.TotalXP)
	}
}

func TestReconciler_ServiceFailure(t *testing.T) {
	r := NewReconciler(&api.Mock{FailAchievements: true})
	rec := NewRecord()
	rec.TotalXP = 50

	added := r.Check(context.Background(), rec)

	if len(added) != 0 {
		t.Errorf("added = %v, want empty on failure", added)
	}
	if rec.TotalXP != 50 || len(rec.UnlockedAchievements) != 0 {
		t.Error("record must be unchanged on service failure")
	}
}

func TestReconciler_SubmitsCountableStats(t *testing.T) {
	mock := &api.Mock{}
	r := NewReconciler(mock)
	rec := NewRecord()
	rec.CoursesCompleted = 3
	rec.StreakDays = 7
	rec.UnlockedAchievements = []string{"a1"}

	r.Check(context.Background(), rec)

	if len(mock.EvaluateCalls) != 1 {
		t.Fatalf("evaluate calls = %d, want 1", len(mock.EvaluateCalls))
	}
	stats := mock.EvaluateCalls[0]
	if stats.CoursesCompleted != 3 || stats.StreakDays != 7 {
		t.Errorf("submitted stats = %+v, want courses 3 streak 7", stats)
	}
	if len(stats.UnlockedAchievements) != 1 || stats.UnlockedAchievements[0] != "a1" {
		t.Errorf("submitted unlocked = %v, want [a1]", stats.UnlockedAchievements)
	}
}
