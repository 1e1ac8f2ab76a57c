package progress

import (
	"context"
	"testing"

	"github.com/pathpilot/pathpilot/internal/api"
)

func TestLevelSync_CelebratesOnce(t *testing.T) {
	store := &MemoryStore{}
	rec := NewRecord()
	rec.TotalXP = 150 // level 2 under the mock's formula
	if err := store.Save(rec); err != nil {
		t.Fatal(err)
	}

	sync := NewLevelSync(store, &api.Mock{})
	ctx := context.Background()

	info, celebrate := sync.Refresh(ctx)
	if info.CurrentLevel != 2 {
		t.Fatalf("CurrentLevel = %d, want 2", info.CurrentLevel)
	}
	if !celebrate {
		t.Error("first refresh past a new level must celebrate")
	}
	if got := store.Load().LastNotifiedLevel; got != 2 {
		t.Errorf("LastNotifiedLevel = %d, want 2", got)
	}

	_, again := sync.Refresh(ctx)
	if again {
		t.Error("second refresh at the same level must not celebrate")
	}
}

func TestLevelSync_NoCelebrationAtKnownLevel(t *testing.T) {
	store := &MemoryStore{}

	sync := NewLevelSync(store, &api.Mock{})
	info, celebrate := sync.Refresh(context.Background())

	if info.CurrentLevel != 1 {
		t.Fatalf("CurrentLevel = %d, want 1", info.CurrentLevel)
	}
	if celebrate {
		t.Error("fresh record at level 1 must not celebrate")
	}
}

func TestLevelSync_SurfacesAchievementBonusLevelUp(t *testing.T) {
	mock := &api.Mock{
		Achievements: []api.Achievement{{ID: "quiz_whiz", Points: 60}},
	}
	store := &MemoryStore{}
	svc := NewService(store, mock, mock)
	svc.Now = fixedClock(14)

	// 50 course XP + 60 bonus crosses the level 2 boundary even though
	// the completion itself stayed within level 1.
	result := svc.CompleteCourse(context.Background(), "c1", "A", DifficultyBeginner, nil)
	if result.XPResult.LeveledUp {
		t.Fatal("course XP alone must not report a level-up")
	}

	sync := NewLevelSync(store, mock)
	info, celebrate := sync.Refresh(context.Background())
	if !celebrate {
		t.Error("refresh must surface the bonus-driven level-up")
	}
	if info.CurrentLevel != 2 {
		t.Errorf("CurrentLevel = %d, want 2", info.CurrentLevel)
	}
}

func TestLevelSync_ServiceFailureNoCelebration(t *testing.T) {
	store := &MemoryStore{}
	rec := NewRecord()
	rec.TotalXP = 500
	if err := store.Save(rec); err != nil {
		t.Fatal(err)
	}

	sync := NewLevelSync(store, &api.Mock{FailLeveling: true})
	info, celebrate := sync.Refresh(context.Background())

	if celebrate {
		t.Error("failed lookup must not celebrate")
	}
	if info.CurrentLevel != 1 || info.CurrentTitle != "Novice" {
		t.Errorf("fallback info = %+v, want level 1 Novice", info)
	}
	if got := store.Load().LastNotifiedLevel; got != 1 {
		t.Errorf("LastNotifiedLevel = %d, want untouched 1", got)
	}
}
