package progress

import (
	"context"
	"testing"

	"github.com/pathpilot/pathpilot/internal/api"
)

func TestLedger_AddXP(t *testing.T) {
	ledger := NewLedger(&api.Mock{})
	rec := NewRecord()
	rec.TotalXP = 80

	result := ledger.AddXP(context.Background(), rec, 50, SourceCourseComplete)

	if rec.TotalXP != 130 {
		t.Errorf("TotalXP = %d, want 130", rec.TotalXP)
	}
	if result.XPEarned != 50 {
		t.Errorf("XPEarned = %d, want 50", result.XPEarned)
	}
	if result.TotalXP != 130 {
		t.Errorf("result.TotalXP = %d, want 130", result.TotalXP)
	}
	// 80 XP is level 1, 130 XP is level 2.
	if !result.LeveledUp {
		t.Error("expected LeveledUp")
	}
	if result.NewLevel.CurrentLevel != 2 {
		t.Errorf("NewLevel = %d, want 2", result.NewLevel.CurrentLevel)
	}
	if result.Source != SourceCourseComplete {
		t.Errorf("Source = %q, want %q", result.Source, SourceCourseComplete)
	}
}

func TestLedger_NoLevelUpWithinLevel(t *testing.T) {
	ledger := NewLedger(&api.Mock{})
	rec := NewRecord()

	result := ledger.AddXP(context.Background(), rec, 30, SourceQuizComplete)

	if result.LeveledUp {
		t.Error("30 XP within level 1 must not level up")
	}
	if result.NewLevel.CurrentLevel != 1 {
		t.Errorf("NewLevel = %d, want 1", result.NewLevel.CurrentLevel)
	}
}

func TestLedger_Monotonicity(t *testing.T) {
	ledger := NewLedger(&api.Mock{})
	rec := NewRecord()

	prev := 0
	for _, amount := range []int{0, 10, 50, 0, 100, 30} {
		ledger.AddXP(context.Background(), rec, amount, SourceQuizComplete)
		if rec.TotalXP < prev {
			t.Fatalf("TotalXP decreased: %d -> %d", prev, rec.TotalXP)
		}
		prev = rec.TotalXP
	}
}

func TestLedger_ServiceFailureFallsBack(t *testing.T) {
	ledger := NewLedger(&api.Mock{FailLeveling: true})
	rec := NewRecord()
	rec.TotalXP = 950

	result := ledger.AddXP(context.Background(), rec, 100, SourceQuizComplete)

	// XP still accrues; classification degrades to the fallback and the
	// level-up flag stays conservatively false.
	if rec.TotalXP != 1050 {
		t.Errorf("TotalXP = %d, want 1050", rec.TotalXP)
	}
	if result.LeveledUp {
		t.Error("fallback classification must not report a level up")
	}
	if result.NewLevel.CurrentLevel != 1 || result.NewLevel.CurrentTitle != "Novice" {
		t.Errorf("fallback level = %+v, want level 1 Novice", result.NewLevel)
	}
}
