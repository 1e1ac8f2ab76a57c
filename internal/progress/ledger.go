package progress

import (
	"context"

	"github.com/pathpilot/pathpilot/internal/api"
)

// XP sources recorded on ledger results.
const (
	SourceCourseComplete = "course_complete"
	SourceQuizComplete   = "quiz_complete"
)

// XPResult describes a single XP accrual and its effect on the level.
type XPResult struct {
	XPEarned  int            `json:"xp_earned"`
	TotalXP   int            `json:"total_xp"`
	LeveledUp bool           `json:"leveled_up"`
	NewLevel  *api.LevelInfo `json:"new_level"`
	Source    string         `json:"source"`
}

// Ledger applies XP deltas to a record and classifies the before/after
// levels via the leveling service.
type Ledger struct {
	leveling api.LevelingService
}

// NewLedger creates a Ledger backed by the given leveling service.
func NewLedger(leveling api.LevelingService) *Ledger {
	return &Ledger{leveling: leveling}
}

// AddXP applies amount to the record passed by the caller — it never
// re-loads from storage, so it composes as one step inside a larger
// completion operation. When the leveling service is unreachable both
// classifications fall back to level 1 "Novice", which makes LeveledUp
// conservatively false.
func (l *Ledger) AddXP(ctx context.Context, rec *Record, amount int, source string) *XPResult {
	oldXP := rec.TotalXP
	rec.TotalXP += amount

	oldLevel := l.classify(ctx, oldXP)
	newLevel := l.classify(ctx, rec.TotalXP)

	return &XPResult{
		XPEarned:  amount,
		TotalXP:   rec.TotalXP,
		LeveledUp: newLevel.CurrentLevel > oldLevel.CurrentLevel,
		NewLevel:  newLevel,
		Source:    source,
	}
}

func (l *Ledger) classify(ctx context.Context, xp int) *api.LevelInfo {
	info, err := l.leveling.LevelFor(ctx, xp)
	if err != nil {
		return FallbackLevel()
	}
	return info
}

// FallbackLevel is the classification used when the leveling service is
// unreachable.
func FallbackLevel() *api.LevelInfo {
	return &api.LevelInfo{CurrentLevel: 1, CurrentTitle: "Novice"}
}
