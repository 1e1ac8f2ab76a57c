package progress

import (
	"context"

	"github.com/pathpilot/pathpilot/internal/api"
)

// LevelSync decides when a level-up celebration fires. Achievement bonus
// XP bypasses the ledger's own LeveledUp flag, so callers run Refresh
// after every operation that can change total XP; the last-notified
// gate keeps each level's celebration one-time regardless of which
// operation caused it.
type LevelSync struct {
	store    RecordStore
	leveling api.LevelingService
}

// NewLevelSync wires a LevelSync.
func NewLevelSync(store RecordStore, leveling api.LevelingService) *LevelSync {
	return &LevelSync{store: store, leveling: leveling}
}

// Refresh classifies the record's current XP and reports whether a
// celebration should fire. When it does, the last-notified level is
// advanced and persisted so the same level never celebrates twice. A
// leveling service failure degrades to the fallback classification and
// never celebrates.
func (s *LevelSync) Refresh(ctx context.Context) (*api.LevelInfo, bool) {
	rec := s.store.Load()

	info, err := s.leveling.LevelFor(ctx, rec.TotalXP)
	if err != nil {
		return FallbackLevel(), false
	}

	lastNotified := rec.LastNotifiedLevel
	if lastNotified < 1 {
		lastNotified = 1
	}
	if info.CurrentLevel <= lastNotified {
		return info, false
	}

	rec.LastNotifiedLevel = info.CurrentLevel
	// If the save fails the celebration may repeat on the next refresh.
	_ = s.store.Save(rec)
	return info, true
}
