package progress

import (
	"context"

	"github.com/pathpilot/pathpilot/internal/api"
)

// Reconciler merges remote achievement evaluations into the record,
// crediting each achievement's bonus points at most once.
type Reconciler struct {
	achievements api.AchievementService
}

// NewReconciler creates a Reconciler backed by the given service.
func NewReconciler(achievements api.AchievementService) *Reconciler {
	return &Reconciler{achievements: achievements}
}

// Check submits the record's countable stats and merges the response.
// Achievements already present on the record are ignored — the service
// may re-report them on every call, and this membership gate is the sole
// double-crediting defense. The returned slice holds only the
// achievements actually added. On service failure the record is left
// unchanged and the result is empty.
func (r *Reconciler) Check(ctx context.Context, rec *Record) []api.Achievement {
	unlocked, err := r.achievements.CheckAchievements(ctx, rec.Stats())
	if err != nil {
		return nil
	}

	var added []api.Achievement
	for _, a := range unlocked {
		if rec.HasAchievement(a.ID) {
			continue
		}
		rec.UnlockedAchievements = append(rec.UnlockedAchievements, a.ID)
		rec.TotalXP += a.Points
		added = append(added, a)
	}
	return added
}
