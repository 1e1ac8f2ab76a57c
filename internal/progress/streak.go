package progress

// UpdateStreak applies the streak law to the record for an activity on
// the given day:
//
//   - no prior activity → streak starts at 1
//   - same day          → streak unchanged
//   - next day          → streak + 1
//   - gap of 2+ days    → streak resets to 1
//
// The activity date is always set to today, so no matter how many
// completion events land on one calendar day the streak moves at most
// once.
func UpdateStreak(rec *Record, today Date) {
	if rec.LastActivityDate == nil {
		rec.StreakDays = 1
	} else {
		switch diff := rec.LastActivityDate.DaysUntil(today); {
		case diff == 1:
			rec.StreakDays++
		case diff > 1:
			rec.StreakDays = 1
		}
		// diff <= 0: repeat activity today (or a clock rollback) leaves
		// the streak alone.
	}

	rec.LastActivityDate = &today
}
