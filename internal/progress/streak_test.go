package progress

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) Date {
	return Date{Year: y, Month: m, Day: d}
}

func TestUpdateStreak_FirstActivity(t *testing.T) {
	rec := NewRecord()
	today := date(2026, time.March, 10)

	UpdateStreak(rec, today)

	if rec.StreakDays != 1 {
		t.Errorf("StreakDays = %d, want 1", rec.StreakDays)
	}
	if rec.LastActivityDate == nil || *rec.LastActivityDate != today {
		t.Errorf("LastActivityDate = %v, want %v", rec.LastActivityDate, today)
	}
}

func TestUpdateStreak_Law(t *testing.T) {
	base := date(2026, time.March, 10)

	tests := []struct {
		name       string
		today      Date
		prevStreak int
		want       int
	}{
		{"same day unchanged", base, 4, 4},
		{"next day increments", base.AddDays(1), 4, 5},
		{"two day gap resets", base.AddDays(2), 4, 1},
		{"week gap resets", base.AddDays(7), 4, 1},
		{"clock rollback unchanged", base.AddDays(-1), 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord()
			rec.StreakDays = tt.prevStreak
			last := base
			rec.LastActivityDate = &last

			UpdateStreak(rec, tt.today)

			if rec.StreakDays != tt.want {
				t.Errorf("StreakDays = %d, want %d", rec.StreakDays, tt.want)
			}
			if rec.LastActivityDate == nil || *rec.LastActivityDate != tt.today {
				t.Errorf("LastActivityDate = %v, want %v", rec.LastActivityDate, tt.today)
			}
		})
	}
}

// Two completions on day N and one on day N+1 must produce the streak
// sequence 1, 1, 2.
func TestUpdateStreak_AtMostOncePerDay(t *testing.T) {
	rec := NewRecord()
	dayN := date(2026, time.March, 10)

	UpdateStreak(rec, dayN)
	if rec.StreakDays != 1 {
		t.Fatalf("after first completion: StreakDays = %d, want 1", rec.StreakDays)
	}

	UpdateStreak(rec, dayN)
	if rec.StreakDays != 1 {
		t.Fatalf("after second completion same day: StreakDays = %d, want 1", rec.StreakDays)
	}

	UpdateStreak(rec, dayN.AddDays(1))
	if rec.StreakDays != 2 {
		t.Fatalf("after completion next day: StreakDays = %d, want 2", rec.StreakDays)
	}
}

func TestDate_DaysUntil(t *testing.T) {
	tests := []struct {
		name string
		from Date
		to   Date
		want int
	}{
		{"same day", date(2026, time.March, 10), date(2026, time.March, 10), 0},
		{"next day", date(2026, time.March, 10), date(2026, time.March, 11), 1},
		{"month boundary", date(2026, time.March, 31), date(2026, time.April, 1), 1},
		{"year boundary", date(2025, time.December, 31), date(2026, time.January, 1), 1},
		{"leap day", date(2024, time.February, 28), date(2024, time.March, 1), 2},
		{"backwards", date(2026, time.March, 10), date(2026, time.March, 8), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.DaysUntil(tt.to); got != tt.want {
				t.Errorf("DaysUntil = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := date(2026, time.March, 5)

	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-03-05"` {
		t.Errorf("marshaled = %s, want \"2026-03-05\"", b)
	}

	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
