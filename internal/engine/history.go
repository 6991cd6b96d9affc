package engine

import (
	"github.com/bobrandy13/LeetcodeBot/internal/types/streak"
)

// RecordHistory folds snap into h. appended is true when snap added a new
// fully-participated day. Recording the same date twice is a no-op apart
// from the max streak.
func RecordHistory(h streak.GroupHistory, snap streak.GroupSnapshot) (next streak.GroupHistory, appended bool) {
	next = h
	next.StreakHistory = append(make([]streak.GroupHistoryEntry, 0, len(h.StreakHistory)+1), h.StreakHistory...)

	if snap.Streak > next.MaxStreak {
		next.MaxStreak = snap.Streak
	}

	if snap.AllRequiredParticipated && snap.LastEvaluatedDate != "" && !next.HasDate(snap.LastEvaluatedDate) {
		next.StreakHistory = append(next.StreakHistory, streak.GroupHistoryEntry{
			Date:         snap.LastEvaluatedDate,
			Streak:       snap.Streak,
			Participants: append([]string{}, snap.ParticipatingUsers...),
		})
		next.TotalGroupDays++
		if next.FirstGroupDay == nil {
			day := snap.LastEvaluatedDate
			next.FirstGroupDay = &day
		}
		appended = true
	}

	if n := len(next.StreakHistory); n > streak.HistoryRetention {
		next.StreakHistory = next.StreakHistory[n-streak.HistoryRetention:]
	}

	return next, appended
}
