package engine

import (
	"github.com/bobrandy13/LeetcodeBot/internal/calendar"
	"github.com/bobrandy13/LeetcodeBot/internal/types/streak"
)

// EvaluateGroup derives the group snapshot for today from the required
// members' records. records is keyed by username; a missing key means the
// member has never been seen, which pins the group streak at 0.
func EvaluateGroup(required []string, records map[string]streak.UserRecord, today string) streak.GroupSnapshot {
	snap := streak.GroupSnapshot{
		LastEvaluatedDate:  today,
		ParticipatingUsers: []string{},
		MissingUsers:       []string{},
		RequiredUsers:      append([]string{}, required...),
		IndividualStreaks:  make(map[string]int, len(required)),
	}

	allKnown := true
	minStreak := -1

	for _, username := range required {
		rec, ok := records[username]
		if !ok {
			allKnown = false
			snap.MissingUsers = append(snap.MissingUsers, username)
			continue
		}

		snap.IndividualStreaks[username] = rec.CurrentStreak
		if minStreak < 0 || rec.CurrentStreak < minStreak {
			minStreak = rec.CurrentStreak
		}

		if completedOn(rec, today) {
			snap.ParticipatingUsers = append(snap.ParticipatingUsers, username)
		} else {
			snap.MissingUsers = append(snap.MissingUsers, username)
		}
	}

	if allKnown && minStreak > 0 {
		snap.Streak = minStreak
	}
	snap.AllRequiredParticipated = len(snap.MissingUsers) == 0

	return snap
}

// completedOn tolerates legacy long-form dates left over from older records.
func completedOn(rec streak.UserRecord, today string) bool {
	if rec.LastCompletionDate == nil {
		return false
	}
	d, err := calendar.DayDistance(*rec.LastCompletionDate, today)
	return err == nil && d == 0
}
