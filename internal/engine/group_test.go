package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bobrandy13/LeetcodeBot/internal/types/streak"
)

var required = []string{"razar0200", "bobrandy", "esshaygod"}

func member(name string, currentStreak int, last string) streak.UserRecord {
	return streak.UserRecord{Username: name, CurrentStreak: currentStreak, LastCompletionDate: day(last)}
}

func TestEvaluateGroup_AllParticipated(t *testing.T) {
	const today = "2025-12-14"
	records := map[string]streak.UserRecord{
		"razar0200": member("razar0200", 3, today),
		"bobrandy":  member("bobrandy", 5, today),
		"esshaygod": member("esshaygod", 4, today),
	}

	snap := EvaluateGroup(required, records, today)

	assert.Equal(t, 3, snap.Streak)
	assert.True(t, snap.AllRequiredParticipated)
	assert.Equal(t, required, snap.ParticipatingUsers)
	assert.Empty(t, snap.MissingUsers)
	assert.Equal(t, today, snap.LastEvaluatedDate)
	assert.Equal(t, map[string]int{"razar0200": 3, "bobrandy": 5, "esshaygod": 4}, snap.IndividualStreaks)
}

func TestEvaluateGroup_OneMissingToday(t *testing.T) {
	const today = "2025-12-14"
	records := map[string]streak.UserRecord{
		"razar0200": member("razar0200", 3, today),
		"bobrandy":  member("bobrandy", 5, "2025-12-13"),
		"esshaygod": member("esshaygod", 4, today),
	}

	snap := EvaluateGroup(required, records, today)

	assert.False(t, snap.AllRequiredParticipated)
	assert.Equal(t, 3, snap.Streak, "streak still comes from every known member")
	assert.Equal(t, []string{"razar0200", "esshaygod"}, snap.ParticipatingUsers)
	assert.Equal(t, []string{"bobrandy"}, snap.MissingUsers)
}

func TestEvaluateGroup_UnknownMemberZeroesStreak(t *testing.T) {
	const today = "2025-12-14"
	records := map[string]streak.UserRecord{
		"razar0200": member("razar0200", 3, today),
		"bobrandy":  member("bobrandy", 5, today),
	}

	snap := EvaluateGroup(required, records, today)

	assert.Equal(t, 0, snap.Streak)
	assert.False(t, snap.AllRequiredParticipated)
	assert.Equal(t, []string{"esshaygod"}, snap.MissingUsers)
	assert.NotContains(t, snap.IndividualStreaks, "esshaygod")
}

func TestEvaluateGroup_IgnoresNonMembers(t *testing.T) {
	const today = "2025-12-14"
	records := map[string]streak.UserRecord{
		"razar0200": member("razar0200", 2, today),
		"bobrandy":  member("bobrandy", 2, today),
		"esshaygod": member("esshaygod", 2, today),
		"drag0n0":   member("drag0n0", 1, today),
	}

	snap := EvaluateGroup(required, records, today)

	assert.Equal(t, 2, snap.Streak)
	assert.NotContains(t, snap.ParticipatingUsers, "drag0n0")
	assert.NotContains(t, snap.IndividualStreaks, "drag0n0")
}

func TestEvaluateGroup_StreakNeverExceedsMinimum(t *testing.T) {
	const today = "2025-12-14"
	for a := 0; a <= 4; a++ {
		for b := 0; b <= 4; b++ {
			records := map[string]streak.UserRecord{
				"razar0200": member("razar0200", a, today),
				"bobrandy":  member("bobrandy", b, "2025-12-13"),
				"esshaygod": member("esshaygod", 3, today),
			}
			snap := EvaluateGroup(required, records, today)
			assert.LessOrEqual(t, snap.Streak, a)
			assert.LessOrEqual(t, snap.Streak, b)
			assert.LessOrEqual(t, snap.Streak, 3)
		}
	}
}

func TestEvaluateGroup_LegacyDateCountsAsToday(t *testing.T) {
	const today = "2025-12-14"
	records := map[string]streak.UserRecord{
		"razar0200": member("razar0200", 1, "Sun Dec 14 2025"),
		"bobrandy":  member("bobrandy", 1, today),
		"esshaygod": member("esshaygod", 1, today),
	}

	snap := EvaluateGroup(required, records, today)

	assert.True(t, snap.AllRequiredParticipated)
	assert.Equal(t, 1, snap.Streak)
}
