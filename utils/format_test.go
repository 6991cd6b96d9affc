package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreakEmoji(t *testing.T) {
	assert.Equal(t, "✅", StreakEmoji(0))
	assert.Equal(t, "✅", StreakEmoji(2))
	assert.Equal(t, "⚡", StreakEmoji(3))
	assert.Equal(t, "⚡", StreakEmoji(6))
	assert.Equal(t, "🔥", StreakEmoji(7))

	assert.Equal(t, "🏆", GroupStreakEmoji(1))
	assert.Equal(t, "⚡⚡", GroupStreakEmoji(3))
	assert.Equal(t, "🔥🔥", GroupStreakEmoji(30))
}

func TestRankEmoji(t *testing.T) {
	assert.Equal(t, "🥇", RankEmoji(1))
	assert.Equal(t, "🥈", RankEmoji(2))
	assert.Equal(t, "🥉", RankEmoji(3))
	assert.Equal(t, "📍", RankEmoji(4))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "0 days", Plural(0, "day"))
	assert.Equal(t, "1 day", Plural(1, "day"))
	assert.Equal(t, "12 questions", Plural(12, "question"))
}

func TestFormatDifficulty(t *testing.T) {
	assert.Equal(t, "🟢 Easy", FormatDifficulty(DifficultyEasy))
	assert.Equal(t, "🔴 Hard", FormatDifficulty(DifficultyHard))
	assert.Equal(t, "Unknown", FormatDifficulty("Unknown"))
	assert.Equal(t, 0xffaa00, DifficultyColor(DifficultyMedium))
}

func TestJoinIDsAndTrimFloat(t *testing.T) {
	assert.Equal(t, "1, 20, 300", JoinIDs([]int64{1, 20, 300}))
	assert.Equal(t, "", JoinIDs(nil))
	assert.Equal(t, "2.5", TrimFloat(2.5))
	assert.Equal(t, "3", TrimFloat(3))
}

func TestFindProblem(t *testing.T) {
	p, ok := FindProblem(1)
	assert.True(t, ok)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "two-sum", p.Slug)
	assert.Equal(t, "Two Sum", p.Title)
	assert.Equal(t, DifficultyEasy, p.Difficulty)
	assert.Equal(t, "https://leetcode.com/problems/two-sum/", p.URL())

	p, ok = FindProblemBySlug("pascals-triangle")
	assert.True(t, ok)
	assert.Equal(t, int64(118), p.ID)
	assert.Equal(t, "Pascal's Triangle", p.Title)

	p, ok = FindProblem(252)
	assert.True(t, ok)
	assert.True(t, p.PaidOnly)

	_, ok = FindProblem(999999)
	assert.False(t, ok)
	_, ok = FindProblemBySlug("not-a-problem")
	assert.False(t, ok)
}

func TestProblemCatalogSlugsAreUnique(t *testing.T) {
	assert.Equal(t, ProblemCount(), len(problemsBySlug))
}
