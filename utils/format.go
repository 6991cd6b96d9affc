package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// StreakEmoji picks the marker shown next to an individual streak.
func StreakEmoji(streak int) string {
	switch {
	case streak >= 7:
		return "🔥"
	case streak >= 3:
		return "⚡"
	default:
		return "✅"
	}
}

func GroupStreakEmoji(streak int) string {
	switch {
	case streak >= 7:
		return "🔥🔥"
	case streak >= 3:
		return "⚡⚡"
	default:
		return "🏆"
	}
}

// RankEmoji returns the medal for a 1-based leaderboard position.
func RankEmoji(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return "📍"
	}
}

// Plural formats "1 day" / "2 days".
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func FormatDifficulty(difficulty string) string {
	switch difficulty {
	case DifficultyEasy:
		return "🟢 Easy"
	case DifficultyMedium:
		return "🟡 Medium"
	case DifficultyHard:
		return "🔴 Hard"
	default:
		return difficulty
	}
}

// DifficultyColor is the embed sidebar colour for a difficulty.
func DifficultyColor(difficulty string) int {
	switch difficulty {
	case DifficultyEasy:
		return 0x00ff00
	case DifficultyMedium:
		return 0xffaa00
	default:
		return 0xff0000
	}
}

// JoinIDs renders question ids as "1, 2, 3".
func JoinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}

// TrimFloat prints f without trailing zeros: 2.5 -> "2.5", 3 -> "3".
func TrimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
