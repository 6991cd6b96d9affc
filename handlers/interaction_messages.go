package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/bobrandy13/LeetcodeBot/internal/types/streak"
	"github.com/bobrandy13/LeetcodeBot/utils"
)

const recentQuestionLimit = 10
const recentHistoryLimit = 7

func completionMessage(username string, res *streak.Completion, problem *utils.Problem, questionID int64) string {
	title := fmt.Sprintf("Question %d", questionID)
	details := ""
	if problem != nil {
		title = fmt.Sprintf("%d. %s", problem.ID, problem.Title)
		details = fmt.Sprintf(" (%s)", utils.FormatDifficulty(problem.Difficulty))
	}

	rec := res.Record
	var b strings.Builder
	fmt.Fprintf(&b, "🎉 Great job, %s! You completed **%s**%s!\n", username, title, details)
	fmt.Fprintf(&b, "%s Current streak: %s\n", utils.StreakEmoji(rec.CurrentStreak), utils.Plural(rec.CurrentStreak, "day"))
	fmt.Fprintf(&b, "📊 Total completed: %s", utils.Plural(len(rec.CompletedQuestions), "question"))

	if g := res.Group.Streak; g > 0 {
		fmt.Fprintf(&b, "\n%s Group streak: %s!", utils.GroupStreakEmoji(g), utils.Plural(g, "day"))
	}
	return b.String()
}

func recentQuestions(ids []int64) string {
	if len(ids) <= recentQuestionLimit {
		return utils.JoinIDs(ids)
	}
	return utils.JoinIDs(ids[len(ids)-recentQuestionLimit:]) + "..."
}

func lastCompletion(rec streak.UserRecord) string {
	if rec.LastCompletionDate == nil {
		return "Never"
	}
	return *rec.LastCompletionDate
}

func userStatsBody(rec streak.UserRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Current streak: **%d** day%s\n", utils.StreakEmoji(rec.CurrentStreak), rec.CurrentStreak, plural(rec.CurrentStreak))
	fmt.Fprintf(&b, "🎯 Total completed: **%d** question%s\n", len(rec.CompletedQuestions), plural(len(rec.CompletedQuestions)))
	fmt.Fprintf(&b, "📅 Last completion: %s\n\n", lastCompletion(rec))
	fmt.Fprintf(&b, "🔢 Recent questions: %s", recentQuestions(rec.CompletedQuestions))
	return b.String()
}

func statsMessage(username string, rec streak.UserRecord) string {
	return fmt.Sprintf("📊 **%s's Statistics**\n\n", username) + userStatsBody(rec)
}

func playerStatsMessage(p *streak.PlayerStats) string {
	return fmt.Sprintf("%s **%s's Statistics** (Rank #%d)\n\n", utils.RankEmoji(p.Rank), p.Username, p.Rank) +
		userStatsBody(p.UserRecord)
}

func groupStatsMessage(stats *streak.GroupStats) string {
	var b strings.Builder
	b.WriteString("🏆 **Group Statistics**\n\n")

	for i, u := range stats.Leaderboard {
		fmt.Fprintf(&b, "%s **%s**\n", utils.RankEmoji(i+1), u.Username)
		fmt.Fprintf(&b, "   %s Streak: %s | ", utils.StreakEmoji(u.CurrentStreak), utils.Plural(u.CurrentStreak, "day"))
		fmt.Fprintf(&b, "🎯 Total: %s\n\n", utils.Plural(u.CompletedCount(), "question"))
	}

	n := len(stats.Leaderboard)
	b.WriteString("📈 **Summary**\n")
	fmt.Fprintf(&b, "👥 Active users: %d\n", n)
	fmt.Fprintf(&b, "📊 Total questions completed: %d\n", stats.TotalQuestions)
	fmt.Fprintf(&b, "📉 Average per user: %s\n", utils.TrimFloat(stats.AveragePerUser))
	fmt.Fprintf(&b, "🗓️ Active today: %d/%d", stats.ActiveToday, n)
	return b.String()
}

// untracked lists required members with no stored record at all.
func untracked(snap streak.GroupSnapshot) []string {
	var out []string
	for _, u := range snap.RequiredUsers {
		if _, ok := snap.IndividualStreaks[u]; !ok {
			out = append(out, u)
		}
	}
	return out
}

func groupStreakMessage(snap streak.GroupSnapshot) string {
	total := len(snap.RequiredUsers)

	var b strings.Builder
	fmt.Fprintf(&b, "%s **Group Daily Streak: %d** day%s\n\n", utils.GroupStreakEmoji(snap.Streak), snap.Streak, plural(snap.Streak))
	fmt.Fprintf(&b, "🎯 **Required Members:** %s\n", strings.Join(snap.RequiredUsers, ", "))
	fmt.Fprintf(&b, "📅 **Today (%s):**\n\n", snap.LastEvaluatedDate)

	if snap.AllRequiredParticipated {
		fmt.Fprintf(&b, "🎉 **ALL %d MEMBERS COMPLETED TODAY!** ✅\n", total)
		fmt.Fprintf(&b, "👥 **Completed:** %s\n\n", strings.Join(snap.ParticipatingUsers, ", "))
		if snap.Streak == 1 {
			b.WriteString("🚀 Group streak started! Keep it going tomorrow!")
		} else {
			b.WriteString("🔥 Keep the streak alive! Everyone complete tomorrow too!")
		}
		return b.String()
	}

	fmt.Fprintf(&b, "⚠️ **%d/%d members completed today**\n\n", len(snap.ParticipatingUsers), total)
	if len(snap.ParticipatingUsers) > 0 {
		fmt.Fprintf(&b, "✅ **Completed today:** %s\n", strings.Join(snap.ParticipatingUsers, ", "))
	}
	if len(snap.MissingUsers) > 0 {
		fmt.Fprintf(&b, "❌ **Still needed:** %s\n\n", strings.Join(snap.MissingUsers, ", "))
	}
	if missing := untracked(snap); len(missing) > 0 {
		fmt.Fprintf(&b, "🧩 **Incomplete roster:** %s %s not completed a question yet\n", strings.Join(missing, ", "), hasHave(len(missing)))
	}

	if snap.Streak > 0 {
		b.WriteString("💔 Streak will be broken unless everyone completes today!\n")
		fmt.Fprintf(&b, "💪 **%s** - complete a question to save the streak!", strings.Join(snap.MissingUsers, ", "))
	} else {
		fmt.Fprintf(&b, "🚀 **All %d members** need to complete a question on the same day to start the group streak!", total)
	}
	return b.String()
}

func groupHistoryMessage(history streak.GroupHistory, snap streak.GroupSnapshot) string {
	var b strings.Builder
	b.WriteString("📊 **Group History & Achievements**\n\n")
	fmt.Fprintf(&b, "%s **All-time best streak:** %s\n", utils.GroupStreakEmoji(history.MaxStreak), utils.Plural(history.MaxStreak, "day"))
	fmt.Fprintf(&b, "🏆 **Current streak:** %s\n", utils.Plural(snap.Streak, "day"))
	fmt.Fprintf(&b, "📈 **Total group completion days:** %d\n", history.TotalGroupDays)

	if history.FirstGroupDay != nil {
		fmt.Fprintf(&b, "🗓️ **First group day:** %s\n\n", *history.FirstGroupDay)
	}

	recent := history.Recent(recentHistoryLimit)
	if len(recent) > 0 {
		fmt.Fprintf(&b, "📅 **Recent Activity (Last %d days):**\n", len(recent))
		for _, day := range recent {
			fmt.Fprintf(&b, "%s %s: Streak %d (%s)\n", utils.StreakEmoji(day.Streak), day.Date, day.Streak, strings.Join(day.Participants, ", "))
		}
		b.WriteString("\n💪 Keep building that group streak!")
	}
	return b.String()
}

func problemNotFoundMessage(query string) string {
	if _, err := strconv.ParseInt(query, 10, 64); err == nil {
		return fmt.Sprintf("❌ Question %s not found in our database.\n\n"+
			"💡 **Supported questions:** %d popular problems (1, 2, 70, 121, 206, 226, ...)\n\n"+
			"📝 **Alternative:** Try using the question slug (e.g., \"two-sum\")", query, utils.ProblemCount())
	}
	return fmt.Sprintf("❌ Could not find question with slug: \"%s\"\n\n"+
		"💡 **Tip:** Use question numbers (1, 2, 3...) or exact slugs (e.g., \"two-sum\")", query)
}

func problemEmbed(p utils.Problem) *discordgo.MessageEmbed {
	access := "🆓 Free"
	if p.PaidOnly {
		access = "🔒 Premium"
	}
	id := strconv.FormatInt(p.ID, 10)

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s. %s", id, p.Title),
		URL:   p.URL(),
		Color: utils.DifficultyColor(p.Difficulty),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Difficulty", Value: utils.FormatDifficulty(p.Difficulty), Inline: true},
			{Name: "Access", Value: access, Inline: true},
			{Name: "Slug", Value: p.Slug, Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Question ID: %s | Frontend ID: %s", id, id),
		},
	}
}

func inviteURL(applicationID string) string {
	return fmt.Sprintf("https://discord.com/oauth2/authorize?client_id=%s&scope=applications.commands", applicationID)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func hasHave(n int) string {
	if n == 1 {
		return "has"
	}
	return "have"
}
