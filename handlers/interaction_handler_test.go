package handlers

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobrandy13/LeetcodeBot/internal/kv"
	"github.com/bobrandy13/LeetcodeBot/internal/repository"
	"github.com/bobrandy13/LeetcodeBot/internal/types/streak"
	"github.com/bobrandy13/LeetcodeBot/middleware"
	"github.com/bobrandy13/LeetcodeBot/services"
)

const (
	bobID   = "190412345678901234"
	razarID = "190412345678901235"
	essID   = "190412345678901236"
)

var members = []string{"razar0200", "bobrandy", "esshaygod"}

type interactionReply struct {
	Type int `json:"type"`
	Data *struct {
		Content string `json:"content"`
		Flags   int    `json:"flags"`
		Embeds  []struct {
			Title string `json:"title"`
			URL   string `json:"url"`
		} `json:"embeds"`
	} `json:"data"`
}

type testBot struct {
	handler *InteractionHandler
	repo    *repository.StreakRepository
	priv    ed25519.PrivateKey
}

func newTestBot(t *testing.T) *testBot {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	repo := repository.NewStreakRepository(kv.NewMemoryStore())
	svc := services.NewStreakService(repo, members)
	loc, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)
	svc.SetClock(func() time.Time { return time.Date(2025, 12, 14, 12, 0, 0, 0, loc) })

	h := NewInteractionHandler(svc, services.NewProblemService(), middleware.NewRateLimiter(100, 100), pub, "app-123")
	return &testBot{handler: h, repo: repo, priv: priv}
}

func (b *testBot) send(t *testing.T, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	ts := strconv.FormatInt(time.Now().Unix(), 10)
	sig := ed25519.Sign(b.priv, append([]byte(ts), body...))

	req := httptest.NewRequest(http.MethodPost, "/interactions", bytes.NewReader(body))
	req.Header.Set("X-Signature-Ed25519", hex.EncodeToString(sig))
	req.Header.Set("X-Signature-Timestamp", ts)

	rec := httptest.NewRecorder()
	b.handler.HandleInteraction(rec, req)
	return rec
}

func decodeReply(t *testing.T, rec *httptest.ResponseRecorder) interactionReply {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var r interactionReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	return r
}

func command(userID, username, name string, options ...map[string]interface{}) map[string]interface{} {
	data := map[string]interface{}{"id": "900000000000000001", "name": name, "type": 1}
	if len(options) > 0 {
		data["options"] = options
	}
	return map[string]interface{}{
		"id":             "900000000000000002",
		"application_id": "app-123",
		"type":           2,
		"token":          "token",
		"member": map[string]interface{}{
			"user": map[string]interface{}{"id": userID, "username": username},
		},
		"data": data,
	}
}

func option(name string, optType int, value interface{}) map[string]interface{} {
	return map[string]interface{}{"name": name, "type": optType, "value": value}
}

func TestHandleInteraction_RejectsBadSignature(t *testing.T) {
	bot := newTestBot(t)

	req := httptest.NewRequest(http.MethodPost, "/interactions", bytes.NewReader([]byte(`{"type":1}`)))
	req.Header.Set("X-Signature-Ed25519", hex.EncodeToString(make([]byte, ed25519.SignatureSize)))
	req.Header.Set("X-Signature-Timestamp", "1")
	rec := httptest.NewRecorder()
	bot.handler.HandleInteraction(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleInteraction_Ping(t *testing.T) {
	bot := newTestBot(t)

	r := decodeReply(t, bot.send(t, map[string]interface{}{"id": "1", "type": 1, "token": "t"}))

	assert.Equal(t, 1, r.Type)
}

func TestHandleInteraction_UnknownCommand(t *testing.T) {
	bot := newTestBot(t)

	rec := bot.send(t, command(bobID, "bobrandy", "awwww"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComplete_FirstCompletion(t *testing.T) {
	bot := newTestBot(t)

	r := decodeReply(t, bot.send(t, command(bobID, "bobrandy", "complete", option("question_id", 4, 1))))

	assert.Equal(t, 4, r.Type)
	require.NotNil(t, r.Data)
	assert.Contains(t, r.Data.Content, "Great job, bobrandy")
	assert.Contains(t, r.Data.Content, "**1. Two Sum** (🟢 Easy)")
	assert.Contains(t, r.Data.Content, "Current streak: 1 day\n")
	assert.Contains(t, r.Data.Content, "Total completed: 1 question")
	assert.NotContains(t, r.Data.Content, "Group streak")
	assert.Zero(t, r.Data.Flags)

	rec := bot.repo.GetUser(context.Background(), bobID)
	assert.Equal(t, []int64{1}, rec.CompletedQuestions)
	assert.Equal(t, "2025-12-14", rec.LastDate())
}

func TestComplete_UnknownProblemStillCounts(t *testing.T) {
	bot := newTestBot(t)

	r := decodeReply(t, bot.send(t, command(bobID, "bobrandy", "complete", option("question_id", 4, 99999))))

	assert.Contains(t, r.Data.Content, "**Question 99999**")
}

func TestComplete_Duplicate(t *testing.T) {
	bot := newTestBot(t)
	bot.send(t, command(bobID, "bobrandy", "complete", option("question_id", 4, 7)))

	r := decodeReply(t, bot.send(t, command(bobID, "bobrandy", "complete", option("question_id", 4, 7))))

	assert.Equal(t, "You've already completed question 7! 🎯", r.Data.Content)
	assert.NotZero(t, r.Data.Flags)
}

func TestComplete_MissingQuestion(t *testing.T) {
	bot := newTestBot(t)

	r := decodeReply(t, bot.send(t, command(bobID, "bobrandy", "complete")))

	assert.Equal(t, "Error: Please provide a question ID.", r.Data.Content)
}

func TestComplete_MalformedUserID(t *testing.T) {
	bot := newTestBot(t)

	r := decodeReply(t, bot.send(t, command("not-a-snowflake", "bobrandy", "complete", option("question_id", 4, 1))))

	assert.Equal(t, "Error: Could not identify user.", r.Data.Content)
}

func TestComplete_ShowsGroupStreak(t *testing.T) {
	bot := newTestBot(t)
	ctx := context.Background()
	today := "2025-12-14"
	for id, name := range map[string]string{razarID: "razar0200", essID: "esshaygod"} {
		require.NoError(t, bot.repo.SaveUser(ctx, id, streak.UserRecord{Username: name, CompletedQuestions: []int64{1}, CurrentStreak: 4, LastCompletionDate: &today}))
		require.NoError(t, bot.repo.AddUserToList(ctx, id))
	}

	r := decodeReply(t, bot.send(t, command(bobID, "bobrandy", "complete", option("question_id", 4, 2))))

	assert.Contains(t, r.Data.Content, "🏆 Group streak: 1 day!")
}

func TestStats(t *testing.T) {
	bot := newTestBot(t)

	r := decodeReply(t, bot.send(t, command(bobID, "bobrandy", "stats")))
	assert.Contains(t, r.Data.Content, "you haven't completed any questions yet")

	for q := 1; q <= 12; q++ {
		bot.send(t, command(bobID, "bobrandy", "complete", option("question_id", 4, q)))
	}

	r = decodeReply(t, bot.send(t, command(bobID, "bobrandy", "stats")))
	assert.Contains(t, r.Data.Content, "**bobrandy's Statistics**")
	assert.Contains(t, r.Data.Content, "Total completed: **12** questions")
	assert.Contains(t, r.Data.Content, "Last completion: 2025-12-14")
	assert.Contains(t, r.Data.Content, "Recent questions: 3, 4, 5, 6, 7, 8, 9, 10, 11, 12...")
	assert.NotZero(t, r.Data.Flags)
}

func TestGroupStats(t *testing.T) {
	bot := newTestBot(t)

	r := decodeReply(t, bot.send(t, command(bobID, "bobrandy", "group-stats")))
	assert.Contains(t, r.Data.Content, "No users have completed any questions yet")

	bot.send(t, command(bobID, "bobrandy", "complete", option("question_id", 4, 1)))
	bot.send(t, command(bobID, "bobrandy", "complete", option("question_id", 4, 2)))
	bot.send(t, command(razarID, "razar0200", "complete", option("question_id", 4, 1)))

	r = decodeReply(t, bot.send(t, command(bobID, "bobrandy", "group-stats")))
	assert.Contains(t, r.Data.Content, "🥇 **bobrandy**")
	assert.Contains(t, r.Data.Content, "🥈 **razar0200**")
	assert.Contains(t, r.Data.Content, "Average per user: 1.5")
	assert.Contains(t, r.Data.Content, "Active today: 2/2")
}

func TestGroupStreak_IncompleteRoster(t *testing.T) {
	bot := newTestBot(t)
	bot.send(t, command(bobID, "bobrandy", "complete", option("question_id", 4, 1)))

	r := decodeReply(t, bot.send(t, command(bobID, "bobrandy", "group-streak")))

	assert.Contains(t, r.Data.Content, "Group Daily Streak: 0** days")
	assert.Contains(t, r.Data.Content, "1/3 members completed today")
	assert.Contains(t, r.Data.Content, "Incomplete roster:** razar0200, esshaygod have not")
}

func TestGroupStreakAndHistory_AllMembers(t *testing.T) {
	bot := newTestBot(t)
	bot.send(t, command(bobID, "bobrandy", "complete", option("question_id", 4, 1)))
	bot.send(t, command(razarID, "razar0200", "complete", option("question_id", 4, 1)))
	bot.send(t, command(essID, "esshaygod", "complete", option("question_id", 4, 1)))

	r := decodeReply(t, bot.send(t, command(bobID, "bobrandy", "group-streak")))
	assert.Contains(t, r.Data.Content, "ALL 3 MEMBERS COMPLETED TODAY!")
	assert.Contains(t, r.Data.Content, "Group streak started!")

	r = decodeReply(t, bot.send(t, command(bobID, "bobrandy", "group-history")))
	assert.Contains(t, r.Data.Content, "All-time best streak:** 1 day")
	assert.Contains(t, r.Data.Content, "Total group completion days:** 1")
	assert.Contains(t, r.Data.Content, "First group day:** 2025-12-14")
	assert.Contains(t, r.Data.Content, "✅ 2025-12-14: Streak 1 (razar0200, bobrandy, esshaygod)")
}

func TestGroupHistory_Empty(t *testing.T) {
	bot := newTestBot(t)

	r := decodeReply(t, bot.send(t, command(bobID, "bobrandy", "group-history")))

	assert.Contains(t, r.Data.Content, "No group history yet!")
}

func TestPlayerStats(t *testing.T) {
	bot := newTestBot(t)
	bot.send(t, command(bobID, "bobrandy", "complete", option("question_id", 4, 1)))

	r := decodeReply(t, bot.send(t, command(razarID, "razar0200", "player-stats", option("username", 3, "bobrandy"))))
	assert.Contains(t, r.Data.Content, "🥇 **bobrandy's Statistics** (Rank #1)")

	r = decodeReply(t, bot.send(t, command(razarID, "razar0200", "player-stats", option("username", 3, "drag0n0"))))
	assert.Equal(t, "drag0n0 hasn't completed any questions yet! 🚀", r.Data.Content)
}

func TestQuestionInfo(t *testing.T) {
	bot := newTestBot(t)

	r := decodeReply(t, bot.send(t, command(bobID, "bobrandy", "question-info", option("question_id", 4, 206))))
	require.Len(t, r.Data.Embeds, 1)
	assert.Equal(t, "206. Reverse Linked List", r.Data.Embeds[0].Title)
	assert.Equal(t, "https://leetcode.com/problems/reverse-linked-list/", r.Data.Embeds[0].URL)

	r = decodeReply(t, bot.send(t, command(bobID, "bobrandy", "question-info", option("question_id", 4, 424242))))
	assert.Contains(t, r.Data.Content, "Question 424242 not found")
}

func TestInvite(t *testing.T) {
	bot := newTestBot(t)

	r := decodeReply(t, bot.send(t, command(bobID, "bobrandy", "invite")))

	assert.Equal(t, "https://discord.com/oauth2/authorize?client_id=app-123&scope=applications.commands", r.Data.Content)
	assert.NotZero(t, r.Data.Flags)
}

func TestDispatch_PerUserRateLimit(t *testing.T) {
	bot := newTestBot(t)
	bot.handler.limiter = middleware.NewRateLimiter(0.001, 1)

	decodeReply(t, bot.send(t, command(bobID, "bobrandy", "stats")))
	r := decodeReply(t, bot.send(t, command(bobID, "bobrandy", "stats")))

	assert.Contains(t, r.Data.Content, "Slow down")
}
