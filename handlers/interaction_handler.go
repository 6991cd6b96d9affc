package handlers

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/bwmarrin/snowflake"

	"github.com/bobrandy13/LeetcodeBot/internal/metrics"
	"github.com/bobrandy13/LeetcodeBot/middleware"
	"github.com/bobrandy13/LeetcodeBot/services"
	"github.com/bobrandy13/LeetcodeBot/utils"
)

// Slash command names, matching the registered application commands.
const (
	CommandComplete     = "complete"
	CommandStats        = "stats"
	CommandGroupStats   = "group-stats"
	CommandGroupStreak  = "group-streak"
	CommandPlayerStats  = "player-stats"
	CommandGroupHistory = "group-history"
	CommandQuestionInfo = "question-info"
	CommandInvite       = "invite"
)

// Discord drops interactions that are not answered within three seconds.
const interactionTimeout = 3 * time.Second

type InteractionHandler struct {
	streakService *services.StreakService
	problems      services.ProblemLookup
	limiter       *middleware.RateLimiter
	publicKey     ed25519.PublicKey
	applicationID string
}

func NewInteractionHandler(
	streakService *services.StreakService,
	problems services.ProblemLookup,
	limiter *middleware.RateLimiter,
	publicKey ed25519.PublicKey,
	applicationID string,
) *InteractionHandler {
	return &InteractionHandler{
		streakService: streakService,
		problems:      problems,
		limiter:       limiter,
		publicKey:     publicKey,
		applicationID: applicationID,
	}
}

// HandleInteraction is the Discord interactions endpoint.
func (h *InteractionHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, h.publicKey) {
		log.Println("HandleInteraction: invalid request signature")
		http.Error(w, "Bad request signature.", http.StatusUnauthorized)
		return
	}

	var interaction discordgo.Interaction
	if err := json.NewDecoder(r.Body).Decode(&interaction); err != nil {
		log.Printf("HandleInteraction: error decoding interaction: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid interaction payload")
		return
	}

	switch interaction.Type {
	case discordgo.InteractionPing:
		respondWithJSON(w, http.StatusOK, discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong})
	case discordgo.InteractionApplicationCommand:
		ctx, cancel := context.WithTimeout(r.Context(), interactionTimeout)
		defer cancel()
		h.dispatch(ctx, w, &interaction)
	default:
		log.Printf("HandleInteraction: unsupported interaction type %d", interaction.Type)
		respondWithError(w, http.StatusBadRequest, "Unknown Type")
	}
}

func (h *InteractionHandler) dispatch(ctx context.Context, w http.ResponseWriter, i *discordgo.Interaction) {
	data := i.ApplicationCommandData()
	name := strings.ToLower(data.Name)

	userID, username := invoker(i)
	if userID != "" && !h.limiter.Allow(userID) {
		reply(w, "⏳ Slow down! Try that command again in a moment.", true)
		return
	}

	switch name {
	case CommandComplete:
		h.complete(ctx, w, userID, username, data.Options)
	case CommandStats:
		h.stats(ctx, w, userID, username)
	case CommandGroupStats:
		h.groupStats(ctx, w)
	case CommandGroupStreak:
		h.groupStreak(ctx, w)
	case CommandPlayerStats:
		h.playerStats(ctx, w, data.Options)
	case CommandGroupHistory:
		h.groupHistory(ctx, w)
	case CommandQuestionInfo:
		h.questionInfo(w, data.Options)
	case CommandInvite:
		reply(w, inviteURL(h.applicationID), true)
	default:
		log.Printf("dispatch: unknown command %q", data.Name)
		respondWithError(w, http.StatusBadRequest, "Unknown Type")
		return
	}

	metrics.CommandsTotal.WithLabelValues(name).Inc()
}

func (h *InteractionHandler) complete(ctx context.Context, w http.ResponseWriter, userID, username string, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	questionID, _ := intOption(opts, "question_id")

	res, err := h.streakService.RegisterCompletion(ctx, userID, username, questionID)
	switch {
	case errors.Is(err, services.ErrUserNotIdentified):
		reply(w, "Error: Could not identify user.", true)
		return
	case errors.Is(err, services.ErrMissingQuestionID):
		reply(w, "Error: Please provide a question ID.", true)
		return
	case errors.Is(err, services.ErrAlreadyCompleted):
		reply(w, fmt.Sprintf("You've already completed question %d! 🎯", questionID), true)
		return
	case err != nil:
		log.Printf("complete: user %s question %d: %v", userID, questionID, err)
		reply(w, "Error: Could not save completion data.", true)
		return
	}

	var problem *utils.Problem
	if p, ok := h.problems.ByID(questionID); ok {
		problem = &p
	}

	reply(w, completionMessage(username, res, problem, questionID), false)
}

func (h *InteractionHandler) stats(ctx context.Context, w http.ResponseWriter, userID, username string) {
	if userID == "" || username == "" {
		reply(w, "Error: Could not identify user.", true)
		return
	}

	rec, err := h.streakService.GetUserStatistics(ctx, userID)
	if err != nil {
		reply(w, "Error: Could not identify user.", true)
		return
	}

	if len(rec.CompletedQuestions) == 0 {
		reply(w, fmt.Sprintf("%s, you haven't completed any questions yet! Use `/complete <question_id>` to track your progress. 🚀", username), true)
		return
	}

	reply(w, statsMessage(username, rec), true)
}

func (h *InteractionHandler) groupStats(ctx context.Context, w http.ResponseWriter) {
	stats := h.streakService.GetGroupStats(ctx)
	if len(stats.Leaderboard) == 0 {
		reply(w, "No users have completed any questions yet! Be the first to use `/complete <question_id>` 🚀", false)
		return
	}
	reply(w, groupStatsMessage(stats), false)
}

func (h *InteractionHandler) groupStreak(ctx context.Context, w http.ResponseWriter) {
	reply(w, groupStreakMessage(h.streakService.GetGroupStatus(ctx)), false)
}

func (h *InteractionHandler) playerStats(ctx context.Context, w http.ResponseWriter, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	username, _ := stringOption(opts, "username")
	if username == "" {
		reply(w, "Error: Please specify a username.", true)
		return
	}

	p, err := h.streakService.GetPlayerStats(ctx, username)
	if err != nil {
		reply(w, fmt.Sprintf("%s hasn't completed any questions yet! 🚀", username), true)
		return
	}
	reply(w, playerStatsMessage(p), false)
}

// groupHistory refreshes today's snapshot first so the history shown
// already includes today when the group just completed.
func (h *InteractionHandler) groupHistory(ctx context.Context, w http.ResponseWriter) {
	snap := h.streakService.GetGroupStatus(ctx)
	history := h.streakService.GetGroupHistory(ctx)

	if history.TotalGroupDays == 0 {
		reply(w, "No group history yet! Complete some questions together to build your legacy 🚀", false)
		return
	}
	reply(w, groupHistoryMessage(history, snap), false)
}

func (h *InteractionHandler) questionInfo(w http.ResponseWriter, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	query, _ := stringOption(opts, "question_id")
	if query == "" || query == "0" {
		reply(w, "Error: Please provide a question ID.", true)
		return
	}

	p, ok := h.problems.Find(query)
	if !ok {
		reply(w, problemNotFoundMessage(query), true)
		return
	}
	replyEmbed(w, problemEmbed(p))
}

// invoker returns the calling user. Guild interactions carry the user on
// Member, DMs on User. Ids that are not valid snowflakes are rejected.
func invoker(i *discordgo.Interaction) (userID, username string) {
	var u *discordgo.User
	switch {
	case i.Member != nil && i.Member.User != nil:
		u = i.Member.User
	case i.User != nil:
		u = i.User
	default:
		return "", ""
	}

	if _, err := snowflake.ParseString(u.ID); err != nil {
		log.Printf("invoker: rejecting malformed user id %q", u.ID)
		return "", ""
	}
	return u.ID, u.Username
}

func findOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, o := range opts {
		if o != nil && o.Name == name {
			return o
		}
	}
	return nil
}

// intOption reads an INTEGER option. Values arrive as JSON numbers; string
// values are parsed for clients that send them quoted.
func intOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) (int64, bool) {
	o := findOption(opts, name)
	if o == nil {
		return 0, false
	}
	switch v := o.Value.(type) {
	case float64:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func stringOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) (string, bool) {
	o := findOption(opts, name)
	if o == nil {
		return "", false
	}
	switch v := o.Value.(type) {
	case string:
		return strings.TrimSpace(v), true
	case float64:
		return strconv.FormatInt(int64(v), 10), true
	default:
		return "", false
	}
}
