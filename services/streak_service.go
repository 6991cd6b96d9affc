package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bobrandy13/LeetcodeBot/internal/calendar"
	"github.com/bobrandy13/LeetcodeBot/internal/engine"
	"github.com/bobrandy13/LeetcodeBot/internal/metrics"
	"github.com/bobrandy13/LeetcodeBot/internal/repository"
	"github.com/bobrandy13/LeetcodeBot/internal/types/streak"
)

var (
	ErrAlreadyCompleted  = engine.ErrAlreadyCompleted
	ErrUserNotIdentified = errors.New("could not identify user")
	ErrMissingQuestionID = errors.New("question id is required")
	ErrSaveFailed        = errors.New("could not save completion data")
	ErrPlayerNotFound    = errors.New("player has no completions")
)

// maxParallelReads bounds the batch read fan-out during group evaluation.
const maxParallelReads = 8

type StreakService struct {
	repo     *repository.StreakRepository
	required []string
	now      func() time.Time
}

func NewStreakService(repo *repository.StreakRepository, requiredMembers []string) *StreakService {
	return &StreakService{
		repo:     repo,
		required: append([]string{}, requiredMembers...),
		now:      time.Now,
	}
}

// SetClock replaces the wall clock. Tests use it to pin "today".
func (s *StreakService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *StreakService) Today() string {
	return calendar.Today(s.now())
}

func (s *StreakService) RequiredMembers() []string {
	return append([]string{}, s.required...)
}

// RegisterCompletion records questionID for the user and recomputes the
// group state with the user's fresh record.
func (s *StreakService) RegisterCompletion(ctx context.Context, userID, username string, questionID int64) (*streak.Completion, error) {
	if userID == "" || username == "" {
		return nil, ErrUserNotIdentified
	}
	if questionID == 0 {
		return nil, ErrMissingQuestionID
	}

	today := s.Today()

	rec := s.repo.GetUser(ctx, userID)
	rec.Username = username

	next, outcome, err := engine.RegisterCompletion(rec, questionID, today)
	if err != nil {
		return nil, err
	}

	if outcome.Anomalous() {
		log.Printf("RegisterCompletion: %s for user %s (stored date %q, today %s)", outcome, userID, rec.LastDate(), today)
	}
	metrics.CompletionsTotal.WithLabelValues(outcome.String()).Inc()

	if err := s.repo.SaveUser(ctx, userID, next); err != nil {
		log.Printf("RegisterCompletion: failed to save user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	if err := s.repo.AddUserToList(ctx, userID); err != nil {
		log.Printf("RegisterCompletion: failed to index user %s: %v", userID, err)
	}

	snap := s.evaluateGroup(ctx, today, &streak.UserStanding{UserID: userID, UserRecord: next})

	return &streak.Completion{UserID: userID, Record: next, Group: snap}, nil
}

func (s *StreakService) GetUserStatistics(ctx context.Context, userID string) (streak.UserRecord, error) {
	if userID == "" {
		return streak.UserRecord{}, ErrUserNotIdentified
	}
	return s.repo.GetUser(ctx, userID), nil
}

// GetGroupStatus recomputes, persists and returns today's group snapshot.
func (s *StreakService) GetGroupStatus(ctx context.Context) streak.GroupSnapshot {
	return s.evaluateGroup(ctx, s.Today(), nil)
}

func (s *StreakService) GetGroupHistory(ctx context.Context) streak.GroupHistory {
	return s.repo.GetGroupHistory(ctx)
}

// GetGroupStats builds the leaderboard of every indexed user, most
// completions first.
func (s *StreakService) GetGroupStats(ctx context.Context) *streak.GroupStats {
	today := s.Today()
	users := s.leaderboard(ctx)

	stats := &streak.GroupStats{
		Today:       today,
		Leaderboard: users,
	}
	for _, u := range users {
		stats.TotalQuestions += u.CompletedCount()
		if d, err := calendar.DayDistance(u.LastDate(), today); err == nil && d == 0 {
			stats.ActiveToday++
		}
	}
	if len(users) > 0 {
		stats.AveragePerUser = math.Round(float64(stats.TotalQuestions)/float64(len(users))*10) / 10
	}

	return stats
}

// GetPlayerStats looks a user up by username and ranks them on the leaderboard.
func (s *StreakService) GetPlayerStats(ctx context.Context, username string) (*streak.PlayerStats, error) {
	if username == "" {
		return nil, ErrUserNotIdentified
	}

	for i, u := range s.leaderboard(ctx) {
		if u.Username != username {
			continue
		}
		if u.CompletedCount() == 0 {
			break
		}
		return &streak.PlayerStats{UserStanding: u, Rank: i + 1}, nil
	}

	return nil, ErrPlayerNotFound
}

func (s *StreakService) leaderboard(ctx context.Context) []streak.UserStanding {
	users := s.loadAllUsers(ctx)
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CompletedCount() > users[j].CompletedCount()
	})
	return users
}

// loadAllUsers reads every indexed user concurrently, in index order. A
// failed read yields the empty default record, which is then dropped for
// having no username.
func (s *StreakService) loadAllUsers(ctx context.Context) []streak.UserStanding {
	ids := s.repo.ListUserIDs(ctx)
	records := make([]streak.UserRecord, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)
	for i, id := range ids {
		g.Go(func() error {
			records[i] = s.repo.GetUser(gctx, id)
			return nil
		})
	}
	_ = g.Wait()

	users := make([]streak.UserStanding, 0, len(ids))
	for i, rec := range records {
		if rec.Username == "" {
			continue
		}
		users = append(users, streak.UserStanding{UserID: ids[i], UserRecord: rec})
	}
	return users
}

func (s *StreakService) evaluateGroup(ctx context.Context, today string, fresh *streak.UserStanding) streak.GroupSnapshot {
	byUsername := make(map[string]streak.UserRecord)
	if fresh != nil {
		byUsername[fresh.Username] = fresh.UserRecord
	}

	for _, u := range s.loadAllUsers(ctx) {
		if fresh != nil && u.UserID == fresh.UserID {
			continue
		}
		if _, dup := byUsername[u.Username]; dup {
			log.Printf("evaluateGroup: username %q also stored under %s, keeping the first record", u.Username, u.UserID)
			continue
		}
		byUsername[u.Username] = u.UserRecord
	}

	snap := engine.EvaluateGroup(s.required, byUsername, today)
	if err := s.repo.SaveGroupSnapshot(ctx, snap); err != nil {
		log.Printf("evaluateGroup: failed to save group snapshot: %v", err)
	}

	history := s.repo.GetGroupHistory(ctx)
	next, appended := engine.RecordHistory(history, snap)
	if appended || next.MaxStreak != history.MaxStreak {
		if err := s.repo.SaveGroupHistory(ctx, next); err != nil {
			log.Printf("evaluateGroup: failed to save group history: %v", err)
		}
	}

	metrics.GroupStreak.Set(float64(snap.Streak))
	metrics.GroupMaxStreak.Set(float64(next.MaxStreak))

	return snap
}
