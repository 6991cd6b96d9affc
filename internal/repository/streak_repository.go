package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/bobrandy13/LeetcodeBot/internal/kv"
	"github.com/bobrandy13/LeetcodeBot/internal/metrics"
	"github.com/bobrandy13/LeetcodeBot/internal/types/streak"
)

// Reserved keys. Everything else in the namespace is a Discord user id.
const (
	UserListKey     = "USER_LIST"
	GroupStreakKey  = "GROUP_STREAK"
	GroupHistoryKey = "GROUP_HISTORY"
)

// IsReservedKey reports whether key is one of the bot's own documents.
func IsReservedKey(key string) bool {
	return key == UserListKey || key == GroupStreakKey || key == GroupHistoryKey
}

// StreakRepository maps the streak documents onto a kv.Store. Reads are
// forgiving: a missing or unreadable document comes back as its empty
// default. Writes report errors to the caller.
type StreakRepository struct {
	store kv.Store
}

func NewStreakRepository(store kv.Store) *StreakRepository {
	return &StreakRepository{store: store}
}

func (r *StreakRepository) Store() kv.Store {
	return r.store
}

// GetUser never fails; unknown users get an empty record.
func (r *StreakRepository) GetUser(ctx context.Context, userID string) streak.UserRecord {
	rec := streak.NewUserRecord()
	if !r.load(ctx, userID, &rec) {
		return streak.NewUserRecord()
	}
	if rec.CompletedQuestions == nil {
		rec.CompletedQuestions = []int64{}
	}
	return rec
}

// LookupUser is GetUser that also reports whether a record was stored.
func (r *StreakRepository) LookupUser(ctx context.Context, userID string) (streak.UserRecord, bool) {
	rec := streak.NewUserRecord()
	if !r.load(ctx, userID, &rec) {
		return streak.NewUserRecord(), false
	}
	if rec.CompletedQuestions == nil {
		rec.CompletedQuestions = []int64{}
	}
	return rec, true
}

func (r *StreakRepository) SaveUser(ctx context.Context, userID string, rec streak.UserRecord) error {
	return r.save(ctx, userID, rec)
}

// ListUserIDs returns the user index in insertion order.
func (r *StreakRepository) ListUserIDs(ctx context.Context) []string {
	ids := []string{}
	if !r.load(ctx, UserListKey, &ids) {
		return []string{}
	}
	return ids
}

// AddUserToList indexes userID; already indexed ids are left alone.
func (r *StreakRepository) AddUserToList(ctx context.Context, userID string) error {
	ids := r.ListUserIDs(ctx)
	for _, id := range ids {
		if id == userID {
			return nil
		}
	}
	return r.save(ctx, UserListKey, append(ids, userID))
}

func (r *StreakRepository) GetGroupSnapshot(ctx context.Context) (streak.GroupSnapshot, bool) {
	var snap streak.GroupSnapshot
	if !r.load(ctx, GroupStreakKey, &snap) {
		return streak.GroupSnapshot{}, false
	}
	return snap, true
}

func (r *StreakRepository) SaveGroupSnapshot(ctx context.Context, snap streak.GroupSnapshot) error {
	return r.save(ctx, GroupStreakKey, snap)
}

func (r *StreakRepository) GetGroupHistory(ctx context.Context) streak.GroupHistory {
	h := streak.NewGroupHistory()
	if !r.load(ctx, GroupHistoryKey, &h) {
		return streak.NewGroupHistory()
	}
	if h.StreakHistory == nil {
		h.StreakHistory = []streak.GroupHistoryEntry{}
	}
	return h
}

func (r *StreakRepository) SaveGroupHistory(ctx context.Context, h streak.GroupHistory) error {
	return r.save(ctx, GroupHistoryKey, h)
}

func (r *StreakRepository) load(ctx context.Context, key string, dst interface{}) bool {
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		log.Printf("StreakRepository.load: error reading %s: %v", key, err)
		metrics.StoreFailuresTotal.WithLabelValues("get").Inc()
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Printf("StreakRepository.load: corrupt document %s: %v", key, err)
		metrics.StoreFailuresTotal.WithLabelValues("decode").Inc()
		return false
	}
	return true
}

func (r *StreakRepository) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.store.Put(ctx, key, string(data)); err != nil {
		metrics.StoreFailuresTotal.WithLabelValues("put").Inc()
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
