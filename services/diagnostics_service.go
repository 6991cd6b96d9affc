package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bobrandy13/LeetcodeBot/internal/kv"
	"github.com/bobrandy13/LeetcodeBot/internal/repository"
	"github.com/bobrandy13/LeetcodeBot/internal/types/streak"
)

const probeKey = "test_key"

// DiagnosticsService backs the health and KV debug routes.
type DiagnosticsService struct {
	store   kv.Store
	repo    *repository.StreakRepository
	backend string
}

func NewDiagnosticsService(store kv.Store, backend string) *DiagnosticsService {
	return &DiagnosticsService{
		store:   store,
		repo:    repository.NewStreakRepository(store),
		backend: backend,
	}
}

func (s *DiagnosticsService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// KVReport writes and reads back a probe key, then summarises the key space.
// Store failures are reported in the result rather than returned.
func (s *DiagnosticsService) KVReport(ctx context.Context) *streak.KVReport {
	report := &streak.KVReport{
		Backend:   s.backend,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		AllKeys:   []string{},
	}

	probe := fmt.Sprintf("probe-%d", time.Now().UnixNano())
	if err := s.store.Put(ctx, probeKey, probe); err != nil {
		report.WriteTest = "failed"
		report.Error = err.Error()
		return report
	}
	report.WriteTest = "success"

	if v, found, err := s.store.Get(ctx, probeKey); err != nil || !found || v != probe {
		report.ReadTest = "failed"
	} else {
		report.ReadTest = "success"
	}

	ids := s.repo.ListUserIDs(ctx)
	report.UserListExists = len(ids) > 0
	report.UserCount = len(ids)

	keys, err := s.store.List(ctx)
	if err != nil {
		report.Error = err.Error()
	} else {
		report.AllKeys = keys
		report.TotalKeys = len(keys)
	}

	if len(ids) > 0 {
		if rec, found := s.repo.LookupUser(ctx, ids[0]); found {
			report.SampleUser = &streak.UserStanding{UserID: ids[0], UserRecord: rec}
		}
	}

	if snap, found := s.repo.GetGroupSnapshot(ctx); found {
		report.GroupData = &snap
	}

	return report
}
