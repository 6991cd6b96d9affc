package workers

import (
	"context"
	"log"
	"time"

	"github.com/bobrandy13/LeetcodeBot/internal/types/streak"
)

// GroupEvaluator recomputes and persists today's group snapshot.
type GroupEvaluator interface {
	GetGroupStatus(ctx context.Context) streak.GroupSnapshot
}

// StartGroupRefresher re-evaluates the group on every tick until ctx is
// done, so the stored snapshot and gauges notice a day the group missed
// even when nobody runs a command.
func StartGroupRefresher(ctx context.Context, evaluator GroupEvaluator, interval time.Duration) {
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				refreshGroup(ctx, evaluator)
			}
		}
	}()
}

func refreshGroup(ctx context.Context, evaluator GroupEvaluator) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	snap := evaluator.GetGroupStatus(ctx)
	log.Printf("refreshGroup: %s streak %d, %d/%d members completed",
		snap.LastEvaluatedDate, snap.Streak, len(snap.ParticipatingUsers), len(snap.RequiredUsers))
}
