package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bobrandy13/LeetcodeBot/internal/types/streak"
)

type countingEvaluator struct {
	calls atomic.Int32
}

func (c *countingEvaluator) GetGroupStatus(ctx context.Context) streak.GroupSnapshot {
	c.calls.Add(1)
	return streak.GroupSnapshot{LastEvaluatedDate: "2025-12-14", RequiredUsers: []string{"bobrandy"}}
}

func TestStartGroupRefresher(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ev := &countingEvaluator{}
	StartGroupRefresher(ctx, ev, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return ev.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestStartGroupRefresher_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	ev := &countingEvaluator{}
	StartGroupRefresher(ctx, ev, 10*time.Millisecond)
	cancel()

	time.Sleep(50 * time.Millisecond)
	n := ev.calls.Load()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, n, ev.calls.Load())
}
