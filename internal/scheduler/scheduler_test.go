package scheduler

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttrss_sync/internal/domain"
)

type recordingSyncer struct {
	calls    atomic.Int32
	deadline time.Time
	hadDL    bool
	stats    *domain.SyncStats
	err      error
}

func (r *recordingSyncer) Sync(ctx context.Context) (*domain.SyncStats, error) {
	r.deadline, r.hadDL = ctx.Deadline()
	r.calls.Add(1)
	return r.stats, r.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestRunSync_AppliesConfiguredTimeout(t *testing.T) {
	syncer := &recordingSyncer{stats: &domain.SyncStats{Articles: 3}}
	sched := NewScheduler(syncer, time.Hour, 90*time.Second, testLogger())

	before := time.Now()
	sched.runSync(context.Background())

	require.Equal(t, int32(1), syncer.calls.Load())
	require.True(t, syncer.hadDL)
	remaining := syncer.deadline.Sub(before)
	assert.Greater(t, remaining, 80*time.Second)
	assert.LessOrEqual(t, remaining, 90*time.Second)
}

func TestRunSync_SurvivesSyncError(t *testing.T) {
	syncer := &recordingSyncer{err: context.DeadlineExceeded}
	sched := NewScheduler(syncer, time.Hour, time.Minute, testLogger())

	sched.runSync(context.Background())
	assert.Equal(t, int32(1), syncer.calls.Load())
}

func TestStart_RunsImmediatelyAndStopsOnCancel(t *testing.T) {
	syncer := &recordingSyncer{stats: &domain.SyncStats{}}
	sched := NewScheduler(syncer, time.Hour, time.Minute, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sched.Start(ctx) }()

	require.Eventually(t, func() bool { return syncer.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}
