//go:build unit

package jobs_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"barber-booking/internal/jobs"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

type fakePruner struct {
	cutoff time.Time
	pruned int
	err    error
	calls  int
}

func (p *fakePruner) PruneBefore(_ context.Context, cutoff time.Time, _ *time.Location) (int, error) {
	p.calls++
	p.cutoff = cutoff
	return p.pruned, p.err
}

type fakeNotifier struct {
	lines []string
}

func (n *fakeNotifier) Append(message string) {
	n.lines = append(n.lines, message)
}

func retentionCfg() config.RetentionConfig {
	return config.RetentionConfig{
		MaxAge:       24 * time.Hour,
		Interval:     time.Hour,
		StartupDelay: 5 * time.Second,
	}
}

func TestRunOnceUsesRetentionCutoff(t *testing.T) {
	now := time.Date(2024, 6, 2, 15, 0, 0, 0, time.UTC)
	pruner := &fakePruner{}
	sweeper := jobs.NewSweeper(pruner, &fakeNotifier{}, clock.NewMockClock(now), retentionCfg(), slog.Default())

	sweeper.RunOnce(context.Background())

	assert.Equal(t, now.Add(-24*time.Hour), pruner.cutoff)
}

func TestRunOnceNotifiesOnlyWhenSomethingWasRemoved(t *testing.T) {
	t.Run("removals produce a summary line", func(t *testing.T) {
		pruner := &fakePruner{pruned: 3}
		notifier := &fakeNotifier{}
		sweeper := jobs.NewSweeper(pruner, notifier, clock.NewRealClock(), retentionCfg(), slog.Default())

		sweeper.RunOnce(context.Background())

		assert.Equal(t, []string{"Cleaned up 3 expired bookings."}, notifier.lines)
	})

	t.Run("no removals, no noise", func(t *testing.T) {
		notifier := &fakeNotifier{}
		sweeper := jobs.NewSweeper(&fakePruner{}, notifier, clock.NewRealClock(), retentionCfg(), slog.Default())

		sweeper.RunOnce(context.Background())

		assert.Empty(t, notifier.lines)
	})
}

func TestRunOnceSwallowsPrunerFailure(t *testing.T) {
	pruner := &fakePruner{err: assert.AnError}
	notifier := &fakeNotifier{}
	sweeper := jobs.NewSweeper(pruner, notifier, clock.NewRealClock(), retentionCfg(), slog.Default())

	// must not panic or notify; the next scheduled run self-heals
	sweeper.RunOnce(context.Background())
	assert.Empty(t, notifier.lines)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	cfg := retentionCfg()
	cfg.StartupDelay = time.Millisecond
	cfg.Interval = time.Millisecond
	pruner := &fakePruner{}
	sweeper := jobs.NewSweeper(pruner, &fakeNotifier{}, clock.NewRealClock(), cfg, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
	assert.GreaterOrEqual(t, pruner.calls, 1)
}
