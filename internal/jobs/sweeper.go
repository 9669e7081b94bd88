// Package jobs holds the background tasks the server schedules for itself.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/config"
)

type BookingPruner interface {
	PruneBefore(ctx context.Context, cutoff time.Time, loc *time.Location) (int, error)
}

type Notifier interface {
	Append(message string)
}

// Sweeper prunes stale bookings on a fixed interval, plus once shortly after
// startup. A failed run is logged and abandoned; the next tick self-heals.
type Sweeper struct {
	pruner   BookingPruner
	notifier Notifier
	clock    clock.Clock
	cfg      config.RetentionConfig
	loc      *time.Location
	slogger  *slog.Logger
}

func NewSweeper(
	pruner BookingPruner,
	notifier Notifier,
	clk clock.Clock,
	cfg config.RetentionConfig,
	slogger *slog.Logger,
) *Sweeper {
	return &Sweeper{
		pruner:   pruner,
		notifier: notifier,
		clock:    clk,
		cfg:      cfg,
		loc:      time.Local,
		slogger:  slogger,
	}
}

// Run blocks until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	startup := time.NewTimer(s.cfg.StartupDelay)
	defer startup.Stop()

	select {
	case <-ctx.Done():
		return
	case <-startup.C:
		s.RunOnce(ctx)
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep. Bookings dated before now minus MaxAge are
// removed; the comparison is date-only, so a same-day past appointment stays
// until the day itself has aged out.
func (s *Sweeper) RunOnce(ctx context.Context) {
	cutoff := s.clock.Now().Add(-s.cfg.MaxAge)

	pruned, err := s.pruner.PruneBefore(ctx, cutoff, s.loc)
	if err != nil {
		s.slogger.Error("booking cleanup failed, will retry on next run", "error", err)
		return
	}
	if pruned == 0 {
		return
	}

	s.notifier.Append(fmt.Sprintf("Cleaned up %d expired bookings.", pruned))
	s.slogger.Info("expired bookings removed", "count", pruned)
}
