package components

import (
	"context"

	"barber-booking/internal/jobs"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		jobs.NewSweeper,
	),
	fx.Invoke(startSweeper),
)

// startSweeper runs the retention sweep for the lifetime of the app; fx shuts
// it down by cancelling the context it was started with.
func startSweeper(lc fx.Lifecycle, sweeper *jobs.Sweeper) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweeper.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
