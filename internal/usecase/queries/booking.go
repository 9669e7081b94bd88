package queries

import (
	"context"

	"barber-booking/internal/domain/booking"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/config"
)

type BookingReadStore interface {
	List(ctx context.Context) ([]booking.Record, error)
}

type BookingQueries interface {
	List(ctx context.Context) ([]booking.Record, error)
	StatsByDate(ctx context.Context) (map[string]int, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
	stats config.StatsConfig
}

func NewBookingQueries(store BookingReadStore, clk clock.Clock, stats config.StatsConfig) BookingQueries {
	return &bookingQueriesImpl{
		store: store,
		clock: clk,
		stats: stats,
	}
}

func (q *bookingQueriesImpl) List(ctx context.Context) ([]booking.Record, error) {
	return q.store.List(ctx)
}

// StatsByDate counts bookings per calendar day across the dashboard window
// (today-DaysBack .. today+DaysAhead), zero-filling days with no bookings so
// the chart always renders the full range.
func (q *bookingQueriesImpl) StatsByDate(ctx context.Context) (map[string]int, error) {
	records, err := q.store.List(ctx)
	if err != nil {
		return nil, err
	}

	today := q.clock.Now()
	stats := make(map[string]int, q.stats.DaysBack+q.stats.DaysAhead+1)
	for i := -q.stats.DaysBack; i <= q.stats.DaysAhead; i++ {
		stats[today.AddDate(0, 0, i).Format(booking.DateLayout)] = 0
	}

	for _, rec := range records {
		if _, inWindow := stats[rec.Date]; inWindow {
			stats[rec.Date]++
		}
	}
	return stats, nil
}
