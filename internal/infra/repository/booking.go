package repository

import (
	"context"
	"log/slog"
	"time"

	"barber-booking/internal/domain/booking"
	"barber-booking/internal/infra"
	"barber-booking/internal/infra/jsonstore"
	"barber-booking/internal/pkg/ident"
)

// BookingRepository is the sole writer of the booking collection. All
// mutations funnel through the collection's mutex so the conflict check and
// the append are one atomic step.
type BookingRepository struct {
	col     *jsonstore.Collection[booking.Record]
	slogger *slog.Logger
}

func NewBookingRepository(col *jsonstore.Collection[booking.Record], slogger *slog.Logger) *BookingRepository {
	return &BookingRepository{
		col:     col,
		slogger: slogger,
	}
}

func (r *BookingRepository) List(_ context.Context) ([]booking.Record, error) {
	records, err := r.col.Snapshot()
	if err != nil {
		return nil, infra.WrapRepoErr(r.slogger, infra.KindIOFailure, "failed to load bookings", err)
	}
	return records, nil
}

// Create appends rec unless another record already occupies its slot.
func (r *BookingRepository) Create(_ context.Context, rec booking.Record) error {
	err := r.col.Mutate(func(records []booking.Record) ([]booking.Record, bool, error) {
		for _, existing := range records {
			if existing.Slot() == rec.Slot() {
				return nil, false, infra.WrapRepoErr(r.slogger, infra.KindDuplicateKey, "slot already booked", nil)
			}
		}
		return append(records, rec), true, nil
	})
	return err
}

// Remove deletes the record with the given id. Removing an unknown id is not
// an error; the bool result tells the caller whether anything matched.
func (r *BookingRepository) Remove(_ context.Context, id ident.ID) (bool, error) {
	removed := false
	err := r.col.Mutate(func(records []booking.Record) ([]booking.Record, bool, error) {
		kept := records[:0]
		for _, rec := range records {
			if rec.ID == id {
				removed = true
				continue
			}
			kept = append(kept, rec)
		}
		return kept, removed, nil
	})
	if err != nil {
		return false, infra.WrapRepoErr(r.slogger, infra.KindIOFailure, "failed to delete booking", err)
	}
	return removed, nil
}

// Confirm flips the record's status and returns the updated record.
func (r *BookingRepository) Confirm(_ context.Context, id ident.ID) (booking.Record, error) {
	var confirmed booking.Record
	err := r.col.Mutate(func(records []booking.Record) ([]booking.Record, bool, error) {
		for i := range records {
			if records[i].ID == id {
				records[i].Confirm()
				confirmed = records[i]
				return records, true, nil
			}
		}
		return nil, false, infra.WrapRepoErr(r.slogger, infra.KindNotFound, "booking not found", nil)
	})
	if err != nil {
		return booking.Record{}, err
	}
	return confirmed, nil
}

// PruneBefore drops records whose appointment day falls before cutoff and
// reports how many were removed. A day equal to the cutoff is retained, and
// records with unreadable dates are kept rather than guessed at.
func (r *BookingRepository) PruneBefore(_ context.Context, cutoff time.Time, loc *time.Location) (int, error) {
	pruned := 0
	err := r.col.Mutate(func(records []booking.Record) ([]booking.Record, bool, error) {
		kept := records[:0]
		for _, rec := range records {
			day, ok := rec.AppointmentDay(loc)
			if ok && day.Before(cutoff) {
				pruned++
				continue
			}
			if !ok {
				r.slogger.Warn("booking has unparseable date, keeping", "id", rec.ID.String(), "date", rec.Date)
			}
			kept = append(kept, rec)
		}
		return kept, pruned > 0, nil
	})
	if err != nil {
		return 0, infra.WrapRepoErr(r.slogger, infra.KindIOFailure, "failed to prune bookings", err)
	}
	return pruned, nil
}
