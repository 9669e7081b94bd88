package commands

import (
	"context"
	"fmt"
	"log/slog"

	"barber-booking/internal/domain/booking"
	"barber-booking/internal/infra"
	"barber-booking/internal/mailer"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/pkg/ident"
)

var (
	ErrMissingDetails  = booking.ErrMissingFields
	ErrSlotTaken       = errs.New("time slot already booked")
	ErrBookingNotFound = errs.New("booking not found")
	ErrStorageFailure  = errs.New("storage operation failed")
)

type BookingRepository interface {
	Create(ctx context.Context, rec booking.Record) error
	Remove(ctx context.Context, id ident.ID) (bool, error)
	Confirm(ctx context.Context, id ident.ID) (booking.Record, error)
}

// Notifier appends a human-readable line to the admin notification feed.
// Implementations never fail the calling operation.
type Notifier interface {
	Append(message string)
}

type BookingCommands interface {
	Create(ctx context.Context, cand booking.Candidate) (ident.ID, error)
	Confirm(ctx context.Context, id ident.ID) (booking.Record, error)
	Delete(ctx context.Context, id ident.ID) error
}

type bookingCommandsImpl struct {
	repo     BookingRepository
	notifier Notifier
	mail     mailer.Mailer
	clock    clock.Clock
	slogger  *slog.Logger
}

func NewBookingCommands(
	repo BookingRepository,
	notifier Notifier,
	mail mailer.Mailer,
	clk clock.Clock,
	slogger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:     repo,
		notifier: notifier,
		mail:     mail,
		clock:    clk,
		slogger:  slogger,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, cand booking.Candidate) (ident.ID, error) {
	if err := cand.Validate(); err != nil {
		return "", err
	}

	rec := booking.NewRecord(cand, ident.New(), c.clock.Now())
	if err := c.repo.Create(ctx, rec); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return "", errs.Mark(err, ErrSlotTaken)
		}
		return "", errs.Mark(err, ErrStorageFailure)
	}

	c.notifier.Append(fmt.Sprintf(
		"New booking received from %s for %s on %s at %s",
		rec.Name, rec.Service, rec.Date, rec.Time,
	))
	return rec.ID, nil
}

func (c *bookingCommandsImpl) Confirm(ctx context.Context, id ident.ID) (booking.Record, error) {
	rec, err := c.repo.Confirm(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.Record{}, errs.Mark(err, ErrBookingNotFound)
		}
		return booking.Record{}, errs.Mark(err, ErrStorageFailure)
	}

	// Email dispatch is detached on purpose: its outcome must never block or
	// fail the confirmation.
	go c.sendConfirmationEmail(rec)

	return rec, nil
}

func (c *bookingCommandsImpl) sendConfirmationEmail(rec booking.Record) {
	if err := c.mail.SendConfirmation(context.Background(), rec); err != nil {
		c.slogger.Error("confirmation email failed", "booking_id", rec.ID.String(), "email", rec.Email, "error", err)
		return
	}
	c.notifier.Append("Confirmation email sent to " + rec.Email)
}

func (c *bookingCommandsImpl) Delete(ctx context.Context, id ident.ID) error {
	// Removing an id that no longer exists still succeeds; delete is
	// idempotent by choice, not accident.
	removed, err := c.repo.Remove(ctx, id)
	if err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	if !removed {
		c.slogger.Info("delete requested for unknown booking", "id", id.String())
	}
	return nil
}
