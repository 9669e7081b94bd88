//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"barber-booking/internal/domain/booking"
	"barber-booking/internal/infra"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/ident"
	"barber-booking/internal/usecase/commands"
	"barber-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	mu        sync.Mutex
	created   []booking.Record
	createErr error

	confirmRec booking.Record
	confirmErr error

	removed   bool
	removeErr error
	removeIDs []ident.ID
}

func (f *fakeBookingRepo) Create(_ context.Context, rec booking.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, rec)
	return nil
}

func (f *fakeBookingRepo) Remove(_ context.Context, id ident.ID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeIDs = append(f.removeIDs, id)
	return f.removed, f.removeErr
}

func (f *fakeBookingRepo) Confirm(_ context.Context, _ ident.ID) (booking.Record, error) {
	return f.confirmRec, f.confirmErr
}

type fakeNotifier struct {
	mu    sync.Mutex
	lines []string
}

func (f *fakeNotifier) Append(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = append(f.lines, message)
}

func (f *fakeNotifier) all() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.lines...)
}

// fakeMailer signals on done so tests can wait for the detached send.
type fakeMailer struct {
	err  error
	done chan booking.Record
}

func newFakeMailer(err error) *fakeMailer {
	return &fakeMailer{err: err, done: make(chan booking.Record, 1)}
}

func (f *fakeMailer) SendConfirmation(_ context.Context, rec booking.Record) error {
	defer func() { f.done <- rec }()
	return f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func repoErr(kind infra.RepositoryErrorKind) error {
	return infra.WrapRepoErr(discardLogger(), kind, "boom", errors.New("boom"))
}

func TestBookingCommands_Create(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("assigns id and pending status, then notifies", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		notifier := &fakeNotifier{}
		cmds := commands.NewBookingCommands(repo, notifier, newFakeMailer(nil), clock.NewMockClock(now), discardLogger())

		cand := builder.NewBookingBuilder().BuildCandidate()
		id, err := cmds.Create(context.Background(), cand)
		require.NoError(t, err)
		assert.NotEmpty(t, id.String())

		require.Len(t, repo.created, 1)
		rec := repo.created[0]
		assert.Equal(t, booking.StatusPending, rec.Status)
		assert.Equal(t, now, rec.CreatedAt)

		lines := notifier.all()
		require.Len(t, lines, 1)
		assert.Equal(t, "New booking received from "+cand.Name+" for "+cand.Service+" on "+cand.Date+" at "+cand.Time, lines[0])
	})

	t.Run("missing required fields fail before the store is touched", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		cmds := commands.NewBookingCommands(repo, &fakeNotifier{}, newFakeMailer(nil), clock.NewMockClock(now), discardLogger())

		cand := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Date = "  " }).BuildCandidate()
		_, err := cmds.Create(context.Background(), cand)

		assert.ErrorIs(t, err, commands.ErrMissingDetails)
		assert.Empty(t, repo.created)
	})

	t.Run("duplicate slot maps to ErrSlotTaken", func(t *testing.T) {
		repo := &fakeBookingRepo{createErr: repoErr(infra.KindDuplicateKey)}
		notifier := &fakeNotifier{}
		cmds := commands.NewBookingCommands(repo, notifier, newFakeMailer(nil), clock.NewMockClock(now), discardLogger())

		_, err := cmds.Create(context.Background(), builder.NewBookingBuilder().BuildCandidate())

		assert.ErrorIs(t, err, commands.ErrSlotTaken)
		assert.Empty(t, notifier.all())
	})

	t.Run("io failure maps to ErrStorageFailure", func(t *testing.T) {
		repo := &fakeBookingRepo{createErr: repoErr(infra.KindIOFailure)}
		cmds := commands.NewBookingCommands(repo, &fakeNotifier{}, newFakeMailer(nil), clock.NewMockClock(now), discardLogger())

		_, err := cmds.Create(context.Background(), builder.NewBookingBuilder().BuildCandidate())

		assert.ErrorIs(t, err, commands.ErrStorageFailure)
	})
}

func TestBookingCommands_Confirm(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("returns the confirmed record and sends the email", func(t *testing.T) {
		confirmed := builder.NewBookingBuilder().BuildRecord()
		confirmed.Confirm()

		repo := &fakeBookingRepo{confirmRec: confirmed}
		notifier := &fakeNotifier{}
		mail := newFakeMailer(nil)
		cmds := commands.NewBookingCommands(repo, notifier, mail, clock.NewMockClock(now), discardLogger())

		rec, err := cmds.Confirm(context.Background(), confirmed.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, rec.Status)

		select {
		case sent := <-mail.done:
			assert.Equal(t, confirmed.Email, sent.Email)
		case <-time.After(2 * time.Second):
			t.Fatal("confirmation email was never dispatched")
		}

		// The feed line lands after the send; poll briefly.
		deadline := time.Now().Add(2 * time.Second)
		for {
			lines := notifier.all()
			if len(lines) == 1 {
				assert.Equal(t, "Confirmation email sent to "+confirmed.Email, lines[0])
				break
			}
			if time.Now().After(deadline) {
				t.Fatal("email notification line never appeared")
			}
			time.Sleep(5 * time.Millisecond)
		}
	})

	t.Run("mailer failure is swallowed and leaves no feed line", func(t *testing.T) {
		confirmed := builder.NewBookingBuilder().BuildRecord()
		confirmed.Confirm()

		repo := &fakeBookingRepo{confirmRec: confirmed}
		notifier := &fakeNotifier{}
		mail := newFakeMailer(errors.New("smtp down"))
		cmds := commands.NewBookingCommands(repo, notifier, mail, clock.NewMockClock(now), discardLogger())

		_, err := cmds.Confirm(context.Background(), confirmed.ID)
		require.NoError(t, err)

		<-mail.done
		assert.Empty(t, notifier.all())
	})

	t.Run("unknown booking maps to ErrBookingNotFound", func(t *testing.T) {
		repo := &fakeBookingRepo{confirmErr: repoErr(infra.KindNotFound)}
		cmds := commands.NewBookingCommands(repo, &fakeNotifier{}, newFakeMailer(nil), clock.NewMockClock(now), discardLogger())

		_, err := cmds.Confirm(context.Background(), ident.ID("missing"))

		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestBookingCommands_Delete(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("removes by id", func(t *testing.T) {
		repo := &fakeBookingRepo{removed: true}
		cmds := commands.NewBookingCommands(repo, &fakeNotifier{}, newFakeMailer(nil), clock.NewMockClock(now), discardLogger())

		id := ident.New()
		require.NoError(t, cmds.Delete(context.Background(), id))
		assert.Equal(t, []ident.ID{id}, repo.removeIDs)
	})

	t.Run("unknown id still succeeds", func(t *testing.T) {
		repo := &fakeBookingRepo{removed: false}
		cmds := commands.NewBookingCommands(repo, &fakeNotifier{}, newFakeMailer(nil), clock.NewMockClock(now), discardLogger())

		assert.NoError(t, cmds.Delete(context.Background(), ident.ID("ghost")))
	})

	t.Run("storage failure surfaces as ErrStorageFailure", func(t *testing.T) {
		repo := &fakeBookingRepo{removeErr: repoErr(infra.KindIOFailure)}
		cmds := commands.NewBookingCommands(repo, &fakeNotifier{}, newFakeMailer(nil), clock.NewMockClock(now), discardLogger())

		assert.ErrorIs(t, cmds.Delete(context.Background(), ident.ID("x")), commands.ErrStorageFailure)
	})
}
