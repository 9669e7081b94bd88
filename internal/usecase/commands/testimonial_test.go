//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"barber-booking/internal/domain/catalog"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/ident"
	"barber-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTestimonialRepo struct {
	prepended []catalog.Testimonial
	removedID ident.ID
}

func (f *fakeTestimonialRepo) Prepend(_ context.Context, t catalog.Testimonial) error {
	f.prepended = append([]catalog.Testimonial{t}, f.prepended...)
	return nil
}

func (f *fakeTestimonialRepo) Remove(_ context.Context, id ident.ID) error {
	f.removedID = id
	return nil
}

func TestTestimonialCommands_Create(t *testing.T) {
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)

	t.Run("stamps date and prepends", func(t *testing.T) {
		repo := &fakeTestimonialRepo{}
		cmds := commands.NewTestimonialCommands(repo, clock.NewMockClock(now))

		entry, err := cmds.Create(context.Background(), "Marcus", "Regular", "Sharp lineup every time.")
		require.NoError(t, err)
		assert.Equal(t, now, entry.Date)
		require.Len(t, repo.prepended, 1)
		assert.Equal(t, entry, repo.prepended[0])
	})

	t.Run("empty role falls back to the default", func(t *testing.T) {
		cmds := commands.NewTestimonialCommands(&fakeTestimonialRepo{}, clock.NewMockClock(now))

		entry, err := cmds.Create(context.Background(), "Marcus", "", "Sharp lineup every time.")
		require.NoError(t, err)
		assert.Equal(t, catalog.DefaultTestimonialRole, entry.Role)
	})

	t.Run("name and story are both required", func(t *testing.T) {
		cmds := commands.NewTestimonialCommands(&fakeTestimonialRepo{}, clock.NewMockClock(now))

		_, err := cmds.Create(context.Background(), "", "Client", "story")
		assert.ErrorIs(t, err, commands.ErrMissingTestimonialFields)

		_, err = cmds.Create(context.Background(), "Marcus", "Client", "")
		assert.ErrorIs(t, err, commands.ErrMissingTestimonialFields)
	})
}

func TestTestimonialCommands_Delete(t *testing.T) {
	repo := &fakeTestimonialRepo{}
	cmds := commands.NewTestimonialCommands(repo, clock.NewMockClock(time.Now()))

	id := ident.New()
	require.NoError(t, cmds.Delete(context.Background(), id))
	assert.Equal(t, id, repo.removedID)
}
