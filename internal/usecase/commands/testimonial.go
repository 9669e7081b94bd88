package commands

import (
	"context"

	"barber-booking/internal/domain/catalog"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/pkg/ident"
)

var ErrMissingTestimonialFields = errs.New("testimonial name and story are required")

type TestimonialRepository interface {
	Prepend(ctx context.Context, t catalog.Testimonial) error
	Remove(ctx context.Context, id ident.ID) error
}

type TestimonialCommands interface {
	Create(ctx context.Context, name, role, story string) (catalog.Testimonial, error)
	Delete(ctx context.Context, id ident.ID) error
}

type testimonialCommandsImpl struct {
	repo  TestimonialRepository
	clock clock.Clock
}

func NewTestimonialCommands(repo TestimonialRepository, clk clock.Clock) TestimonialCommands {
	return &testimonialCommandsImpl{
		repo:  repo,
		clock: clk,
	}
}

func (c *testimonialCommandsImpl) Create(ctx context.Context, name, role, story string) (catalog.Testimonial, error) {
	if name == "" || story == "" {
		return catalog.Testimonial{}, ErrMissingTestimonialFields
	}
	if role == "" {
		role = catalog.DefaultTestimonialRole
	}

	t := catalog.Testimonial{
		ID:    ident.New(),
		Name:  name,
		Role:  role,
		Story: story,
		Date:  c.clock.Now(),
	}
	if err := c.repo.Prepend(ctx, t); err != nil {
		return catalog.Testimonial{}, errs.Mark(err, ErrStorageFailure)
	}
	return t, nil
}

func (c *testimonialCommandsImpl) Delete(ctx context.Context, id ident.ID) error {
	if err := c.repo.Remove(ctx, id); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}
