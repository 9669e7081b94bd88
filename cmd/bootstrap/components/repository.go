package components

import (
	repo_impl "barber-booking/internal/infra/repository"
	"barber-booking/internal/jobs"
	"barber-booking/internal/usecase/commands"
	"barber-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Booking: write side, read side, and the retention sweep all share
		// the one collection-backed implementation.
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(jobs.BookingPruner)),
		),
		// Services
		fx.Annotate(
			repo_impl.NewServiceRepository,
			fx.As(new(commands.ServiceRepository)),
			fx.As(new(queries.ServiceReadStore)),
		),
		// Gallery
		fx.Annotate(
			repo_impl.NewGalleryRepository,
			fx.As(new(commands.GalleryRepository)),
			fx.As(new(queries.GalleryReadStore)),
		),
		// Testimonials
		fx.Annotate(
			repo_impl.NewTestimonialRepository,
			fx.As(new(commands.TestimonialRepository)),
			fx.As(new(queries.TestimonialReadStore)),
		),
		// Notification feed
		fx.Annotate(
			func(l *repo_impl.NotificationLog) *repo_impl.NotificationLog { return l },
			fx.As(new(commands.Notifier)),
			fx.As(new(jobs.Notifier)),
			fx.As(new(queries.NotificationReadStore)),
		),
	),
)
