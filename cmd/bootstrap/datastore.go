package bootstrap

import (
	"log/slog"
	"path/filepath"

	"barber-booking/internal/domain/booking"
	"barber-booking/internal/domain/catalog"
	"barber-booking/internal/infra/jsonstore"
	"barber-booking/internal/infra/repository"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// DatastoreModule opens one JSON collection per record kind under the data
// directory, plus the append-only notification feed.
var DatastoreModule = fx.Module("datastore",
	fx.Provide(
		NewBookingCollection,
		NewServiceCollection,
		NewGalleryCollection,
		NewTestimonialCollection,
		NewNotificationLog,
	),
)

func NewBookingCollection(cfg config.Config) (*jsonstore.Collection[booking.Record], error) {
	return jsonstore.NewCollection[booking.Record](filepath.Join(cfg.Storage.DataDir, "bookings.json"))
}

func NewServiceCollection(cfg config.Config) (*jsonstore.Collection[catalog.Service], error) {
	return jsonstore.NewCollection[catalog.Service](filepath.Join(cfg.Storage.DataDir, "services.json"))
}

func NewGalleryCollection(cfg config.Config) (*jsonstore.Collection[catalog.GalleryItem], error) {
	return jsonstore.NewCollection[catalog.GalleryItem](filepath.Join(cfg.Storage.DataDir, "gallery.json"))
}

func NewTestimonialCollection(cfg config.Config) (*jsonstore.Collection[catalog.Testimonial], error) {
	return jsonstore.NewCollection[catalog.Testimonial](filepath.Join(cfg.Storage.DataDir, "testimonials.json"))
}

func NewNotificationLog(cfg config.Config, clk clock.Clock, logger *slog.Logger) *repository.NotificationLog {
	return repository.NewNotificationLog(filepath.Join(cfg.Storage.DataDir, "notifications.log"), clk, logger)
}
