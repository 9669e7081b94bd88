package queries

import (
	"context"

	"barber-booking/internal/domain/catalog"
)

type ServiceReadStore interface {
	List(ctx context.Context) ([]catalog.Service, error)
}

type GalleryReadStore interface {
	List(ctx context.Context) ([]catalog.GalleryItem, error)
}

type TestimonialReadStore interface {
	List(ctx context.Context) ([]catalog.Testimonial, error)
}

type CatalogQueries interface {
	ListServices(ctx context.Context) ([]catalog.Service, error)
	ListGallery(ctx context.Context) ([]catalog.GalleryItem, error)
	ListTestimonials(ctx context.Context) ([]catalog.Testimonial, error)
}

type catalogQueriesImpl struct {
	services     ServiceReadStore
	gallery      GalleryReadStore
	testimonials TestimonialReadStore
}

func NewCatalogQueries(services ServiceReadStore, gallery GalleryReadStore, testimonials TestimonialReadStore) CatalogQueries {
	return &catalogQueriesImpl{
		services:     services,
		gallery:      gallery,
		testimonials: testimonials,
	}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]catalog.Service, error) {
	return q.services.List(ctx)
}

func (q *catalogQueriesImpl) ListGallery(ctx context.Context) ([]catalog.GalleryItem, error) {
	return q.gallery.List(ctx)
}

func (q *catalogQueriesImpl) ListTestimonials(ctx context.Context) ([]catalog.Testimonial, error) {
	return q.testimonials.List(ctx)
}
