package repository

import (
	"context"
	"log/slog"

	"barber-booking/internal/domain/catalog"
	"barber-booking/internal/infra"
	"barber-booking/internal/infra/jsonstore"
	"barber-booking/internal/pkg/ident"
)

type TestimonialRepository struct {
	col     *jsonstore.Collection[catalog.Testimonial]
	slogger *slog.Logger
}

func NewTestimonialRepository(col *jsonstore.Collection[catalog.Testimonial], slogger *slog.Logger) *TestimonialRepository {
	return &TestimonialRepository{col: col, slogger: slogger}
}

func (r *TestimonialRepository) List(_ context.Context) ([]catalog.Testimonial, error) {
	items, err := r.col.Snapshot()
	if err != nil {
		return nil, infra.WrapRepoErr(r.slogger, infra.KindIOFailure, "failed to load testimonials", err)
	}
	return items, nil
}

// Prepend inserts at the head so the newest story renders first on the site.
func (r *TestimonialRepository) Prepend(_ context.Context, t catalog.Testimonial) error {
	err := r.col.Mutate(func(items []catalog.Testimonial) ([]catalog.Testimonial, bool, error) {
		return append([]catalog.Testimonial{t}, items...), true, nil
	})
	if err != nil {
		return infra.WrapRepoErr(r.slogger, infra.KindIOFailure, "failed to save testimonial", err)
	}
	return nil
}

func (r *TestimonialRepository) Remove(_ context.Context, id ident.ID) error {
	err := r.col.Mutate(func(items []catalog.Testimonial) ([]catalog.Testimonial, bool, error) {
		kept := items[:0]
		changed := false
		for _, it := range items {
			if it.ID == id {
				changed = true
				continue
			}
			kept = append(kept, it)
		}
		return kept, changed, nil
	})
	if err != nil {
		return infra.WrapRepoErr(r.slogger, infra.KindIOFailure, "failed to delete testimonial", err)
	}
	return nil
}
