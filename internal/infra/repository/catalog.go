package repository

import (
	"context"
	"log/slog"

	"barber-booking/internal/domain/catalog"
	"barber-booking/internal/infra"
	"barber-booking/internal/infra/jsonstore"
	"barber-booking/internal/pkg/ident"
)

type ServiceRepository struct {
	col     *jsonstore.Collection[catalog.Service]
	slogger *slog.Logger
}

func NewServiceRepository(col *jsonstore.Collection[catalog.Service], slogger *slog.Logger) *ServiceRepository {
	return &ServiceRepository{col: col, slogger: slogger}
}

func (r *ServiceRepository) List(_ context.Context) ([]catalog.Service, error) {
	items, err := r.col.Snapshot()
	if err != nil {
		return nil, infra.WrapRepoErr(r.slogger, infra.KindIOFailure, "failed to load services", err)
	}
	return items, nil
}

func (r *ServiceRepository) Create(_ context.Context, svc catalog.Service) error {
	err := r.col.Mutate(func(items []catalog.Service) ([]catalog.Service, bool, error) {
		return append(items, svc), true, nil
	})
	if err != nil {
		return infra.WrapRepoErr(r.slogger, infra.KindIOFailure, "failed to save service", err)
	}
	return nil
}

// Update applies fn to the matching item in place and persists the result.
func (r *ServiceRepository) Update(_ context.Context, id ident.ID, fn func(*catalog.Service) error) (catalog.Service, error) {
	var updated catalog.Service
	err := r.col.Mutate(func(items []catalog.Service) ([]catalog.Service, bool, error) {
		for i := range items {
			if items[i].ID == id {
				if err := fn(&items[i]); err != nil {
					return nil, false, err
				}
				updated = items[i]
				return items, true, nil
			}
		}
		return nil, false, infra.WrapRepoErr(r.slogger, infra.KindNotFound, "service not found", nil)
	})
	if err != nil {
		return catalog.Service{}, err
	}
	return updated, nil
}

func (r *ServiceRepository) Remove(_ context.Context, id ident.ID) error {
	err := r.col.Mutate(func(items []catalog.Service) ([]catalog.Service, bool, error) {
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
		return infra.WrapRepoErr(r.slogger, infra.KindIOFailure, "failed to delete service", err)
	}
	return nil
}

type GalleryRepository struct {
	col     *jsonstore.Collection[catalog.GalleryItem]
	slogger *slog.Logger
}

func NewGalleryRepository(col *jsonstore.Collection[catalog.GalleryItem], slogger *slog.Logger) *GalleryRepository {
	return &GalleryRepository{col: col, slogger: slogger}
}

func (r *GalleryRepository) List(_ context.Context) ([]catalog.GalleryItem, error) {
	items, err := r.col.Snapshot()
	if err != nil {
		return nil, infra.WrapRepoErr(r.slogger, infra.KindIOFailure, "failed to load gallery", err)
	}
	return items, nil
}

func (r *GalleryRepository) Create(_ context.Context, item catalog.GalleryItem) error {
	err := r.col.Mutate(func(items []catalog.GalleryItem) ([]catalog.GalleryItem, bool, error) {
		return append(items, item), true, nil
	})
	if err != nil {
		return infra.WrapRepoErr(r.slogger, infra.KindIOFailure, "failed to save gallery item", err)
	}
	return nil
}

func (r *GalleryRepository) Update(_ context.Context, id ident.ID, fn func(*catalog.GalleryItem) error) (catalog.GalleryItem, error) {
	var updated catalog.GalleryItem
	err := r.col.Mutate(func(items []catalog.GalleryItem) ([]catalog.GalleryItem, bool, error) {
		for i := range items {
			if items[i].ID == id {
				if err := fn(&items[i]); err != nil {
					return nil, false, err
				}
				updated = items[i]
				return items, true, nil
			}
		}
		return nil, false, infra.WrapRepoErr(r.slogger, infra.KindNotFound, "gallery item not found", nil)
	})
	if err != nil {
		return catalog.GalleryItem{}, err
	}
	return updated, nil
}

func (r *GalleryRepository) Remove(_ context.Context, id ident.ID) error {
	err := r.col.Mutate(func(items []catalog.GalleryItem) ([]catalog.GalleryItem, bool, error) {
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
		return infra.WrapRepoErr(r.slogger, infra.KindIOFailure, "failed to delete gallery item", err)
	}
	return nil
}
