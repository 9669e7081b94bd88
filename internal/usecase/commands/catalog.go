package commands

import (
	"context"

	"barber-booking/internal/domain/catalog"
	"barber-booking/internal/infra"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/pkg/ident"

	"github.com/jinzhu/copier"
)

var (
	ErrMissingServiceFields = errs.New("service name and price are required")
	ErrMissingGalleryURL    = errs.New("gallery image url is required")
	ErrServiceNotFound      = errs.New("service not found")
	ErrGalleryItemNotFound  = errs.New("gallery item not found")
)

type ServiceRepository interface {
	Create(ctx context.Context, svc catalog.Service) error
	Update(ctx context.Context, id ident.ID, fn func(*catalog.Service) error) (catalog.Service, error)
	Remove(ctx context.Context, id ident.ID) error
}

type GalleryRepository interface {
	Create(ctx context.Context, item catalog.GalleryItem) error
	Update(ctx context.Context, id ident.ID, fn func(*catalog.GalleryItem) error) (catalog.GalleryItem, error)
	Remove(ctx context.Context, id ident.ID) error
}

// ServicePatch carries the fields a PUT may change; empty fields keep their
// stored value, mirroring how the admin UI merges edits.
type ServicePatch struct {
	Name  string
	Price string
	Desc  string
}

type GalleryPatch struct {
	URL string
}

type CatalogCommands interface {
	CreateService(ctx context.Context, name, price, desc string) (catalog.Service, error)
	UpdateService(ctx context.Context, id ident.ID, patch ServicePatch) (catalog.Service, error)
	DeleteService(ctx context.Context, id ident.ID) error
	CreateGalleryItem(ctx context.Context, url string) (catalog.GalleryItem, error)
	UpdateGalleryItem(ctx context.Context, id ident.ID, patch GalleryPatch) (catalog.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id ident.ID) error
}

type catalogCommandsImpl struct {
	services ServiceRepository
	gallery  GalleryRepository
}

func NewCatalogCommands(services ServiceRepository, gallery GalleryRepository) CatalogCommands {
	return &catalogCommandsImpl{
		services: services,
		gallery:  gallery,
	}
}

func (c *catalogCommandsImpl) CreateService(ctx context.Context, name, price, desc string) (catalog.Service, error) {
	if name == "" || price == "" {
		return catalog.Service{}, ErrMissingServiceFields
	}

	svc := catalog.Service{
		ID:    ident.New(),
		Name:  name,
		Price: price,
		Desc:  desc,
	}
	if err := c.services.Create(ctx, svc); err != nil {
		return catalog.Service{}, errs.Mark(err, ErrStorageFailure)
	}
	return svc, nil
}

func (c *catalogCommandsImpl) UpdateService(ctx context.Context, id ident.ID, patch ServicePatch) (catalog.Service, error) {
	updated, err := c.services.Update(ctx, id, func(svc *catalog.Service) error {
		return copier.CopyWithOption(svc, &patch, copier.Option{IgnoreEmpty: true})
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return catalog.Service{}, errs.Mark(err, ErrServiceNotFound)
		}
		return catalog.Service{}, errs.Mark(err, ErrStorageFailure)
	}
	return updated, nil
}

func (c *catalogCommandsImpl) DeleteService(ctx context.Context, id ident.ID) error {
	if err := c.services.Remove(ctx, id); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (c *catalogCommandsImpl) CreateGalleryItem(ctx context.Context, url string) (catalog.GalleryItem, error) {
	if url == "" {
		return catalog.GalleryItem{}, ErrMissingGalleryURL
	}

	item := catalog.GalleryItem{
		ID:  ident.New(),
		URL: url,
	}
	if err := c.gallery.Create(ctx, item); err != nil {
		return catalog.GalleryItem{}, errs.Mark(err, ErrStorageFailure)
	}
	return item, nil
}

func (c *catalogCommandsImpl) UpdateGalleryItem(ctx context.Context, id ident.ID, patch GalleryPatch) (catalog.GalleryItem, error) {
	updated, err := c.gallery.Update(ctx, id, func(item *catalog.GalleryItem) error {
		return copier.CopyWithOption(item, &patch, copier.Option{IgnoreEmpty: true})
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return catalog.GalleryItem{}, errs.Mark(err, ErrGalleryItemNotFound)
		}
		return catalog.GalleryItem{}, errs.Mark(err, ErrStorageFailure)
	}
	return updated, nil
}

func (c *catalogCommandsImpl) DeleteGalleryItem(ctx context.Context, id ident.ID) error {
	if err := c.gallery.Remove(ctx, id); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}
