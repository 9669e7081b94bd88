package response

import (
	"time"

	"barber-booking/internal/domain/catalog"
	"barber-booking/internal/pkg/ident"

	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID    ident.ID `json:"id"`
	Name  string   `json:"name"`
	Price string   `json:"price"`
	Desc  string   `json:"desc"`
}

type GalleryItemResponse struct {
	ID  ident.ID `json:"id"`
	URL string   `json:"url"`
}

type TestimonialResponse struct {
	ID    ident.ID  `json:"id"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
	Story string    `json:"story"`
	Date  time.Time `json:"date"`
}

func FromService(svc catalog.Service) ServiceResponse {
	var resp ServiceResponse
	_ = copier.Copy(&resp, &svc)
	return resp
}

func FromServices(items []catalog.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(items))
	for i, it := range items {
		out[i] = FromService(it)
	}
	return out
}

func FromGalleryItem(item catalog.GalleryItem) GalleryItemResponse {
	var resp GalleryItemResponse
	_ = copier.Copy(&resp, &item)
	return resp
}

func FromGalleryItems(items []catalog.GalleryItem) []GalleryItemResponse {
	out := make([]GalleryItemResponse, len(items))
	for i, it := range items {
		out[i] = FromGalleryItem(it)
	}
	return out
}

func FromTestimonial(t catalog.Testimonial) TestimonialResponse {
	var resp TestimonialResponse
	_ = copier.Copy(&resp, &t)
	return resp
}

func FromTestimonials(items []catalog.Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, len(items))
	for i, it := range items {
		out[i] = FromTestimonial(it)
	}
	return out
}
