// Package catalog holds the records behind the public site content: the
// service menu, the gallery, and client testimonials.
package catalog

import (
	"time"

	"barber-booking/internal/pkg/ident"
)

type Service struct {
	ID    ident.ID `json:"id"`
	Name  string   `json:"name"`
	Price string   `json:"price"`
	Desc  string   `json:"desc"`
}

type GalleryItem struct {
	ID  ident.ID `json:"id"`
	URL string   `json:"url"`
}

type Testimonial struct {
	ID    ident.ID  `json:"id"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
	Story string    `json:"story"`
	Date  time.Time `json:"date"`
}

const DefaultTestimonialRole = "Client"
