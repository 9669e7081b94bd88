//go:build unit

package builder

import (
	"time"

	"barber-booking/internal/domain/catalog"
	"barber-booking/internal/pkg/ident"
)

type ServiceBuilder struct {
	ID    ident.ID
	Name  string
	Price string
	Desc  string
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:    ident.New(),
		Name:  "Beard Trim",
		Price: "$25",
		Desc:  "Hot towel finish",
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) Build() catalog.Service {
	return catalog.Service{ID: b.ID, Name: b.Name, Price: b.Price, Desc: b.Desc}
}

type TestimonialBuilder struct {
	ID    ident.ID
	Name  string
	Role  string
	Story string
	Date  time.Time
}

func NewTestimonialBuilder() *TestimonialBuilder {
	return &TestimonialBuilder{
		ID:    ident.New(),
		Name:  "Marcus Webb",
		Role:  "Client",
		Story: "Best fade in town.",
		Date:  time.Date(2026, 8, 20, 15, 0, 0, 0, time.UTC),
	}
}

func (b *TestimonialBuilder) With(mutate func(*TestimonialBuilder)) *TestimonialBuilder {
	mutate(b)
	return b
}

func (b *TestimonialBuilder) Build() catalog.Testimonial {
	return catalog.Testimonial{ID: b.ID, Name: b.Name, Role: b.Role, Story: b.Story, Date: b.Date}
}
