//go:build unit

package builder

import (
	"time"

	"barber-booking/internal/domain/booking"
	reqdto "barber-booking/internal/handler/dto/request"
	"barber-booking/internal/pkg/ident"
)

type BookingBuilder struct {
	ID        ident.ID
	Name      string
	Email     string
	Phone     string
	Service   string
	Notes     string
	Date      string
	Time      string
	Status    booking.Status
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        ident.New(),
		Name:      "Jordan Pierce",
		Email:     "jordan@example.com",
		Phone:     "+1 555 0100",
		Service:   "Classic Cut",
		Notes:     "first visit",
		Date:      "2026-09-14",
		Time:      "10:30",
		Status:    booking.StatusPending,
		CreatedAt: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildRecord() booking.Record {
	return booking.Record{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Service:   b.Service,
		Notes:     b.Notes,
		Date:      b.Date,
		Time:      b.Time,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCandidate() booking.Candidate {
	return booking.Candidate{
		Name:    b.Name,
		Email:   b.Email,
		Phone:   b.Phone,
		Service: b.Service,
		Notes:   b.Notes,
		Date:    b.Date,
		Time:    b.Time,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Name:    b.Name,
		Email:   b.Email,
		Phone:   b.Phone,
		Service: b.Service,
		Notes:   b.Notes,
		Date:    b.Date,
		Time:    b.Time,
	}
}
