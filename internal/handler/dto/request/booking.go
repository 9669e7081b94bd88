package request

import (
	"barber-booking/internal/domain/booking"
)

// CreateBookingRequest intentionally has no binding tags: required-field
// checks live in the domain so the API can answer with the booking-specific
// error body rather than a generic bind failure.
type CreateBookingRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Notes   string `json:"notes"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

func (r CreateBookingRequest) ToCandidate() booking.Candidate {
	return booking.Candidate{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Service: r.Service,
		Notes:   r.Notes,
		Date:    r.Date,
		Time:    r.Time,
	}
}
