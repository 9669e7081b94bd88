package response

import (
	"time"

	"barber-booking/internal/domain/booking"
	"barber-booking/internal/pkg/ident"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID        ident.ID       `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Service   string         `json:"service"`
	Notes     string         `json:"notes"`
	Date      string         `json:"date"`
	Time      string         `json:"time"`
	Status    booking.Status `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
}

type BookingCreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func FromBookingRecord(rec booking.Record) BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, &rec)
	return resp
}

func FromBookingRecords(records []booking.Record) []BookingResponse {
	out := make([]BookingResponse, len(records))
	for i, rec := range records {
		out[i] = FromBookingRecord(rec)
	}
	return out
}
