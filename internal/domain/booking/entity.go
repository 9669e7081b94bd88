package booking

import (
	"strings"
	"time"

	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/pkg/ident"
)

var ErrMissingFields = errs.New("missing booking details")

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

// DateLayout is the calendar-date form bookings carry. The appointment time
// stays a local wall-clock string exactly as the client submitted it.
const DateLayout = "2006-01-02"

// Slot is the unit of conflict: one booking per (date, time) pair.
type Slot struct {
	Date string
	Time string
}

type Record struct {
	ID        ident.ID  `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Notes     string    `json:"notes"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r Record) Slot() Slot {
	return Slot{Date: r.Date, Time: r.Time}
}

func (r *Record) Confirm() {
	r.Status = StatusConfirmed
}

// Candidate is a client-submitted booking before the store assigns identity
// and lifecycle fields.
type Candidate struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Notes   string
	Date    string
	Time    string
}

func (c Candidate) Validate() error {
	if strings.TrimSpace(c.Name) == "" ||
		strings.TrimSpace(c.Date) == "" ||
		strings.TrimSpace(c.Time) == "" {
		return ErrMissingFields
	}
	return nil
}

func (c Candidate) Slot() Slot {
	return Slot{Date: c.Date, Time: c.Time}
}

// NewRecord materializes a validated candidate into a pending record.
func NewRecord(c Candidate, id ident.ID, now time.Time) Record {
	return Record{
		ID:        id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Service:   c.Service,
		Notes:     c.Notes,
		Date:      c.Date,
		Time:      c.Time,
		Status:    StatusPending,
		CreatedAt: now,
	}
}

// AppointmentDay parses the record's calendar date in the given location.
// The bool result is false for dates the sweeper cannot interpret.
func (r Record) AppointmentDay(loc *time.Location) (time.Time, bool) {
	day, err := time.ParseInLocation(DateLayout, r.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
