package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Booking is a record of a prospective gym visit or session request.
// Duplicate bookings for the same person are permitted: the business
// follows up on every submission individually.
type Booking struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Date      time.Time
	CreatedAt time.Time
}

// New builds a Booking from trimmed submission fields. date is the
// requested preferred date, or the submission time when the caller has no
// preference.
func New(name, email, phone string, date time.Time) *Booking {
	now := time.Now().UTC()
	return &Booking{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		Date:      date,
		CreatedAt: now,
	}
}
