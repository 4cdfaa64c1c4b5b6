package booking

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for bookings.
type Repository interface {
	// Save persists a new booking.
	Save(ctx context.Context, b *Booking) error

	// FindByID retrieves a booking by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// CountByEmail counts bookings recorded for an email address.
	CountByEmail(ctx context.Context, email string) (int64, error)
}
