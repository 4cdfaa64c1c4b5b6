package freetrial

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FreeTrial is a lead-capture record for the promotional trial offer.
// Email uniqueness is enforced at the storage layer, not here: a second
// submission with the same email must fail at the storage boundary rather
// than be deduplicated in application logic.
type FreeTrial struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New builds a FreeTrial from trimmed submission fields.
func New(name, email, phone string) *FreeTrial {
	now := time.Now().UTC()
	return &FreeTrial{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
