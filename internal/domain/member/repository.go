package member

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for members.
type Repository interface {
	// FindByID retrieves a member by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Member, error)

	// Save persists a new member.
	Save(ctx context.Context, m *Member) error
}
