package contact

import "context"

// Repository defines the persistence contract for contact submissions.
type Repository interface {
	Save(ctx context.Context, c *Contact) error
}
