package freetrial

import "context"

// Repository defines the persistence contract for free-trial leads.
type Repository interface {
	// Save persists a new lead. The storage layer rejects duplicate
	// email addresses.
	Save(ctx context.Context, ft *FreeTrial) error
}
