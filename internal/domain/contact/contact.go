package contact

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact is a contact-form submission.
type Contact struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// New builds a Contact from trimmed submission fields.
func New(name, email, message string) *Contact {
	return &Contact{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Message:   strings.TrimSpace(message),
		CreatedAt: time.Now().UTC(),
	}
}
