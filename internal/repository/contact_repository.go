package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	contactDomain "github.com/callygym/service-gym/internal/domain/contact"
)

// ContactModel is the GORM persistence model for the contacts table.
type ContactModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:text;not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now()"`
}

// TableName specifies the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}

// ContactRepositoryImpl is the GORM-based implementation of the contact
// repository.
type ContactRepositoryImpl struct {
	db *gorm.DB
}

// NewContactRepository creates a new GORM-based contact repository.
func NewContactRepository(db *gorm.DB) *ContactRepositoryImpl {
	return &ContactRepositoryImpl{db: db}
}

// Save persists a new contact submission.
func (r *ContactRepositoryImpl) Save(ctx context.Context, c *contactDomain.Contact) error {
	model := &ContactModel{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(model).Error
}
