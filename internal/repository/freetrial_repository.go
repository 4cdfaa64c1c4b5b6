package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	freetrialDomain "github.com/callygym/service-gym/internal/domain/freetrial"
)

// FreeTrialModel is the GORM persistence model for the free_trials table.
// The unique index on email is the deduplication mechanism: repeat
// submissions fail at the storage boundary.
type FreeTrialModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:text;uniqueIndex;not null"`
	Phone     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now()"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now()"`
}

// TableName specifies the table name for GORM.
func (FreeTrialModel) TableName() string {
	return "free_trials"
}

// FreeTrialRepositoryImpl is the GORM-based implementation of the
// free-trial repository.
type FreeTrialRepositoryImpl struct {
	db *gorm.DB
}

// NewFreeTrialRepository creates a new GORM-based free-trial repository.
func NewFreeTrialRepository(db *gorm.DB) *FreeTrialRepositoryImpl {
	return &FreeTrialRepositoryImpl{db: db}
}

// Save persists a new free-trial lead. A duplicate email surfaces as the
// driver's unique-violation error; callers treat it as any other storage
// failure.
func (r *FreeTrialRepositoryImpl) Save(ctx context.Context, ft *freetrialDomain.FreeTrial) error {
	model := &FreeTrialModel{
		ID:        ft.ID,
		Name:      ft.Name,
		Email:     ft.Email,
		Phone:     ft.Phone,
		CreatedAt: ft.CreatedAt,
		UpdatedAt: ft.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(model).Error
}
