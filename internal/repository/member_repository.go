package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/callygym/service-gym/internal/domain"
	memberDomain "github.com/callygym/service-gym/internal/domain/member"
)

// MemberModel is the GORM persistence model for the members table.
type MemberModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:text;not null"`
	Plan      string    `gorm:"type:text;not null;default:'Basic'"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now()"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now()"`
}

// TableName specifies the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}

// MemberRepositoryImpl is the GORM-based implementation of the member
// repository.
type MemberRepositoryImpl struct {
	db *gorm.DB
}

// NewMemberRepository creates a new GORM-based member repository.
func NewMemberRepository(db *gorm.DB) *MemberRepositoryImpl {
	return &MemberRepositoryImpl{db: db}
}

// FindByID retrieves a member by their unique ID.
func (r *MemberRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*memberDomain.Member, error) {
	var model MemberModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Member", id.String())
		}
		return nil, err
	}
	return &memberDomain.Member{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Plan:      model.Plan,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

// Save persists a new member.
func (r *MemberRepositoryImpl) Save(ctx context.Context, m *memberDomain.Member) error {
	model := &MemberModel{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Plan:      m.Plan,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(model).Error
}
