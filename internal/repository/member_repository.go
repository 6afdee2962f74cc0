package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gymclub/internal/model"
)

// MemberRepository defines member persistence operations.
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	Update(ctx context.Context, member *model.Member) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Member, error)
	FindByEmail(ctx context.Context, email string) (*model.Member, error)
	SavePaymentDetails(ctx context.Context, details *model.PaymentDetails) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MemberRepository) error) error
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository.
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create creates a new member.
func (r *memberRepository) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// Update updates an existing member.
func (r *memberRepository) Update(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// FindByID finds a member by ID, including payment details when present.
func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Preload("PaymentDetails").
		Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByIDForUpdate finds a member by ID with a row-level lock. Only
// meaningful inside WithTransaction.
func (r *memberRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByEmail finds a member by email.
func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Preload("PaymentDetails").
		Where("email = ?", email).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// SavePaymentDetails inserts or overwrites the member's payment details row.
func (r *memberRepository) SavePaymentDetails(ctx context.Context, details *model.PaymentDetails) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).
		Create(details).Error
}

// WithTransaction executes a function within a database transaction.
func (r *memberRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MemberRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &memberRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
