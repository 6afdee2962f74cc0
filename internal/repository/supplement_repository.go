package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymclub/internal/model"
)

// SupplementPurchaseRepository defines purchase-history persistence
// operations. The history is append-only: there is no update or delete.
type SupplementPurchaseRepository interface {
	Create(ctx context.Context, purchase *model.SupplementPurchase) error
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]model.SupplementPurchase, error)
}

type supplementPurchaseRepository struct {
	db *gorm.DB
}

// NewSupplementPurchaseRepository creates a new purchase-history repository.
func NewSupplementPurchaseRepository(db *gorm.DB) SupplementPurchaseRepository {
	return &supplementPurchaseRepository{db: db}
}

// Create appends a purchase record.
func (r *supplementPurchaseRepository) Create(ctx context.Context, purchase *model.SupplementPurchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

// ListByMember returns the member's purchases in insertion order.
func (r *supplementPurchaseRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]model.SupplementPurchase, error) {
	var purchases []model.SupplementPurchase
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("seq ASC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}
