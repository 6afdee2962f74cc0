package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gymclub/internal/errors"
	"gymclub/internal/model"
	"gymclub/internal/repository"
)

// SupplementService handles supplement sales and the purchase history.
// Supplements are sellable to any member regardless of membership state.
type SupplementService interface {
	Purchase(ctx context.Context, memberID uuid.UUID, productName string, price decimal.Decimal, quantity int) (*model.SupplementPurchase, error)
	History(ctx context.Context, memberID uuid.UUID) ([]model.SupplementPurchase, error)
}

type supplementService struct {
	memberRepo   repository.MemberRepository
	purchaseRepo repository.SupplementPurchaseRepository
}

// NewSupplementService creates a new supplement service.
func NewSupplementService(memberRepo repository.MemberRepository, purchaseRepo repository.SupplementPurchaseRepository) SupplementService {
	return &supplementService{
		memberRepo:   memberRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Purchase appends a record to the member's purchase history.
func (s *supplementService) Purchase(ctx context.Context, memberID uuid.UUID, productName string, price decimal.Decimal, quantity int) (*model.SupplementPurchase, error) {
	if productName == "" || quantity <= 0 || !price.IsPositive() {
		return nil, errors.ErrInvalidPurchase
	}

	if _, err := s.memberRepo.FindByID(ctx, memberID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}

	purchase := &model.SupplementPurchase{
		MemberID:    memberID,
		ProductName: productName,
		Price:       price,
		Quantity:    quantity,
		PurchasedAt: time.Now(),
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("create purchase: %w", err)
	}

	return purchase, nil
}

// History returns the member's purchases in insertion order.
func (s *supplementService) History(ctx context.Context, memberID uuid.UUID) ([]model.SupplementPurchase, error) {
	if _, err := s.memberRepo.FindByID(ctx, memberID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	return s.purchaseRepo.ListByMember(ctx, memberID)
}
