package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"gymclub/internal/errors"
	"gymclub/internal/model"
)

func TestSupplementService_Purchase_Validation(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		price       decimal.Decimal
		quantity    int
	}{
		{"empty product name", "", decimal.NewFromInt(100), 1},
		{"zero price", "Whey Protein", decimal.Zero, 1},
		{"negative price", "Whey Protein", decimal.NewFromInt(-5), 1},
		{"zero quantity", "Whey Protein", decimal.NewFromInt(100), 0},
		{"negative quantity", "Whey Protein", decimal.NewFromInt(100), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memberRepo := new(MockMemberRepository)
			purchaseRepo := new(MockSupplementPurchaseRepository)

			svc := NewSupplementService(memberRepo, purchaseRepo)
			purchase, err := svc.Purchase(context.Background(), uuid.New(), tt.productName, tt.price, tt.quantity)

			assert.ErrorIs(t, err, errors.ErrInvalidPurchase)
			assert.Nil(t, purchase)
			memberRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			purchaseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestSupplementService_Purchase_MemberNotFound(t *testing.T) {
	memberID := uuid.New()
	memberRepo := new(MockMemberRepository)
	purchaseRepo := new(MockSupplementPurchaseRepository)
	memberRepo.On("FindByID", mock.Anything, memberID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewSupplementService(memberRepo, purchaseRepo)
	_, err := svc.Purchase(context.Background(), memberID, "Whey Protein", decimal.NewFromInt(1499), 1)

	assert.ErrorIs(t, err, errors.ErrMemberNotFound)
	purchaseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Membership state does not gate supplement sales.
func TestSupplementService_Purchase_IgnoresMembershipState(t *testing.T) {
	memberID := uuid.New()
	memberRepo := new(MockMemberRepository)
	purchaseRepo := new(MockSupplementPurchaseRepository)
	memberRepo.On("FindByID", mock.Anything, memberID).
		Return(&model.Member{ID: memberID, MembershipActive: false}, nil)
	purchaseRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.SupplementPurchase")).Return(nil)

	svc := NewSupplementService(memberRepo, purchaseRepo)
	purchase, err := svc.Purchase(context.Background(), memberID, "Creatine 500g", decimal.NewFromInt(899), 3)

	assert.NoError(t, err)
	assert.Equal(t, memberID, purchase.MemberID)
	assert.Equal(t, "Creatine 500g", purchase.ProductName)
	assert.Equal(t, 3, purchase.Quantity)
	assert.False(t, purchase.PurchasedAt.IsZero())
}

func TestSupplementService_Purchase_AppendsInCallOrder(t *testing.T) {
	memberID := uuid.New()
	memberRepo := new(MockMemberRepository)
	purchaseRepo := new(MockSupplementPurchaseRepository)
	memberRepo.On("FindByID", mock.Anything, memberID).
		Return(&model.Member{ID: memberID}, nil)

	var appended []string
	purchaseRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.SupplementPurchase")).
		Run(func(args mock.Arguments) {
			appended = append(appended, args.Get(1).(*model.SupplementPurchase).ProductName)
		}).Return(nil)

	svc := NewSupplementService(memberRepo, purchaseRepo)
	for _, name := range []string{"Whey Protein", "Creatine", "BCAA"} {
		_, err := svc.Purchase(context.Background(), memberID, name, decimal.NewFromInt(100), 1)
		assert.NoError(t, err)
	}

	assert.Equal(t, []string{"Whey Protein", "Creatine", "BCAA"}, appended)
	purchaseRepo.AssertNumberOfCalls(t, "Create", 3)
}

func TestSupplementService_History(t *testing.T) {
	memberID := uuid.New()
	history := []model.SupplementPurchase{
		{MemberID: memberID, ProductName: "Whey Protein"},
		{MemberID: memberID, ProductName: "Creatine"},
	}

	memberRepo := new(MockMemberRepository)
	purchaseRepo := new(MockSupplementPurchaseRepository)
	memberRepo.On("FindByID", mock.Anything, memberID).Return(&model.Member{ID: memberID}, nil)
	purchaseRepo.On("ListByMember", mock.Anything, memberID).Return(history, nil)

	svc := NewSupplementService(memberRepo, purchaseRepo)
	got, err := svc.History(context.Background(), memberID)

	assert.NoError(t, err)
	assert.Equal(t, history, got)
}

func TestSupplementService_History_MemberNotFound(t *testing.T) {
	memberID := uuid.New()
	memberRepo := new(MockMemberRepository)
	purchaseRepo := new(MockSupplementPurchaseRepository)
	memberRepo.On("FindByID", mock.Anything, memberID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewSupplementService(memberRepo, purchaseRepo)
	_, err := svc.History(context.Background(), memberID)

	assert.ErrorIs(t, err, errors.ErrMemberNotFound)
	purchaseRepo.AssertNotCalled(t, "ListByMember", mock.Anything, mock.Anything)
}
