package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gymclub/internal/model"
	"gymclub/internal/repository"
)

// MockMemberRepository is a mock implementation of MemberRepository.
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, member *model.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) Update(ctx context.Context, member *model.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberRepository) SavePaymentDetails(ctx context.Context, details *model.PaymentDetails) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}

// WithTransaction runs the callback against the mock itself so tests can
// assert on the calls made inside the transaction.
func (m *MockMemberRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.MemberRepository) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m)
}

// MockSupplementPurchaseRepository is a mock implementation of
// SupplementPurchaseRepository.
type MockSupplementPurchaseRepository struct {
	mock.Mock
}

func (m *MockSupplementPurchaseRepository) Create(ctx context.Context, purchase *model.SupplementPurchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockSupplementPurchaseRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]model.SupplementPurchase, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SupplementPurchase), args.Error(1)
}
