package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymclub/internal/cache"
	"gymclub/internal/errors"
	"gymclub/internal/model"
	"gymclub/internal/repository"
)

// MembershipService handles the one-shot membership activation purchase.
type MembershipService interface {
	Purchase(ctx context.Context, memberID uuid.UUID, plan model.Plan, paymentMethod string) (*model.PaymentDetails, error)
}

type membershipService struct {
	repo  repository.MemberRepository
	cache *cache.Client
}

// NewMembershipService creates a new membership service.
func NewMembershipService(repo repository.MemberRepository, cache *cache.Client) MembershipService {
	return &membershipService{
		repo:  repo,
		cache: cache,
	}
}

// Purchase activates the membership and records the payment details. The
// check-then-set runs under a row lock so two concurrent purchases for the
// same member serialize and the second one gets ErrMembershipActive.
func (s *membershipService) Purchase(ctx context.Context, memberID uuid.UUID, plan model.Plan, paymentMethod string) (*model.PaymentDetails, error) {
	amount, ok := plan.Price()
	if !ok {
		return nil, errors.ErrInvalidPlan
	}

	var details *model.PaymentDetails
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.MemberRepository) error {
		member, err := repo.FindByIDForUpdate(ctx, memberID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrMemberNotFound
			}
			return fmt.Errorf("find member: %w", err)
		}

		if member.MembershipActive {
			return errors.ErrMembershipActive
		}

		details = &model.PaymentDetails{
			MemberID:    member.ID,
			Plan:        string(plan),
			Amount:      amount,
			Method:      paymentMethod,
			PurchasedAt: time.Now(),
		}

		member.MembershipActive = true
		if err := repo.Update(ctx, member); err != nil {
			return fmt.Errorf("update member: %w", err)
		}
		if err := repo.SavePaymentDetails(ctx, details); err != nil {
			return fmt.Errorf("save payment details: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, memberCacheKey(memberID))

	return details, nil
}
