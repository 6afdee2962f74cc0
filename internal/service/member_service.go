package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymclub/internal/cache"
	"gymclub/internal/errors"
	"gymclub/internal/model"
	"gymclub/internal/repository"
)

const memberCacheTTL = 5 * time.Minute

// MemberService handles member read operations.
type MemberService interface {
	GetMember(ctx context.Context, id uuid.UUID) (*model.Member, error)
}

type memberService struct {
	repo  repository.MemberRepository
	cache *cache.Client
}

// NewMemberService creates a new member service.
func NewMemberService(repo repository.MemberRepository, cache *cache.Client) MemberService {
	return &memberService{
		repo:  repo,
		cache: cache,
	}
}

func memberCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("member:%s", id.String())
}

// GetMember retrieves a member by ID with caching. The cached payload is the
// JSON form of the member, which never contains the password hash.
func (s *memberService) GetMember(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	if data, _ := s.cache.Get(ctx, memberCacheKey(id)); data != nil {
		var cached model.Member
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMemberNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(member); err == nil {
		_ = s.cache.Set(ctx, memberCacheKey(id), payload, memberCacheTTL)
	}

	return member, nil
}
