package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymclub/internal/auth"
	"gymclub/internal/errors"
	"gymclub/internal/model"
	"gymclub/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.Member, error)
	Login(ctx context.Context, email, password string) (token string, member *model.Member, err error)
}

type authService struct {
	memberRepo repository.MemberRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(memberRepo repository.MemberRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		memberRepo: memberRepo,
		jwtService: jwtService,
	}
}

// normalizeEmail lowercases the address so uniqueness is case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new member with a hashed password. No token is issued.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.Member, error) {
	email = normalizeEmail(email)

	existing, err := s.memberRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrMemberExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check member existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	member := &model.Member{
		Name:             name,
		Email:            email,
		PasswordHash:     string(hashedPassword),
		MembershipActive: false,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	return member, nil
}

// Login authenticates a member and issues a bearer token. Unknown email and
// wrong password both return ErrInvalidCredentials so the responses are
// indistinguishable.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.Member, error) {
	member, err := s.memberRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(member.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, member, nil
}
