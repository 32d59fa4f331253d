package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"bandportal/internal/domain"
)

const minPasswordLen = 8

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type identityProvider struct {
	userRepo    domain.UserRepository
	hasher      domain.PasswordHasher
	issuer      domain.TokenIssuer
	verifier    domain.TokenVerifier
	tokenExpiry time.Duration
}

// NewIdentityProvider creates an IdentityProvider backed by the user
// repository, password hasher, and token issuer/verifier.
func NewIdentityProvider(userRepo domain.UserRepository, hasher domain.PasswordHasher, issuer domain.TokenIssuer, verifier domain.TokenVerifier, tokenExpiry time.Duration) domain.IdentityProvider {
	return &identityProvider{
		userRepo:    userRepo,
		hasher:      hasher,
		issuer:      issuer,
		verifier:    verifier,
		tokenExpiry: tokenExpiry,
	}
}

func (p *identityProvider) Register(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return nil, domain.ErrWeakPassword
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (p *identityProvider) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := p.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}
	if err := p.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := p.issuer.Issue(user.ID, user.Email, p.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, user, nil
}

func (p *identityProvider) Verify(token string) (string, error) {
	return p.verifier.Verify(token)
}
