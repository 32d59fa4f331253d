package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bandportal/internal/domain"
)

type onboardingService struct {
	identity       domain.IdentityProvider
	invitationRepo domain.InvitationRepository
	bandRepo       domain.BandRepository
	now            func() time.Time
}

// NewOnboardingService creates an OnboardingService with the given identity
// provider and repositories.
func NewOnboardingService(identity domain.IdentityProvider, invitationRepo domain.InvitationRepository, bandRepo domain.BandRepository) domain.OnboardingService {
	return &onboardingService{
		identity:       identity,
		invitationRepo: invitationRepo,
		bandRepo:       bandRepo,
		now:            time.Now,
	}
}

// SignUp runs the invitation-gated onboarding sequence. Identity
// registration happens first; failures after it do not roll the identity
// back, leaving an authenticated user with no band profile. Portal loads
// treat that state as "onboarding incomplete".
func (s *onboardingService) SignUp(ctx context.Context, token, bandName, email, password string) (*domain.OnboardingResult, error) {
	token = strings.TrimSpace(token)
	bandName = strings.TrimSpace(bandName)
	if token == "" {
		return nil, fmt.Errorf("invitation token is required")
	}
	if bandName == "" {
		return nil, fmt.Errorf("band name is required")
	}

	user, err := s.identity.Register(ctx, email, password)
	if err != nil {
		return nil, err
	}

	inv, err := s.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invalid invitation token: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up invitation: %w", err)
	}

	now := s.now()
	if err := inv.Validate(now); err != nil {
		return nil, err
	}

	band := domain.NewBand(domain.DeriveBandID(bandName), user.Email, bandName, user.ID, now)
	if err := s.bandRepo.Create(ctx, band); err != nil {
		if errors.Is(err, domain.ErrBandExists) {
			return nil, domain.ErrBandExists
		}
		return nil, fmt.Errorf("failed to create band profile: %w", err)
	}

	if err := s.invitationRepo.Claim(ctx, token, band.ID, now); err != nil {
		if errors.Is(err, domain.ErrInvitationClaimed) {
			return nil, domain.ErrInvitationClaimed
		}
		return nil, fmt.Errorf("failed to claim invitation: %w", err)
	}

	loginToken, _, err := s.identity.Login(ctx, user.Email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to establish session: %w", err)
	}

	return &domain.OnboardingResult{
		User:  user,
		Band:  band,
		Token: loginToken,
	}, nil
}
