package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bandportal/internal/domain"
)

const defaultInvitationTTL = 7 * 24 * time.Hour

type invitationService struct {
	invitationRepo domain.InvitationRepository
	now            func() time.Time
}

// NewInvitationService creates an InvitationService with the given repository.
func NewInvitationService(invitationRepo domain.InvitationRepository) domain.InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		now:            time.Now,
	}
}

// Mint creates a fresh single-use invitation with a random token. A zero
// ttl falls back to the default of one week.
func (s *invitationService) Mint(ctx context.Context, ttl time.Duration) (*domain.Invitation, error) {
	if ttl <= 0 {
		ttl = defaultInvitationTTL
	}
	now := s.now()
	inv := &domain.Invitation{
		Token:     uuid.NewString(),
		ExpiresAt: now.Add(ttl),
		Claimed:   false,
		CreatedAt: now,
	}
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}
	return inv, nil
}
