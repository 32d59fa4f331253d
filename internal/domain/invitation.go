package domain

import (
	"context"
	"time"
)

// Invitation is a single-use, time-limited token gating new band onboarding.
// swagger:model Invitation
type Invitation struct {
	ID        string     `json:"id"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	Claimed   bool       `json:"claimed"`
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	BandID    *string    `json:"band_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Validate checks whether the invitation can still be claimed at the given
// time. Returns ErrInvitationExpired or ErrInvitationClaimed otherwise.
func (i *Invitation) Validate(now time.Time) error {
	if now.After(i.ExpiresAt) {
		return ErrInvitationExpired
	}
	if i.Claimed {
		return ErrInvitationClaimed
	}
	return nil
}

// InvitationRepository defines storage operations for invitations.
type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error
	GetByToken(ctx context.Context, token string) (*Invitation, error)
	// Claim marks the invitation claimed and records the band id. The
	// check-unclaimed and mark-claimed steps must be one atomic write;
	// Claim returns ErrInvitationClaimed if the token was already claimed
	// and ErrNotFound if no invitation has that token.
	Claim(ctx context.Context, token, bandID string, claimedAt time.Time) error
}

// InvitationService mints new invitation tokens. Invitations are normally
// created by venue staff and handed to a band out of band.
type InvitationService interface {
	Mint(ctx context.Context, ttl time.Duration) (*Invitation, error)
}
