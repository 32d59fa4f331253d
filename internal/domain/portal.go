package domain

import "context"

// PortalSnapshot is a fresh read of everything the portal shows for one
// band: the profile, the events visible to it, and its applications.
// Onboarded is false when the user has no band profile yet; that is a
// normal displayable state, not an error.
// swagger:model PortalSnapshot
type PortalSnapshot struct {
	Onboarded bool       `json:"onboarded"`
	Band      *Band      `json:"band,omitempty"`
	Events    []*Event   `json:"events"`
	Bookings  []*Booking `json:"bookings"`
}

// PortalService aggregates the band-facing read model. Load always
// re-fetches from storage; there is no cached state to merge.
type PortalService interface {
	Load(ctx context.Context, userID string) (*PortalSnapshot, error)
}

// OnboardingResult is what a successful sign-up returns: the new principal,
// its band profile, and a login token.
type OnboardingResult struct {
	User  *User  `json:"user"`
	Band  *Band  `json:"band"`
	Token string `json:"token"`
}

// OnboardingService runs the invitation-gated sign-up workflow.
type OnboardingService interface {
	// SignUp registers the identity, validates and claims the invitation,
	// and creates the band profile, in that order. Later-step failures do
	// not roll back the already-created identity.
	SignUp(ctx context.Context, token, bandName, email, password string) (*OnboardingResult, error)
}
