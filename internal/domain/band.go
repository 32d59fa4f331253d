package domain

import (
	"context"
	"strings"
	"time"
)

// Band statuses.
const (
	BandStatusActive   = "active"
	BandStatusInactive = "inactive"
)

// Band is a performer profile, the unit of identity for event creation
// and booking applications.
// swagger:model Band
type Band struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	BandName  string    `json:"band_name"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBand returns an active Band owned by the given user. ID must be set
// by the caller via DeriveBandID.
func NewBand(id, email, bandName, userID string, createdAt time.Time) *Band {
	return &Band{
		ID:        id,
		Email:     email,
		BandName:  bandName,
		UserID:    userID,
		Status:    BandStatusActive,
		CreatedAt: createdAt,
	}
}

// DeriveBandID derives the band's document id from its display name:
// lower-cased, with every character outside [a-z0-9] replaced by '_'.
// The mapping is deterministic but many-to-one; distinct names can derive
// the same id, which surfaces as ErrBandExists on create.
func DeriveBandID(bandName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(bandName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// BandRepository defines storage operations for band profiles.
type BandRepository interface {
	// Create writes the band at its derived id. The write is
	// create-if-absent: if a band already exists at that id, Create
	// returns ErrBandExists and leaves the existing profile untouched.
	Create(ctx context.Context, band *Band) error
	GetByID(ctx context.Context, id string) (*Band, error)
	// GetByUserID resolves the band owned by the given identity. Returns
	// ErrNotFound when the user has not completed onboarding.
	GetByUserID(ctx context.Context, userID string) (*Band, error)
}
