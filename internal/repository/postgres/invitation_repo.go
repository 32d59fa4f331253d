package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bandportal/internal/domain"
)

type invitationRepository struct {
	DB *sql.DB
}

func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{DB: db}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (token, expires_at, claimed, created_at)
		VALUES ($1, $2, FALSE, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, inv.Token, inv.ExpiresAt, inv.CreatedAt).
		Scan(&inv.ID)
}

func (r *invitationRepository) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	query := `
		SELECT id, token, expires_at, claimed, claimed_at, band_id, created_at
		FROM invitations
		WHERE token = $1
	`
	inv := &domain.Invitation{}
	err := r.DB.QueryRowContext(ctx, query, token).
		Scan(&inv.ID, &inv.Token, &inv.ExpiresAt, &inv.Claimed, &inv.ClaimedAt, &inv.BandID, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

// Claim is the single atomic write that both checks the token is unclaimed
// and marks it claimed. Two racing claims cannot both match claimed = FALSE.
func (r *invitationRepository) Claim(ctx context.Context, token, bandID string, claimedAt time.Time) error {
	query := `
		UPDATE invitations
		SET claimed = TRUE, claimed_at = $2, band_id = $3
		WHERE token = $1 AND claimed = FALSE
	`
	res, err := r.DB.ExecContext(ctx, query, token, claimedAt, bandID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Either the token does not exist or it was claimed first.
		if _, err := r.GetByToken(ctx, token); err != nil {
			return err
		}
		return domain.ErrInvitationClaimed
	}
	return nil
}
