package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bandportal/internal/domain"
)

type bandRepository struct {
	DB *sql.DB
}

func NewBandRepository(db *sql.DB) domain.BandRepository {
	return &bandRepository{DB: db}
}

// Create is create-if-absent: ON CONFLICT DO NOTHING plus a row-count check
// turns a derived-id collision into domain.ErrBandExists instead of
// overwriting another band's profile.
func (r *bandRepository) Create(ctx context.Context, band *domain.Band) error {
	query := `
		INSERT INTO bands (id, email, band_name, user_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`
	res, err := r.DB.ExecContext(ctx, query, band.ID, band.Email, band.BandName, band.UserID, band.Status, band.CreatedAt)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrBandExists
	}
	return nil
}

func (r *bandRepository) GetByID(ctx context.Context, id string) (*domain.Band, error) {
	query := `
		SELECT id, email, band_name, user_id, status, created_at
		FROM bands
		WHERE id = $1
	`
	band := &domain.Band{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&band.ID, &band.Email, &band.BandName, &band.UserID, &band.Status, &band.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return band, nil
}

func (r *bandRepository) GetByUserID(ctx context.Context, userID string) (*domain.Band, error) {
	query := `
		SELECT id, email, band_name, user_id, status, created_at
		FROM bands
		WHERE user_id = $1
		ORDER BY created_at
		LIMIT 1
	`
	band := &domain.Band{}
	err := r.DB.QueryRowContext(ctx, query, userID).
		Scan(&band.ID, &band.Email, &band.BandName, &band.UserID, &band.Status, &band.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return band, nil
}
