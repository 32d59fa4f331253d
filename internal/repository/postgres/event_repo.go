package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bandportal/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, date, start_time, end_time, venue, band_email, band_id, band_name, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Date, e.StartTime, e.EndTime, nullIfEmpty(e.Venue),
		e.BandEmail, nullIfEmpty(e.BandID), nullIfEmpty(e.BandName), e.Status, e.CreatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, title, description, date, start_time, end_time, venue, band_email, band_id, band_name, status, created_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var venueNull, bandIDNull, bandNameNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.EndTime,
		&venueNull, &e.BandEmail, &bandIDNull, &bandNameNull, &e.Status, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	e.Venue = venueNull.String
	e.BandID = bandIDNull.String
	e.BandName = bandNameNull.String
	return e, nil
}

func (r *eventRepository) ListByBandEmail(ctx context.Context, bandEmail string) ([]*domain.Event, error) {
	query := `
		SELECT id, title, description, date, start_time, end_time, venue, band_email, band_id, band_name, status, created_at
		FROM events
		WHERE band_email = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, bandEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		var venueNull, bandIDNull, bandNameNull sql.NullString
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.EndTime,
			&venueNull, &e.BandEmail, &bandIDNull, &bandNameNull, &e.Status, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.Venue = venueNull.String
		e.BandID = bandIDNull.String
		e.BandName = bandNameNull.String
		events = append(events, e)
	}
	return events, rows.Err()
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
