package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"bandportal/internal/domain"
)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{DB: db}
}

// Create persists the booking. A partial unique index on
// (band_id, event_id) WHERE status = 'pending' enforces at most one pending
// application per band per event; violations map to ErrDuplicateBooking.
func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (event_id, band_id, band_name, band_email, event_title, event_date, event_start_time, event_end_time, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		b.EventID, b.BandID, b.BandName, b.BandEmail,
		b.EventTitle, b.EventDate, b.EventStartTime, b.EventEndTime,
		nullIfEmpty(b.Notes), b.Status, b.CreatedAt,
	).Scan(&b.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateBooking
		}
		return err
	}
	return nil
}

func (r *bookingRepository) ListByBandID(ctx context.Context, bandID string) ([]*domain.Booking, error) {
	query := `
		SELECT id, event_id, band_id, band_name, band_email, event_title, event_date, event_start_time, event_end_time, notes, status, selected_date, selected_time, created_at
		FROM bookings
		WHERE band_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, bandID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b := &domain.Booking{}
		var notesNull sql.NullString
		if err := rows.Scan(
			&b.ID, &b.EventID, &b.BandID, &b.BandName, &b.BandEmail,
			&b.EventTitle, &b.EventDate, &b.EventStartTime, &b.EventEndTime,
			&notesNull, &b.Status, &b.SelectedDate, &b.SelectedTime, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		b.Notes = notesNull.String
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
