package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"bandportal/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var eventColumns = []string{"id", "title", "description", "date", "start_time", "end_time", "venue", "band_email", "band_id", "band_name", "status", "created_at"}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			event: &domain.Event{
				Title:       "Friday Night",
				Description: "Live set",
				Date:        "2026-10-02",
				StartTime:   "20:00",
				EndTime:     "23:00",
				Venue:       "Main Room",
				BandEmail:   "x@y.com",
				BandID:      "the_band",
				BandName:    "The Band",
				Status:      domain.EventStatusPending,
				CreatedAt:   created,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(title, description, date, start_time, end_time, venue, band_email, band_id, band_name, status, created_at\)`).
					WithArgs("Friday Night", "Live set", "2026-10-02", "20:00", "23:00",
						sql.NullString{String: "Main Room", Valid: true},
						"x@y.com",
						sql.NullString{String: "the_band", Valid: true},
						sql.NullString{String: "The Band", Valid: true},
						"pending", created).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))
			},
			wantID: "ev-uuid-1",
		},
		{
			name: "db error",
			event: &domain.Event{
				Title:     "Friday Night",
				BandEmail: "x@y.com",
				Status:    domain.EventStatusPending,
				CreatedAt: created,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success with nullable fields absent", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, description, date, start_time, end_time, venue, band_email, band_id, band_name, status, created_at`).
			WithArgs("ev-1").
			WillReturnRows(sqlmock.NewRows(eventColumns).
				AddRow("ev-1", "Open Mic", "", "2026-10-02", "19:00", "22:00", nil, "x@y.com", nil, nil, "pending", created))

		repo := NewEventRepository(db)
		got, err := repo.GetByID(ctx, "ev-1")
		require.NoError(t, err)
		require.Equal(t, &domain.Event{
			ID:        "ev-1",
			Title:     "Open Mic",
			Date:      "2026-10-02",
			StartTime: "19:00",
			EndTime:   "22:00",
			BandEmail: "x@y.com",
			Status:    domain.EventStatusPending,
			CreatedAt: created,
		}, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, description, date, start_time, end_time, venue, band_email, band_id, band_name, status, created_at`).
			WithArgs("ev-missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewEventRepository(db)
		got, err := repo.GetByID(ctx, "ev-missing")
		require.True(t, errors.Is(err, domain.ErrNotFound))
		require.Nil(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_ListByBandEmail(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns matching events", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, description, date, start_time, end_time, venue, band_email, band_id, band_name, status, created_at`).
			WithArgs("x@y.com").
			WillReturnRows(sqlmock.NewRows(eventColumns).
				AddRow("ev-2", "Saturday", "", "2026-10-03", "20:00", "23:00", "Main Room", "x@y.com", "the_band", "The Band", "booked", created).
				AddRow("ev-1", "Friday", "", "2026-10-02", "20:00", "23:00", nil, "x@y.com", nil, nil, "pending", created))

		repo := NewEventRepository(db)
		events, err := repo.ListByBandEmail(ctx, "x@y.com")
		require.NoError(t, err)
		require.Len(t, events, 2)
		require.Equal(t, "ev-2", events[0].ID)
		require.Equal(t, "Main Room", events[0].Venue)
		require.Equal(t, domain.EventStatusBooked, events[0].Status)
		require.Equal(t, "", events[1].Venue)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no events returns empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, description, date, start_time, end_time, venue, band_email, band_id, band_name, status, created_at`).
			WithArgs("nobody@y.com").
			WillReturnRows(sqlmock.NewRows(eventColumns))

		repo := NewEventRepository(db)
		events, err := repo.ListByBandEmail(ctx, "nobody@y.com")
		require.NoError(t, err)
		require.NotNil(t, events)
		require.Empty(t, events)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
