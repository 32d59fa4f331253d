package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bandportal/internal/domain"
)

type mockEventRepo struct {
	byID   map[string]*domain.Event
	nextID int
	err    error
}

func newMockEventRepo(events ...*domain.Event) *mockEventRepo {
	m := &mockEventRepo{byID: map[string]*domain.Event{}}
	for _, e := range events {
		m.byID[e.ID] = e
	}
	return m
}

func (m *mockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	event.ID = fmt.Sprintf("ev-%d", m.nextID)
	m.byID[event.ID] = event
	return nil
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (m *mockEventRepo) ListByBandEmail(ctx context.Context, bandEmail string) ([]*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	var events []*domain.Event
	for _, e := range m.byID {
		if e.BandEmail == bandEmail {
			events = append(events, e)
		}
	}
	return events, nil
}

func testBand() *domain.Band {
	return domain.NewBand("the_band", "band@example.com", "The Band", "user-1", time.Now())
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		draft   *domain.EventDraft
		wantErr error
	}{
		{
			name:  "valid times succeed",
			draft: &domain.EventDraft{Title: "Friday Night", Date: "2026-10-02", StartTime: "09:00", EndTime: "10:00"},
		},
		{
			name:    "end before start rejected",
			draft:   &domain.EventDraft{Title: "Friday Night", Date: "2026-10-02", StartTime: "10:00", EndTime: "09:00"},
			wantErr: domain.ErrInvalidEventTimes,
		},
		{
			name:    "equal times rejected",
			draft:   &domain.EventDraft{Title: "Friday Night", StartTime: "10:00", EndTime: "10:00"},
			wantErr: domain.ErrInvalidEventTimes,
		},
		{
			name:    "unpadded hour rejected as format error",
			draft:   &domain.EventDraft{Title: "Friday Night", Date: "2026-10-02", StartTime: "9:00", EndTime: "22:00"},
			wantErr: domain.ErrInvalidTimeFormat,
		},
		{
			name:    "non-clock string rejected as format error",
			draft:   &domain.EventDraft{Title: "Friday Night", Date: "2026-10-02", StartTime: "09:00", EndTime: "late"},
			wantErr: domain.ErrInvalidTimeFormat,
		},
		{
			name:  "missing times skip the check",
			draft: &domain.EventDraft{Title: "Friday Night", Date: "2026-10-02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockEventRepo()
			svc := NewEventService(repo)

			event, err := svc.Create(ctx, testBand(), tt.draft)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.byID, "validation failures must not write")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.EventStatusPending, event.Status)
			assert.Equal(t, "band@example.com", event.BandEmail)
			assert.Equal(t, "the_band", event.BandID)
			assert.Equal(t, "The Band", event.BandName)
			assert.False(t, event.CreatedAt.IsZero())
		})
	}

	t.Run("missing title rejected", func(t *testing.T) {
		svc := NewEventService(newMockEventRepo())
		_, err := svc.Create(ctx, testBand(), &domain.EventDraft{StartTime: "09:00", EndTime: "10:00"})
		require.Error(t, err)
	})

	t.Run("nil band rejected", func(t *testing.T) {
		svc := NewEventService(newMockEventRepo())
		_, err := svc.Create(ctx, nil, &domain.EventDraft{Title: "x"})
		require.Error(t, err)
	})
}

func TestEventService_ListVisibleTo(t *testing.T) {
	ctx := context.Background()

	mine := &domain.Event{ID: "ev-1", Title: "Open Mic", BandEmail: "band@example.com", Status: domain.EventStatusPending}
	other := &domain.Event{ID: "ev-2", Title: "Private", BandEmail: "other@example.com", Status: domain.EventStatusPending}
	svc := NewEventService(newMockEventRepo(mine, other))

	events, err := svc.ListVisibleTo(ctx, "band@example.com")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "ev-1", events[0].ID)

	events, err = svc.ListVisibleTo(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}
