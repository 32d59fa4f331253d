package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bandportal/internal/domain"
)

func TestPortalService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("not onboarded user gets empty snapshot without error", func(t *testing.T) {
		svc := NewPortalService(newMockBandRepo(), NewEventService(newMockEventRepo()), NewBookingService(&mockBookingRepo{}, newMockEventRepo()))

		snap, err := svc.Load(ctx, "user-without-band")
		require.NoError(t, err)
		assert.False(t, snap.Onboarded)
		assert.Nil(t, snap.Band)
		assert.NotNil(t, snap.Events)
		assert.NotNil(t, snap.Bookings)
		assert.Empty(t, snap.Events)
		assert.Empty(t, snap.Bookings)
	})

	t.Run("onboarded user sees scoped events and bookings", func(t *testing.T) {
		band := domain.NewBand("the_band", "band@example.com", "The Band", "user-1", time.Now())
		eventRepo := newMockEventRepo(
			&domain.Event{ID: "ev-1", Title: "Mine", BandEmail: "band@example.com", Status: domain.EventStatusPending},
			&domain.Event{ID: "ev-2", Title: "Not mine", BandEmail: "other@example.com", Status: domain.EventStatusPending},
		)
		bookingRepo := &mockBookingRepo{bookings: []*domain.Booking{
			{ID: "bk-1", BandID: "the_band", EventID: "ev-1", Status: domain.BookingStatusPending},
			{ID: "bk-2", BandID: "other_band", EventID: "ev-2", Status: domain.BookingStatusPending},
		}}
		svc := NewPortalService(newMockBandRepo(band), NewEventService(eventRepo), NewBookingService(bookingRepo, eventRepo))

		snap, err := svc.Load(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, snap.Onboarded)
		require.NotNil(t, snap.Band)
		assert.Equal(t, "the_band", snap.Band.ID)
		require.Len(t, snap.Events, 1)
		assert.Equal(t, "ev-1", snap.Events[0].ID)
		require.Len(t, snap.Bookings, 1)
		assert.Equal(t, "bk-1", snap.Bookings[0].ID)
	})

	t.Run("reload reflects new bookings", func(t *testing.T) {
		band := domain.NewBand("the_band", "band@example.com", "The Band", "user-1", time.Now())
		eventRepo := newMockEventRepo(&domain.Event{ID: "ev-1", Title: "Mine", BandEmail: "band@example.com", Status: domain.EventStatusPending})
		bookingRepo := &mockBookingRepo{}
		bookings := NewBookingService(bookingRepo, eventRepo)
		svc := NewPortalService(newMockBandRepo(band), NewEventService(eventRepo), bookings)

		snap, err := svc.Load(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, snap.Bookings)

		_, err = bookings.Apply(ctx, band, "ev-1", "")
		require.NoError(t, err)

		snap, err = svc.Load(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, snap.Bookings, 1)
	})
}
