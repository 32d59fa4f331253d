package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bandportal/internal/domain"
)

type bookingService struct {
	bookingRepo domain.BookingRepository
	eventRepo   domain.EventRepository
	now         func() time.Time
}

// NewBookingService creates a BookingService with the given repositories.
func NewBookingService(bookingRepo domain.BookingRepository, eventRepo domain.EventRepository) domain.BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		now:         time.Now,
	}
}

func (s *bookingService) ListFor(ctx context.Context, bandID string) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByBandID(ctx, bandID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, nil
}

// Apply creates a pending application and snapshots the event fields as of
// now. The booked-status check lives here rather than in the catalog so it
// holds for every caller, not just the UI.
func (s *bookingService) Apply(ctx context.Context, band *domain.Band, eventID, notes string) (*domain.Booking, error) {
	if band == nil || band.ID == "" {
		return nil, fmt.Errorf("band profile is required")
	}
	if strings.TrimSpace(eventID) == "" {
		return nil, fmt.Errorf("event id is required")
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.Status == domain.EventStatusBooked {
		return nil, domain.ErrEventBooked
	}

	booking := &domain.Booking{
		EventID:        event.ID,
		BandID:         band.ID,
		BandName:       band.BandName,
		BandEmail:      band.Email,
		EventTitle:     event.Title,
		EventDate:      event.Date,
		EventStartTime: event.StartTime,
		EventEndTime:   event.EndTime,
		Notes:          strings.TrimSpace(notes),
		Status:         domain.BookingStatusPending,
		CreatedAt:      s.now(),
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrDuplicateBooking) {
			return nil, domain.ErrDuplicateBooking
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}
