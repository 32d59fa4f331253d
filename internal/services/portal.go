package services

import (
	"context"
	"errors"
	"fmt"

	"bandportal/internal/domain"
)

type portalService struct {
	bandRepo domain.BandRepository
	events   domain.EventService
	bookings domain.BookingService
}

// NewPortalService creates a PortalService over the band repository and the
// event and booking services.
func NewPortalService(bandRepo domain.BandRepository, events domain.EventService, bookings domain.BookingService) domain.PortalService {
	return &portalService{
		bandRepo: bandRepo,
		events:   events,
		bookings: bookings,
	}
}

// Load re-reads the full portal view from storage. A user without a band
// profile gets an empty snapshot with Onboarded false, not an error.
func (s *portalService) Load(ctx context.Context, userID string) (*domain.PortalSnapshot, error) {
	band, err := s.bandRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.PortalSnapshot{
				Onboarded: false,
				Events:    []*domain.Event{},
				Bookings:  []*domain.Booking{},
			}, nil
		}
		return nil, fmt.Errorf("get band: %w", err)
	}

	events, err := s.events.ListVisibleTo(ctx, band.Email)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListFor(ctx, band.ID)
	if err != nil {
		return nil, err
	}

	return &domain.PortalSnapshot{
		Onboarded: true,
		Band:      band,
		Events:    events,
		Bookings:  bookings,
	}, nil
}
