package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"bandportal/internal/domain"
)

var clockRegexp = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type eventService struct {
	eventRepo domain.EventRepository
	now       func() time.Time
}

// NewEventService creates an EventService with the given repository.
func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

func (s *eventService) ListVisibleTo(ctx context.Context, bandEmail string) ([]*domain.Event, error) {
	events, err := s.eventRepo.ListByBandEmail(ctx, bandEmail)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) Create(ctx context.Context, band *domain.Band, draft *domain.EventDraft) (*domain.Event, error) {
	if band == nil {
		return nil, fmt.Errorf("band profile is required")
	}
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if err := validateEventTimes(draft.StartTime, draft.EndTime); err != nil {
		return nil, err
	}

	event := &domain.Event{
		Title:       title,
		Description: strings.TrimSpace(draft.Description),
		Date:        draft.Date,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Venue:       strings.TrimSpace(draft.Venue),
		BandEmail:   band.Email,
		BandID:      band.ID,
		BandName:    band.BandName,
		Status:      domain.EventStatusPending,
		CreatedAt:   s.now(),
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// validateEventTimes checks the ordering of the draft's clock times. The
// check is skipped when either time is absent. Zero-padded HH:MM strings
// order correctly under string comparison.
func validateEventTimes(start, end string) error {
	if start == "" || end == "" {
		return nil
	}
	if !clockRegexp.MatchString(start) || !clockRegexp.MatchString(end) {
		return domain.ErrInvalidTimeFormat
	}
	if end <= start {
		return domain.ErrInvalidEventTimes
	}
	return nil
}
