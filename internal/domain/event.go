package domain

import (
	"context"
	"time"
)

// Event statuses. Administrators may set further values out of band; this
// core only ever writes "pending" and treats "booked" as read-only state.
const (
	EventStatusPending = "pending"
	EventStatusBooked  = "booked"
)

// Event is a performance slot published to a band's email address, or
// created by a band and awaiting approval.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`       // YYYY-MM-DD
	StartTime   string    `json:"start_time"` // HH:MM, 24-hour
	EndTime     string    `json:"end_time"`   // HH:MM, 24-hour
	Venue       string    `json:"venue,omitempty"`
	BandEmail   string    `json:"band_email"`
	BandID      string    `json:"band_id,omitempty"`
	BandName    string    `json:"band_name,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventDraft carries the caller-supplied fields for a new event.
type EventDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Venue       string `json:"venue"`
}

// EventRepository defines storage operations for events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// ListByBandEmail returns all events published to the given email.
	// Order is unspecified; callers must not depend on it.
	ListByBandEmail(ctx context.Context, bandEmail string) ([]*Event, error)
}

// EventService is the catalog of events a band can see and create.
type EventService interface {
	ListVisibleTo(ctx context.Context, bandEmail string) ([]*Event, error)
	// Create validates the draft (EndTime must be later than StartTime
	// when both are present) and persists a pending event attributed to
	// the band. Returns ErrInvalidEventTimes before any write on a
	// time-ordering violation.
	Create(ctx context.Context, band *Band, draft *EventDraft) (*Event, error)
}
