package domain

import (
	"context"
	"time"
)

// Booking statuses. Approval and rejection happen out of band; this core
// only writes "pending" and preserves whatever status it reads back.
const (
	BookingStatusPending  = "pending"
	BookingStatusApproved = "approved"
	BookingStatusRejected = "rejected"
)

// Booking is a band's application to perform at an event. The event fields
// are a snapshot taken at application time; later edits to the event do not
// change an existing booking.
// swagger:model Booking
type Booking struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	BandID         string    `json:"band_id"`
	BandName       string    `json:"band_name"`
	BandEmail      string    `json:"band_email"`
	EventTitle     string    `json:"event_title"`
	EventDate      string    `json:"event_date"`
	EventStartTime string    `json:"event_start_time"`
	EventEndTime   string    `json:"event_end_time"`
	Notes          string    `json:"notes,omitempty"`
	Status         string    `json:"status"`
	SelectedDate   *string   `json:"selected_date,omitempty"`
	SelectedTime   *string   `json:"selected_time,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// BookingRepository defines storage operations for bookings.
type BookingRepository interface {
	// Create persists the booking. At most one pending booking per
	// band/event pair is allowed; Create returns ErrDuplicateBooking
	// when that constraint is violated.
	Create(ctx context.Context, booking *Booking) error
	ListByBandID(ctx context.Context, bandID string) ([]*Booking, error)
}

// BookingService is the ledger of booking applications.
type BookingService interface {
	ListFor(ctx context.Context, bandID string) ([]*Booking, error)
	// Apply creates a pending application from the band to the event,
	// snapshotting the event fields. Returns ErrEventBooked if the event
	// is already booked and ErrDuplicateBooking if the band already has a
	// pending application for it.
	Apply(ctx context.Context, band *Band, eventID, notes string) (*Booking, error)
}
