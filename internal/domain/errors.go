package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned on login failure. It deliberately
	// carries no detail about which part of the credentials was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateEmail is returned when registering an email that is
	// already in use.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrInvitationExpired is returned when an invitation token is past
	// its expiry.
	ErrInvitationExpired = errors.New("invitation token expired")

	// ErrInvitationClaimed is returned when an invitation token has
	// already been used.
	ErrInvitationClaimed = errors.New("invitation token already used")

	// ErrBandExists is returned when a band profile already exists at the
	// derived id. Band names that sanitize to the same id collide here.
	ErrBandExists = errors.New("band name already taken")

	// ErrEventBooked is returned when applying to an event that has
	// already been booked.
	ErrEventBooked = errors.New("event is already booked")

	// ErrDuplicateBooking is returned when a band already has a pending
	// application for the same event.
	ErrDuplicateBooking = errors.New("application for this event already pending")

	// ErrInvalidEventTimes is returned when an event's end time is not
	// after its start time.
	ErrInvalidEventTimes = errors.New("end time must be after start time")

	// ErrInvalidTimeFormat is returned when an event time is not a
	// zero-padded HH:MM 24-hour string.
	ErrInvalidTimeFormat = errors.New("times must be in HH:MM 24-hour format")

	// ErrInvalidEmail is returned when registering with a malformed email.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when registering with a password that is
	// too short.
	ErrWeakPassword = errors.New("password must be at least 8 characters")
)
