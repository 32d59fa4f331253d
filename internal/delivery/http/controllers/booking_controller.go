package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "bandportal/internal/delivery/http/helpers"
	"bandportal/internal/domain"
)

// ApplyBookingRequest is the request body for POST /bookings
type ApplyBookingRequest struct {
	EventID string `json:"event_id"`
	Notes   string `json:"notes"`
}

// Validate implements Validator.
func (a ApplyBookingRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.EventID) == "" {
		errs = append(errs, "event_id is required")
	}
	return errs
}

type BookingController struct {
	Logger   *slog.Logger
	Bookings domain.BookingService
	Bands    domain.BandRepository
}

func NewBookingController(logger *slog.Logger, bookings domain.BookingService, bands domain.BandRepository) *BookingController {
	return &BookingController{Logger: logger, Bookings: bookings, Bands: bands}
}

// List godoc
// @Summary List the authenticated band's booking applications
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=[]domain.Booking}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /bookings [get]
func (c *BookingController) List(w http.ResponseWriter, r *http.Request) {
	b := band(w, r, c.Bands, c.Logger)
	if b == nil {
		return
	}
	bookings, err := c.Bookings.ListFor(r.Context(), b.ID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "something went wrong, try again")
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, bookings)
}

// Apply godoc
// @Summary Apply to perform at an event
// @Description Creates a pending application from the authenticated band to the event, snapshotting the event fields. Booked events and duplicate pending applications are rejected.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ApplyBookingRequest true "Application"
// @Success 201 {object} helpers.APIResponse{data=domain.Booking}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /bookings [post]
func (c *BookingController) Apply(w http.ResponseWriter, r *http.Request) {
	b := band(w, r, c.Bands, c.Logger)
	if b == nil {
		return
	}
	var req ApplyBookingRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.Bookings.Apply(r.Context(), b, req.EventID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrEventBooked):
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "event is already booked")
		case errors.Is(err, domain.ErrDuplicateBooking):
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "application already pending for this event")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "something went wrong, try again")
		}
		return
	}

	h.WriteJSONSuccess(w, http.StatusCreated, booking)
}
