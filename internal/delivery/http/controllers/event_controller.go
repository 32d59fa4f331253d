package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "bandportal/internal/delivery/http/helpers"
	"bandportal/internal/delivery/http/middleware"
	"bandportal/internal/domain"
)

// CreateEventRequest is the request body for POST /events
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Venue       string `json:"venue"`
}

// Validate implements Validator.
func (e CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(e.Date) == "" {
		errs = append(errs, "date is required")
	}
	return errs
}

type EventController struct {
	Logger *slog.Logger
	Events domain.EventService
	Bands  domain.BandRepository
}

func NewEventController(logger *slog.Logger, events domain.EventService, bands domain.BandRepository) *EventController {
	return &EventController{Logger: logger, Events: events, Bands: bands}
}

// band resolves the caller's band profile from the authenticated user ID.
// Writes the error response itself and returns nil when the caller has no
// band profile yet.
func band(w http.ResponseWriter, r *http.Request, bands domain.BandRepository, logger *slog.Logger) *domain.Band {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
		return nil
	}
	b, err := bands.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeUnauthorized, "no band profile; complete onboarding first")
			return nil
		}
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "something went wrong, try again")
		return nil
	}
	return b
}

// List godoc
// @Summary List events visible to the authenticated band
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=[]domain.Event}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	b := band(w, r, c.Bands, c.Logger)
	if b == nil {
		return
	}
	events, err := c.Events.ListVisibleTo(r.Context(), b.Email)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "something went wrong, try again")
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, events)
}

// Create godoc
// @Summary Create a pending event for the authenticated band
// @Description Validates the draft (end_time must be later than start_time when both are present) and persists a pending event attributed to the band.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEventRequest true "Event draft"
// @Success 201 {object} helpers.APIResponse{data=domain.Event}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	b := band(w, r, c.Bands, c.Logger)
	if b == nil {
		return
	}
	var req CreateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Events.Create(r.Context(), b, &domain.EventDraft{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Venue:       req.Venue,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEventTimes) || errors.Is(err, domain.ErrInvalidTimeFormat) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "something went wrong, try again")
		return
	}

	h.WriteJSONSuccess(w, http.StatusCreated, event)
}
