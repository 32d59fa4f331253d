package controllers

import (
	"log/slog"
	"net/http"
	"time"

	h "bandportal/internal/delivery/http/helpers"
	"bandportal/internal/domain"
)

// MintInvitationRequest is the request body for POST /invitations.
// TTLHours defaults to the service's standard validity window when zero.
type MintInvitationRequest struct {
	TTLHours int `json:"ttl_hours"`
}

// Validate implements Validator.
func (m MintInvitationRequest) Validate() []string {
	var errs []string
	if m.TTLHours < 0 {
		errs = append(errs, "ttl_hours must not be negative")
	}
	return errs
}

type InvitationController struct {
	Logger      *slog.Logger
	Invitations domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, invitations domain.InvitationService) *InvitationController {
	return &InvitationController{Logger: logger, Invitations: invitations}
}

// Mint godoc
// @Summary Mint a new single-use invitation token
// @Description Creates an unclaimed invitation with the given validity window. Venue staff hand the token to a band out of band.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body MintInvitationRequest true "Validity window (optional)"
// @Success 201 {object} helpers.APIResponse{data=domain.Invitation}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /invitations [post]
func (c *InvitationController) Mint(w http.ResponseWriter, r *http.Request) {
	var req MintInvitationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	inv, err := c.Invitations.Mint(r.Context(), time.Duration(req.TTLHours)*time.Hour)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "something went wrong, try again")
		return
	}

	h.WriteJSONSuccess(w, http.StatusCreated, inv)
}
