package controllers

import (
	"log/slog"
	"net/http"

	h "bandportal/internal/delivery/http/helpers"
	"bandportal/internal/delivery/http/middleware"
	"bandportal/internal/domain"
)

type PortalController struct {
	Logger *slog.Logger
	Portal domain.PortalService
}

func NewPortalController(logger *slog.Logger, portal domain.PortalService) *PortalController {
	return &PortalController{Logger: logger, Portal: portal}
}

// Get godoc
// @Summary Load the portal snapshot for the authenticated band
// @Description Re-reads the band profile, the events visible to it, and its booking applications. A user without a band profile gets an empty snapshot with onboarded=false, not an error.
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=domain.PortalSnapshot}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /portal [get]
func (c *PortalController) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
		return
	}
	snapshot, err := c.Portal.Load(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "something went wrong, try again")
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, snapshot)
}
