package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"bandportal/internal/delivery/http/controllers"
	"bandportal/internal/delivery/http/middleware"
	"bandportal/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Everything past /auth requires a Bearer token.
func NewRouter(
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	portalController *controllers.PortalController,
	eventController *controllers.EventController,
	bookingController *controllers.BookingController,
	invitationController *controllers.InvitationController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Portal
	mux.HandleFunc("GET /portal", auth(portalController.Get))

	// Events
	mux.HandleFunc("GET /events", auth(eventController.List))
	mux.HandleFunc("POST /events", auth(eventController.Create))

	// Bookings
	mux.HandleFunc("GET /bookings", auth(bookingController.List))
	mux.HandleFunc("POST /bookings", auth(bookingController.Apply))

	// Invitations (venue staff)
	mux.HandleFunc("POST /invitations", auth(invitationController.Mint))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
