package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventbook/internal/delivery/http/controllers"
	"eventbook/internal/delivery/http/middleware"
	"eventbook/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	eventController *controllers.EventController,
	bookingController *controllers.BookingController,
	authController *controllers.AuthController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Events
	mux.HandleFunc("GET /api/events", eventController.ListEvents)
	mux.HandleFunc("GET /api/events/{slug}", eventController.GetEventBySlug)
	mux.HandleFunc("POST /api/events", requireAuth(eventController.CreateEvent))
	mux.HandleFunc("PUT /api/events/{eventID}", requireAuth(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /api/events/{eventID}", requireAuth(eventController.DeleteEvent))

	// Bookings
	mux.HandleFunc("POST /api/bookings", bookingController.CreateBooking)
	mux.HandleFunc("GET /api/bookings", bookingController.ListBookings)
	mux.HandleFunc("PATCH /api/bookings/{bookingID}", bookingController.UpdateBooking)
	mux.HandleFunc("DELETE /api/bookings/{bookingID}", bookingController.DeleteBooking)

	// Auth
	mux.HandleFunc("POST /api/auth/login", authController.Login)

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
