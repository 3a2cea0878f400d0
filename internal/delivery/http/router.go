package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"hallbooking/internal/delivery/http/controllers"
	"hallbooking/internal/delivery/http/middleware"
	"hallbooking/internal/domain"
)

// Controllers bundles the controllers the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Venue        *controllers.VenueController
	Booking      *controllers.BookingController
	Attendance   *controllers.AttendanceController
	Announcement *controllers.AnnouncementController
}

// NewRouter initializes the HTTP router with all application routes.
// Admin-only routes are wrapped with RequireRole(admin) inside RequireAuth.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(verifier, logger)
	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.RequireRole(domain.RoleAdmin)(next))
	}

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("GET /auth/me", auth(c.Auth.Me))

	// Venues
	mux.HandleFunc("POST /venues", admin(c.Venue.CreateVenue))
	mux.HandleFunc("GET /venues", auth(c.Venue.ListVenues))
	mux.HandleFunc("GET /venues/{venueID}", auth(c.Venue.GetVenue))
	mux.HandleFunc("PATCH /venues/{venueID}", admin(c.Venue.UpdateVenue))
	mux.HandleFunc("GET /venues/{venueID}/availability", auth(c.Venue.Availability))

	// Bookings
	mux.HandleFunc("POST /bookings", auth(c.Booking.RequestBooking))
	mux.HandleFunc("GET /bookings/mine", auth(c.Booking.ListMine))
	mux.HandleFunc("POST /bookings/{bookingID}/approve", admin(c.Booking.Approve))
	mux.HandleFunc("POST /bookings/{bookingID}/reject", admin(c.Booking.Reject))
	mux.HandleFunc("POST /bookings/{bookingID}/cancel", auth(c.Booking.Cancel))

	// CCAs and attendance
	mux.HandleFunc("POST /ccas", admin(c.Attendance.CreateCCA))
	mux.HandleFunc("GET /ccas", auth(c.Attendance.ListCCAs))
	mux.HandleFunc("POST /ccas/{ccaID}/sessions", admin(c.Attendance.CreateSession))
	mux.HandleFunc("GET /ccas/{ccaID}/sessions", auth(c.Attendance.ListSessions))
	mux.HandleFunc("POST /sessions/{sessionID}/attendance", admin(c.Attendance.ImportRows))
	mux.HandleFunc("POST /sessions/{sessionID}/attendance/import", admin(c.Attendance.ImportFromSheet))
	mux.HandleFunc("GET /sessions/{sessionID}/attendance", auth(c.Attendance.ListEntries))

	// Announcements
	mux.HandleFunc("POST /announcements", admin(c.Announcement.Publish))
	mux.HandleFunc("GET /announcements", auth(c.Announcement.List))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
