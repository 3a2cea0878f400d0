package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"hallbooking/internal/delivery/http/helpers"
	"hallbooking/internal/delivery/http/middleware"
	"hallbooking/internal/domain"
	"hallbooking/internal/timeslot"
)

// BookingRequest is the request body for POST /bookings.
type BookingRequest struct {
	VenueID string `json:"venue_id"`
	Date    string `json:"date"`
	Slots   string `json:"slots"`
	Purpose string `json:"purpose"`
}

// Validate implements Validator.
func (b BookingRequest) Validate() []string {
	var errs []string
	if b.VenueID == "" {
		errs = append(errs, "venue_id is required")
	}
	if b.Date == "" {
		errs = append(errs, "date is required")
	}
	if len(timeslot.ParseSet(b.Slots)) == 0 {
		errs = append(errs, "slots must contain at least one slot index")
	}
	return errs
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{Logger: logger, Service: svc}
}

// RequestBooking godoc
// @Summary Request a booking
// @Description Creates a pending booking after the opening-hours and slot-conflict checks pass.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param booking body BookingRequest true "Booking request"
// @Success 201 {object} helpers.APIResponse "data contains the pending booking"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 422 {object} helpers.APIResponse "error.code: bad_request (outside opening hours or lead time)"
// @Router /bookings [post]
func (c *BookingController) RequestBooking(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	booking, err := c.Service.Request(r.Context(), req.VenueID, userID, req.Date, req.Slots, req.Purpose)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, booking)
}

// ListMine godoc
// @Summary List the authenticated user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the booking list"
// @Router /bookings/mine [get]
func (c *BookingController) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	bookings, err := c.Service.ListMine(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bookings)
}

// Approve godoc
// @Summary Approve a pending booking
// @Description Admin only. Re-runs the conflict check before approving.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} helpers.APIResponse "data contains the approved booking"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /bookings/{bookingID}/approve [post]
func (c *BookingController) Approve(w http.ResponseWriter, r *http.Request) {
	c.decide(w, r, c.Service.Approve)
}

// Reject godoc
// @Summary Reject a pending booking
// @Description Admin only.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} helpers.APIResponse "data contains the rejected booking"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /bookings/{bookingID}/reject [post]
func (c *BookingController) Reject(w http.ResponseWriter, r *http.Request) {
	c.decide(w, r, c.Service.Reject)
}

func (c *BookingController) decide(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, bookingID string) (*domain.Booking, error)) {
	bookingID := r.PathValue("bookingID")
	if bookingID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing bookingID")
		return
	}
	booking, err := op(r.Context(), bookingID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}

// Cancel godoc
// @Summary Cancel an own booking
// @Description Owner only. Frees the booking's slots for other requests.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} helpers.APIResponse "data contains the cancelled booking"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /bookings/{bookingID}/cancel [post]
func (c *BookingController) Cancel(w http.ResponseWriter, r *http.Request) {
	bookingID := r.PathValue("bookingID")
	if bookingID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing bookingID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	booking, err := c.Service.Cancel(r.Context(), bookingID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}
