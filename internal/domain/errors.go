package domain

import "errors"

// Sentinel errors shared across services. Controllers translate these into
// HTTP status codes; anything else is treated as an internal error.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

// Booking-specific sentinels.
var (
	// ErrSlotConflict is returned when a requested slot-set intersects an
	// existing approved booking or pending request for the same venue and date.
	ErrSlotConflict = errors.New("requested slots conflict with an existing booking")
	// ErrOutsideOpeningHours is returned when the requested slot-set is not
	// wholly inside the venue's opening-hour slots.
	ErrOutsideOpeningHours = errors.New("requested slots are outside venue opening hours")
	// ErrBookingLeadTime is returned when the requested date is inside the
	// configured minimum lead time.
	ErrBookingLeadTime = errors.New("booking date is inside the minimum lead time")
	// ErrBookingNotPending is returned when approving, rejecting, or cancelling
	// a booking that is not in the pending state.
	ErrBookingNotPending = errors.New("booking is not pending")
)
