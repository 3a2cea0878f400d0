package domain

import (
	"context"
	"time"
)

// BookingStatus is the lifecycle state of a booking request.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ActiveBookingStatuses are the states that block other requests for the same
// venue, date, and slots. Rejected and cancelled bookings free their slots.
var ActiveBookingStatuses = []BookingStatus{BookingStatusPending, BookingStatusApproved}

// Booking represents a venue booking request. Date is the canonical
// Unix-timestamp-at-midnight of the booked day; Slots is the comma-joined
// slot-set ("14,15,16") the request covers.
// swagger:model Booking
type Booking struct {
	ID        string        `json:"id"`
	VenueID   string        `json:"venue_id"`
	UserID    string        `json:"user_id"`
	Date      int64         `json:"date"`
	Slots     string        `json:"slots"`
	Purpose   string        `json:"purpose"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewBooking returns a new pending Booking. ID is typically set by the repository on create.
func NewBooking(venueID, userID string, date int64, slots, purpose string, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		VenueID:   venueID,
		UserID:    userID,
		Date:      date,
		Slots:     slots,
		Purpose:   purpose,
		Status:    BookingStatusPending,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// BookingRepository defines the interface for booking storage
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	// ListActiveByVenueAndDate returns pending and approved bookings for the
	// venue on the canonical date. This is the read side of the conflict check.
	ListActiveByVenueAndDate(ctx context.Context, venueID string, date int64) ([]*Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status BookingStatus) (*Booking, error)
}

// BookingService defines the business logic for booking requests and review.
type BookingService interface {
	// Request validates the date and slot-set, runs the conflict check, and
	// creates a pending booking. date is a "YYYY-MM-DD" string.
	Request(ctx context.Context, venueID, userID, date, slots, purpose string) (*Booking, error)
	// Approve re-runs the conflict check against approved bookings before
	// moving the booking out of pending.
	Approve(ctx context.Context, bookingID string) (*Booking, error)
	Reject(ctx context.Context, bookingID string) (*Booking, error)
	// Cancel is owner-only; userID must match the booking's requester.
	Cancel(ctx context.Context, bookingID, userID string) (*Booking, error)
	ListMine(ctx context.Context, userID string) ([]*Booking, error)
}
