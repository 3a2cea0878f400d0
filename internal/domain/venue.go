package domain

import (
	"context"
	"time"
)

// Venue represents a bookable hall venue (function room, band room, court).
// OpeningHours is the "HHMM - HHMM" specification parsed by the timeslot
// package; slot indices derived from it bound what can be booked.
// swagger:model Venue
type Venue struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Capacity     int       `json:"capacity"`
	OpeningHours string    `json:"opening_hours"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewVenue returns a new Venue with the given fields. ID is typically set by the repository on create.
func NewVenue(name, location string, capacity int, openingHours, description string, createdAt, updatedAt time.Time) *Venue {
	return &Venue{
		Name:         name,
		Location:     location,
		Capacity:     capacity,
		OpeningHours: openingHours,
		Description:  description,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// DayAvailability describes one venue day: the slots the venue is open for
// and the slot-sets already taken by approved and pending bookings.
// swagger:model DayAvailability
type DayAvailability struct {
	VenueID   string `json:"venue_id"`
	Date      int64  `json:"date"`
	OpenSlots string `json:"open_slots"`
	Approved  string `json:"approved_slots"`
	Pending   string `json:"pending_slots"`
}

// VenueRepository defines the interface for venue storage
type VenueRepository interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context) ([]*Venue, error)
	Update(ctx context.Context, venue *Venue) error
}

// VenueService defines the business logic for venue administration and
// availability lookups.
type VenueService interface {
	CreateVenue(ctx context.Context, venue *Venue) error
	GetVenue(ctx context.Context, id string) (*Venue, error)
	ListVenues(ctx context.Context) ([]*Venue, error)
	UpdateVenue(ctx context.Context, venue *Venue) error
	// Availability returns the day picture for the given venue and
	// "YYYY-MM-DD" date. A date that fails canonicalization yields ErrInvalidInput.
	Availability(ctx context.Context, venueID, date string) (*DayAvailability, error)
}
