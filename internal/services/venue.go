package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"hallbooking/internal/calendardate"
	"hallbooking/internal/domain"
	"hallbooking/internal/timeslot"
)

type venueService struct {
	venueRepo      domain.VenueRepository
	bookingRepo    domain.BookingRepository
	contextTimeout time.Duration
}

// NewVenueService creates a VenueService backed by the given repositories.
func NewVenueService(venueRepo domain.VenueRepository, bookingRepo domain.BookingRepository, timeout time.Duration) domain.VenueService {
	return &venueService{
		venueRepo:      venueRepo,
		bookingRepo:    bookingRepo,
		contextTimeout: timeout,
	}
}

func (s *venueService) CreateVenue(ctx context.Context, venue *domain.Venue) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateVenue(venue); err != nil {
		return err
	}
	now := time.Now()
	venue.CreatedAt = now
	venue.UpdatedAt = now
	return s.venueRepo.Create(ctx, venue)
}

func (s *venueService) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.venueRepo.GetByID(ctx, id)
}

func (s *venueService) ListVenues(ctx context.Context) ([]*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.venueRepo.List(ctx)
}

func (s *venueService) UpdateVenue(ctx context.Context, venue *domain.Venue) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateVenue(venue); err != nil {
		return err
	}
	venue.UpdatedAt = time.Now()
	return s.venueRepo.Update(ctx, venue)
}

func (s *venueService) Availability(ctx context.Context, venueID, date string) (*domain.DayAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ts := calendardate.ToUnixDay(date)
	if ts == 0 {
		return nil, fmt.Errorf("%w: invalid date %q", domain.ErrInvalidInput, date)
	}
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	openStart, openEnd, ok := timeslot.ParseOpeningHours(venue.OpeningHours)
	if !ok {
		return nil, fmt.Errorf("venue %s has malformed opening hours %q", venue.ID, venue.OpeningHours)
	}

	bookings, err := s.bookingRepo.ListActiveByVenueAndDate(ctx, venueID, ts)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	var approved, pending []int
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingStatusApproved:
			approved = append(approved, timeslot.ParseSet(b.Slots)...)
		case domain.BookingStatusPending:
			pending = append(pending, timeslot.ParseSet(b.Slots)...)
		}
	}
	sort.Ints(approved)
	sort.Ints(pending)

	return &domain.DayAvailability{
		VenueID:   venueID,
		Date:      ts,
		OpenSlots: timeslot.FormatRange(openStart, openEnd),
		Approved:  timeslot.FormatSet(approved),
		Pending:   timeslot.FormatSet(pending),
	}, nil
}

func validateVenue(v *domain.Venue) error {
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return fmt.Errorf("%w: venue name is required", domain.ErrInvalidInput)
	}
	if v.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", domain.ErrInvalidInput)
	}
	if _, _, ok := timeslot.ParseOpeningHours(v.OpeningHours); !ok {
		return fmt.Errorf("%w: opening hours must be of the form \"HHMM - HHMM\"", domain.ErrInvalidInput)
	}
	return nil
}
