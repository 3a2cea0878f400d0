package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hallbooking/internal/calendardate"
	"hallbooking/internal/domain"
	"hallbooking/internal/timeslot"
)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	venueRepo      domain.VenueRepository
	userRepo       domain.UserRepository
	emailService   domain.EmailService
	notifier       domain.BookingNotifier
	minLeadDays    int
	contextTimeout time.Duration
}

// NewBookingService creates a BookingService. minLeadDays is the minimum
// number of days between a request and the booked date (0 allows same-day).
func NewBookingService(bookingRepo domain.BookingRepository, venueRepo domain.VenueRepository, userRepo domain.UserRepository, emailService domain.EmailService, notifier domain.BookingNotifier, minLeadDays int, timeout time.Duration) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		venueRepo:      venueRepo,
		userRepo:       userRepo,
		emailService:   emailService,
		notifier:       notifier,
		minLeadDays:    minLeadDays,
		contextTimeout: timeout,
	}
}

// Request runs the full conflict check and creates a pending booking.
//
// The check-then-create sequence is not atomic: two racing requests for the
// same slots can both pass the check. The persistence layer is expected to
// arbitrate; see the repository docs.
func (s *bookingService) Request(ctx context.Context, venueID, userID, date, slots, purpose string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ts := calendardate.ToUnixDay(date)
	if ts == 0 {
		return nil, fmt.Errorf("%w: invalid date %q", domain.ErrInvalidInput, date)
	}
	if !calendardate.IsSameOrAfter(ts, s.minLeadDays) {
		return nil, domain.ErrBookingLeadTime
	}
	if len(timeslot.ParseSet(slots)) == 0 {
		return nil, fmt.Errorf("%w: empty slot set", domain.ErrInvalidInput)
	}

	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	if err := s.checkConflicts(ctx, venue, ts, slots, false); err != nil {
		return nil, err
	}

	now := time.Now()
	booking := domain.NewBooking(venueID, userID, ts, slots, strings.TrimSpace(purpose), now, now)
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if s.notifier != nil {
		go s.notifier.NotifyBookingRequested(context.WithoutCancel(ctx), booking, venue)
	}
	return booking, nil
}

// checkConflicts verifies the slot-set sits inside the venue's opening hours
// and does not intersect an existing booking. New requests conflict with both
// pending and approved bookings; when approvedOnly is set only approved ones
// count, so queued requests for the same slots cannot block each other from
// approval.
func (s *bookingService) checkConflicts(ctx context.Context, venue *domain.Venue, date int64, slots string, approvedOnly bool) error {
	openStart, openEnd, ok := timeslot.ParseOpeningHours(venue.OpeningHours)
	if !ok {
		return fmt.Errorf("venue %s has malformed opening hours %q", venue.ID, venue.OpeningHours)
	}
	if !timeslot.IsSubset(slots, timeslot.FormatRange(openStart, openEnd)) {
		return domain.ErrOutsideOpeningHours
	}

	existing, err := s.bookingRepo.ListActiveByVenueAndDate(ctx, venue.ID, date)
	if err != nil {
		return fmt.Errorf("list bookings: %w", err)
	}
	for _, b := range existing {
		if approvedOnly && b.Status != domain.BookingStatusApproved {
			continue
		}
		if timeslot.Intersects(slots, b.Slots) {
			return domain.ErrSlotConflict
		}
	}
	return nil
}

func (s *bookingService) Approve(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.decide(ctx, bookingID, domain.BookingStatusApproved)
}

func (s *bookingService) Reject(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.decide(ctx, bookingID, domain.BookingStatusRejected)
}

func (s *bookingService) decide(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPending
	}

	venue, err := s.venueRepo.GetByID(ctx, booking.VenueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	// Approving must re-check against approved bookings: another request may
	// have been approved for the same slots while this one sat in the queue.
	// Other pending requests do not count here.
	if status == domain.BookingStatusApproved {
		if err := s.checkConflicts(ctx, venue, booking.Date, booking.Slots, true); err != nil {
			return nil, err
		}
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.notifyDecision(ctx, updated, venue)
	return updated, nil
}

func (s *bookingService) notifyDecision(ctx context.Context, booking *domain.Booking, venue *domain.Venue) {
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		// Decision stands; notification is best-effort.
		return
	}
	if s.notifier != nil {
		go s.notifier.NotifyBookingDecision(context.WithoutCancel(ctx), booking, venue, user)
	}
	if s.emailService == nil {
		return
	}
	data := &domain.BookingDecisionEmailData{
		Email:     user.Email,
		Name:      user.Name,
		VenueName: venue.Name,
		Date:      formatBookingDate(booking.Date),
		TimeRange: bookedTimeRange(booking.Slots),
	}
	bg := context.WithoutCancel(ctx)
	if booking.Status == domain.BookingStatusApproved {
		go s.emailService.SendBookingApproved(bg, data)
	} else {
		go s.emailService.SendBookingRejected(bg, data)
	}
}

func (s *bookingService) Cancel(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if booking.Status != domain.BookingStatusPending && booking.Status != domain.BookingStatusApproved {
		return nil, domain.ErrBookingNotPending
	}
	updated, err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return updated, nil
}

func (s *bookingService) ListMine(ctx context.Context, userID string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.bookingRepo.ListByUserID(ctx, userID)
}

func formatBookingDate(ts int64) string {
	d, ok := calendardate.FromUnixDay(ts)
	if !ok {
		return ""
	}
	return d.Format(calendardate.Layout)
}

// bookedTimeRange renders a slot-set as the clock range covering it.
func bookedTimeRange(slots string) string {
	indices := timeslot.ParseSet(slots)
	if len(indices) == 0 {
		return ""
	}
	min, max := indices[0], indices[0]
	for _, s := range indices[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	first, ok1 := timeslot.SlotToClock(min)
	last, ok2 := timeslot.SlotToClock(max)
	if !ok1 || !ok2 {
		return ""
	}
	return first.Start + " - " + last.End
}
