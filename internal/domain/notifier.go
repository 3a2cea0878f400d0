package domain

import "context"

// BookingNotifier pushes booking lifecycle notifications to an external
// channel (Telegram). Implementations must be safe to call from goroutines;
// failures are logged, never propagated to the request path.
type BookingNotifier interface {
	NotifyBookingRequested(ctx context.Context, booking *Booking, venue *Venue)
	NotifyBookingDecision(ctx context.Context, booking *Booking, venue *Venue, user *User)
}

// AnnouncementNotifier broadcasts a published announcement.
type AnnouncementNotifier interface {
	NotifyAnnouncement(ctx context.Context, a *Announcement)
}
