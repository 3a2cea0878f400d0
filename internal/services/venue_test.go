package services

import (
	"context"
	"testing"
	"time"

	"hallbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVenueService(vr domain.VenueRepository, br domain.BookingRepository) domain.VenueService {
	return NewVenueService(vr, br, 2*time.Second)
}

func TestCreateVenue(t *testing.T) {
	tests := []struct {
		name    string
		venue   *domain.Venue
		wantErr bool
	}{
		{
			name:  "valid venue",
			venue: &domain.Venue{Name: "Band Room", OpeningHours: "0700 - 2300", Capacity: 20},
		},
		{
			name:    "missing name",
			venue:   &domain.Venue{OpeningHours: "0700 - 2300"},
			wantErr: true,
		},
		{
			name:    "malformed opening hours",
			venue:   &domain.Venue{Name: "Band Room", OpeningHours: "7am - 11pm"},
			wantErr: true,
		},
		{
			name:    "negative capacity",
			venue:   &domain.Venue{Name: "Band Room", OpeningHours: "0700 - 2300", Capacity: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestVenueService(newFakeVenueRepo(), newFakeBookingRepo())
			err := svc.CreateVenue(context.Background(), tt.venue)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, tt.venue.ID)
		})
	}
}

func TestVenueAvailability(t *testing.T) {
	date, ts := futureDate(7)

	t.Run("aggregates approved and pending slot-sets", func(t *testing.T) {
		bookingRepo := newFakeBookingRepo()
		svc := newTestVenueService(newFakeVenueRepo(testVenue()), bookingRepo)

		approved := &domain.Booking{VenueID: "vn-1", UserID: "us-1", Date: ts, Slots: "10,11"}
		require.NoError(t, bookingRepo.Create(context.Background(), approved))
		_, err := bookingRepo.UpdateStatus(context.Background(), approved.ID, domain.BookingStatusApproved)
		require.NoError(t, err)

		pending := &domain.Booking{VenueID: "vn-1", UserID: "us-2", Date: ts, Slots: "14,15", Status: domain.BookingStatusPending}
		require.NoError(t, bookingRepo.Create(context.Background(), pending))

		cancelled := &domain.Booking{VenueID: "vn-1", UserID: "us-3", Date: ts, Slots: "20", Status: domain.BookingStatusCancelled}
		require.NoError(t, bookingRepo.Create(context.Background(), cancelled))

		day, err := svc.Availability(context.Background(), "vn-1", date)
		require.NoError(t, err)
		assert.Equal(t, ts, day.Date)
		// 0900 - 2200 opens slots 5 through 30.
		assert.Equal(t, "5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20,21,22,23,24,25,26,27,28,29,30", day.OpenSlots)
		assert.Equal(t, "10,11", day.Approved)
		assert.Equal(t, "14,15", day.Pending)
	})

	t.Run("empty day", func(t *testing.T) {
		svc := newTestVenueService(newFakeVenueRepo(testVenue()), newFakeBookingRepo())

		day, err := svc.Availability(context.Background(), "vn-1", date)
		require.NoError(t, err)
		assert.Empty(t, day.Approved)
		assert.Empty(t, day.Pending)
		assert.NotEmpty(t, day.OpenSlots)
	})

	t.Run("malformed date", func(t *testing.T) {
		svc := newTestVenueService(newFakeVenueRepo(testVenue()), newFakeBookingRepo())

		_, err := svc.Availability(context.Background(), "vn-1", "16/06/2022")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown venue", func(t *testing.T) {
		svc := newTestVenueService(newFakeVenueRepo(), newFakeBookingRepo())

		_, err := svc.Availability(context.Background(), "vn-9", date)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
