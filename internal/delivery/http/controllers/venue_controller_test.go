package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hallbooking/internal/delivery/http/helpers"
	"hallbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVenueService implements domain.VenueService for handler tests.
type fakeVenueService struct {
	createErr          error
	getErr             error
	getResult          *domain.Venue
	listErr            error
	listResult         []*domain.Venue
	updateErr          error
	availabilityErr    error
	availabilityResult *domain.DayAvailability

	lastAvailabilityVenueID string
	lastAvailabilityDate    string
}

func (f *fakeVenueService) CreateVenue(ctx context.Context, venue *domain.Venue) error {
	if f.createErr != nil {
		return f.createErr
	}
	venue.ID = "vn-created"
	return nil
}

func (f *fakeVenueService) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeVenueService) ListVenues(ctx context.Context) ([]*domain.Venue, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeVenueService) UpdateVenue(ctx context.Context, venue *domain.Venue) error {
	return f.updateErr
}

func (f *fakeVenueService) Availability(ctx context.Context, venueID, date string) (*domain.DayAvailability, error) {
	f.lastAvailabilityVenueID = venueID
	f.lastAvailabilityDate = date
	if f.availabilityErr != nil {
		return nil, f.availabilityErr
	}
	return f.availabilityResult, nil
}

func TestVenueController_CreateVenue(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"name":"Function Hall","location":"Level 1","capacity":100,"opening_hours":"0700 - 2300"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           `{"opening_hours":"0700 - 2300"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "name is required",
		},
		{
			name:           "malformed opening hours",
			body:           `{"name":"Hall","opening_hours":"7am - 11pm"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "opening_hours",
		},
		{
			name:           "unknown field rejected",
			body:           `{"name":"Hall","opening_hours":"0700 - 2300","id":"custom"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:           "service error",
			body:           `{"name":"Hall","opening_hours":"0700 - 2300"}`,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeVenueService{createErr: tt.fakeErr}
			ctrl := NewVenueController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/venues", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.CreateVenue(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestVenueController_Availability(t *testing.T) {
	day := &domain.DayAvailability{
		VenueID:   "vn-1",
		OpenSlots: "1,2,3,4",
		Approved:  "2",
		Pending:   "3",
	}

	t.Run("success", func(t *testing.T) {
		fake := &fakeVenueService{availabilityResult: day}
		ctrl := NewVenueController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/venues/vn-1/availability?date=2026-09-10", nil)
		req.SetPathValue("venueID", "vn-1")
		rr := httptest.NewRecorder()

		ctrl.Availability(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "vn-1", fake.lastAvailabilityVenueID)
		assert.Equal(t, "2026-09-10", fake.lastAvailabilityDate)
	})

	t.Run("missing date", func(t *testing.T) {
		ctrl := NewVenueController(testLogger, &fakeVenueService{})
		req := httptest.NewRequest(http.MethodGet, "/venues/vn-1/availability", nil)
		req.SetPathValue("venueID", "vn-1")
		rr := httptest.NewRecorder()

		ctrl.Availability(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid date from service", func(t *testing.T) {
		fake := &fakeVenueService{availabilityErr: domain.ErrInvalidInput}
		ctrl := NewVenueController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/venues/vn-1/availability?date=10-09-2026", nil)
		req.SetPathValue("venueID", "vn-1")
		rr := httptest.NewRecorder()

		ctrl.Availability(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown venue", func(t *testing.T) {
		fake := &fakeVenueService{availabilityErr: domain.ErrNotFound}
		ctrl := NewVenueController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/venues/vn-9/availability?date=2026-09-10", nil)
		req.SetPathValue("venueID", "vn-9")
		rr := httptest.NewRecorder()

		ctrl.Availability(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
