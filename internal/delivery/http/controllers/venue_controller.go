package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"hallbooking/internal/delivery/http/helpers"
	"hallbooking/internal/domain"
	"hallbooking/internal/timeslot"
)

// VenueRequest is the request body for POST /venues and PATCH /venues/{venueID}.
type VenueRequest struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Capacity     int    `json:"capacity"`
	OpeningHours string `json:"opening_hours"`
	Description  string `json:"description"`
}

// Validate implements Validator.
func (v VenueRequest) Validate() []string {
	var errs []string
	if v.Name == "" {
		errs = append(errs, "name is required")
	}
	if v.Capacity < 0 {
		errs = append(errs, "capacity must not be negative")
	}
	if _, _, ok := timeslot.ParseOpeningHours(v.OpeningHours); !ok {
		errs = append(errs, "opening_hours must be of the form \"HHMM - HHMM\"")
	}
	return errs
}

type VenueController struct {
	Logger  *slog.Logger
	Service domain.VenueService
}

func NewVenueController(logger *slog.Logger, svc domain.VenueService) *VenueController {
	return &VenueController{Logger: logger, Service: svc}
}

// CreateVenue godoc
// @Summary Create a venue
// @Description Admin only. Opening hours bound the bookable slot range.
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param venue body VenueRequest true "Venue data"
// @Success 201 {object} helpers.APIResponse "data contains the created venue"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /venues [post]
func (c *VenueController) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var req VenueRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	venue := domain.NewVenue(req.Name, req.Location, req.Capacity, req.OpeningHours, req.Description, now, now)
	if err := c.Service.CreateVenue(r.Context(), venue); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, venue)
}

// ListVenues godoc
// @Summary List all venues
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the venue list"
// @Router /venues [get]
func (c *VenueController) ListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := c.Service.ListVenues(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venues)
}

// GetVenue godoc
// @Summary Get a venue by ID
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param venueID path string true "Venue ID"
// @Success 200 {object} helpers.APIResponse "data contains the venue"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /venues/{venueID} [get]
func (c *VenueController) GetVenue(w http.ResponseWriter, r *http.Request) {
	venueID := r.PathValue("venueID")
	if venueID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing venueID")
		return
	}
	venue, err := c.Service.GetVenue(r.Context(), venueID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venue)
}

// UpdateVenue godoc
// @Summary Update a venue
// @Description Admin only. The full venue body replaces the stored fields.
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param venueID path string true "Venue ID"
// @Param venue body VenueRequest true "Venue data"
// @Success 200 {object} helpers.APIResponse "data contains the updated venue"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /venues/{venueID} [patch]
func (c *VenueController) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	venueID := r.PathValue("venueID")
	if venueID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing venueID")
		return
	}
	var req VenueRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	venue, err := c.Service.GetVenue(r.Context(), venueID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	venue.Name = req.Name
	venue.Location = req.Location
	venue.Capacity = req.Capacity
	venue.OpeningHours = req.OpeningHours
	venue.Description = req.Description
	if err := c.Service.UpdateVenue(r.Context(), venue); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venue)
}

// Availability godoc
// @Summary Get a venue's slot availability for a date
// @Description Returns the open slot range plus approved and pending slot-sets for the given "YYYY-MM-DD" date.
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param venueID path string true "Venue ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data contains the day availability"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /venues/{venueID}/availability [get]
func (c *VenueController) Availability(w http.ResponseWriter, r *http.Request) {
	venueID := r.PathValue("venueID")
	if venueID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing venueID")
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing date query parameter")
		return
	}
	day, err := c.Service.Availability(r.Context(), venueID, date)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, day)
}
