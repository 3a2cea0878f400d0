package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"hallbooking/internal/delivery/http/helpers"
	"hallbooking/internal/domain"
)

// CreateCCARequest is the request body for POST /ccas.
type CreateCCARequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Validate implements Validator.
func (c CreateCCARequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// CreateSessionRequest is the request body for POST /ccas/{ccaID}/sessions.
type CreateSessionRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

// Validate implements Validator.
func (c CreateSessionRequest) Validate() []string {
	var errs []string
	if c.Date == "" {
		errs = append(errs, "date is required")
	}
	return errs
}

// ImportRowsRequest is the request body for POST /sessions/{sessionID}/attendance.
// Each row is [email, name].
type ImportRowsRequest struct {
	Rows [][]string `json:"rows"`
}

// Validate implements Validator.
func (i ImportRowsRequest) Validate() []string {
	var errs []string
	if len(i.Rows) == 0 {
		errs = append(errs, "rows must not be empty")
	}
	return errs
}

// ImportSheetRequest is the request body for POST /sessions/{sessionID}/attendance/import.
type ImportSheetRequest struct {
	URL string `json:"url"`
}

// Validate implements Validator.
func (i ImportSheetRequest) Validate() []string {
	var errs []string
	if i.URL == "" {
		errs = append(errs, "url is required")
	}
	return errs
}

// ImportResult is the data payload for attendance imports.
type ImportResult struct {
	Imported int `json:"imported"`
}

type AttendanceController struct {
	Logger  *slog.Logger
	Service domain.AttendanceService
}

func NewAttendanceController(logger *slog.Logger, svc domain.AttendanceService) *AttendanceController {
	return &AttendanceController{Logger: logger, Service: svc}
}

// CreateCCA godoc
// @Summary Create a CCA
// @Description Admin only.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param cca body CreateCCARequest true "CCA data"
// @Success 201 {object} helpers.APIResponse "data contains the created CCA"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /ccas [post]
func (c *AttendanceController) CreateCCA(w http.ResponseWriter, r *http.Request) {
	var req CreateCCARequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	cca := &domain.CCA{Name: req.Name, Category: req.Category}
	if err := c.Service.CreateCCA(r.Context(), cca); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, cca)
}

// ListCCAs godoc
// @Summary List all CCAs
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the CCA list"
// @Router /ccas [get]
func (c *AttendanceController) ListCCAs(w http.ResponseWriter, r *http.Request) {
	ccas, err := c.Service.ListCCAs(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ccas)
}

// CreateSession godoc
// @Summary Create a CCA session
// @Description Admin only. Date must be "YYYY-MM-DD".
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ccaID path string true "CCA ID"
// @Param session body CreateSessionRequest true "Session data"
// @Success 201 {object} helpers.APIResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /ccas/{ccaID}/sessions [post]
func (c *AttendanceController) CreateSession(w http.ResponseWriter, r *http.Request) {
	ccaID := r.PathValue("ccaID")
	if ccaID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing ccaID")
		return
	}
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.CreateSession(r.Context(), ccaID, req.Title, req.Date)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, session)
}

// ListSessions godoc
// @Summary List a CCA's sessions
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param ccaID path string true "CCA ID"
// @Success 200 {object} helpers.APIResponse "data contains the session list"
// @Router /ccas/{ccaID}/sessions [get]
func (c *AttendanceController) ListSessions(w http.ResponseWriter, r *http.Request) {
	ccaID := r.PathValue("ccaID")
	if ccaID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing ccaID")
		return
	}
	sessions, err := c.Service.ListSessions(r.Context(), ccaID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ImportRows godoc
// @Summary Import attendance rows for a session
// @Description Admin only. Rows are [email, name] pairs; duplicates by email or name are dropped, first occurrence wins.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Param rows body ImportRowsRequest true "Attendance rows"
// @Success 200 {object} helpers.APIResponse "data contains the imported count"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /sessions/{sessionID}/attendance [post]
func (c *AttendanceController) ImportRows(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	var req ImportRowsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	imported, err := c.Service.ImportRows(r.Context(), sessionID, req.Rows)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ImportResult{Imported: imported})
}

// ImportFromSheet godoc
// @Summary Import attendance from a published spreadsheet CSV
// @Description Admin only. Fetches the CSV export URL and imports its rows.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Param sheet body ImportSheetRequest true "Sheet CSV URL"
// @Success 200 {object} helpers.APIResponse "data contains the imported count"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /sessions/{sessionID}/attendance/import [post]
func (c *AttendanceController) ImportFromSheet(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	var req ImportSheetRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	imported, err := c.Service.ImportFromSheet(r.Context(), sessionID, req.URL)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ImportResult{Imported: imported})
}

// ListEntries godoc
// @Summary List a session's attendance entries
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} helpers.APIResponse "data contains the attendance entries"
// @Router /sessions/{sessionID}/attendance [get]
func (c *AttendanceController) ListEntries(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	entries, err := c.Service.ListEntries(r.Context(), sessionID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}
