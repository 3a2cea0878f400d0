package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"hallbooking/internal/delivery/http/helpers"
	"hallbooking/internal/delivery/http/middleware"
	"hallbooking/internal/domain"
)

// PublishAnnouncementRequest is the request body for POST /announcements.
type PublishAnnouncementRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Pinned bool   `json:"pinned"`
}

// Validate implements Validator.
func (p PublishAnnouncementRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(p.Body) == "" {
		errs = append(errs, "body is required")
	}
	return errs
}

// AnnouncementListResponse is the data payload for GET /announcements.
type AnnouncementListResponse struct {
	Announcements []*domain.Announcement `json:"announcements"`
	Meta          helpers.PaginationMeta `json:"meta"`
}

type AnnouncementController struct {
	Logger  *slog.Logger
	Service domain.AnnouncementService
}

func NewAnnouncementController(logger *slog.Logger, svc domain.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{Logger: logger, Service: svc}
}

// Publish godoc
// @Summary Publish an announcement
// @Description Admin only. The announcement is broadcast to the configured Telegram channel.
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param announcement body PublishAnnouncementRequest true "Announcement data"
// @Success 201 {object} helpers.APIResponse "data contains the published announcement"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /announcements [post]
func (c *AnnouncementController) Publish(w http.ResponseWriter, r *http.Request) {
	var req PublishAnnouncementRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	a := &domain.Announcement{
		Title:    req.Title,
		Body:     req.Body,
		Pinned:   req.Pinned,
		AuthorID: userID,
	}
	if err := c.Service.Publish(r.Context(), a); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, a)
}

// List godoc
// @Summary List announcements
// @Description Paginated, pinned announcements first, then newest first.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains announcements and pagination meta"
// @Router /announcements [get]
func (c *AnnouncementController) List(w http.ResponseWriter, r *http.Request) {
	p := helpers.ParsePagination(r)
	announcements, total, err := c.Service.List(r.Context(), p)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AnnouncementListResponse{
		Announcements: announcements,
		Meta:          helpers.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}
