package domain

import (
	"context"
	"time"
)

// Announcement represents a hall-wide announcement published by an admin.
// swagger:model Announcement
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  string    `json:"author_id"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAnnouncement returns a new Announcement. ID is typically set by the repository on create.
func NewAnnouncement(title, body, authorID string, pinned bool, createdAt, updatedAt time.Time) *Announcement {
	return &Announcement{
		Title:     title,
		Body:      body,
		AuthorID:  authorID,
		Pinned:    pinned,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// AnnouncementRepository defines storage for announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *Announcement) error
	// List returns one page ordered pinned-first then newest-first, plus the
	// total row count for pagination metadata.
	List(ctx context.Context, p PaginationParams) ([]*Announcement, int, error)
}

// AnnouncementService defines the business logic for announcements.
type AnnouncementService interface {
	Publish(ctx context.Context, a *Announcement) error
	List(ctx context.Context, p PaginationParams) ([]*Announcement, int, error)
}
