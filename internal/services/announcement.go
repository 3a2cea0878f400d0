package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hallbooking/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type announcementService struct {
	repo           domain.AnnouncementRepository
	notifier       domain.AnnouncementNotifier
	contextTimeout time.Duration
}

// NewAnnouncementService creates an AnnouncementService. Published
// announcements are pushed to the notifier on a best-effort basis.
func NewAnnouncementService(repo domain.AnnouncementRepository, notifier domain.AnnouncementNotifier, timeout time.Duration) domain.AnnouncementService {
	return &announcementService{
		repo:           repo,
		notifier:       notifier,
		contextTimeout: timeout,
	}
}

func (s *announcementService) Publish(ctx context.Context, a *domain.Announcement) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return fmt.Errorf("%w: announcement title is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(a.Body) == "" {
		return fmt.Errorf("%w: announcement body is required", domain.ErrInvalidInput)
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	if err := s.repo.Create(ctx, a); err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}

	go s.notifier.NotifyAnnouncement(context.WithoutCancel(ctx), a)
	return nil
}

func (s *announcementService) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Announcement, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return s.repo.List(ctx, p)
}
