package postgres

import (
	"context"
	"database/sql"

	"hallbooking/internal/domain"
)

type announcementRepository struct {
	DB *sql.DB
}

func NewAnnouncementRepository(db *sql.DB) domain.AnnouncementRepository {
	return &announcementRepository{DB: db}
}

func (r *announcementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	query := `
		INSERT INTO announcements (title, body, author_id, pinned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, a.Title, a.Body, a.AuthorID, a.Pinned, a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
}

func (r *announcementRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Announcement, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM announcements`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, title, body, author_id, pinned, created_at, updated_at
		FROM announcements
		ORDER BY pinned DESC, created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	announcements := make([]*domain.Announcement, 0)
	for rows.Next() {
		a := &domain.Announcement{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.AuthorID, &a.Pinned, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		announcements = append(announcements, a)
	}
	return announcements, total, rows.Err()
}
