package postgres

import (
	"context"
	"database/sql"
	"errors"

	"hallbooking/internal/domain"
)

type ccaRepository struct {
	DB *sql.DB
}

func NewCCARepository(db *sql.DB) domain.CCARepository {
	return &ccaRepository{DB: db}
}

func (r *ccaRepository) CreateCCA(ctx context.Context, c *domain.CCA) error {
	query := `
		INSERT INTO ccas (name, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, c.Name, c.Category, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
}

func (r *ccaRepository) GetCCAByID(ctx context.Context, id string) (*domain.CCA, error) {
	query := `
		SELECT id, name, category, created_at, updated_at
		FROM ccas
		WHERE id = $1
	`
	c := &domain.CCA{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Category, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *ccaRepository) ListCCAs(ctx context.Context) ([]*domain.CCA, error) {
	query := `
		SELECT id, name, category, created_at, updated_at
		FROM ccas
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ccas := make([]*domain.CCA, 0)
	for rows.Next() {
		c := &domain.CCA{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Category, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		ccas = append(ccas, c)
	}
	return ccas, rows.Err()
}

func (r *ccaRepository) CreateSession(ctx context.Context, s *domain.CCASession) error {
	query := `
		INSERT INTO cca_sessions (cca_id, title, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, s.CCAID, s.Title, s.Date, s.CreatedAt, s.UpdatedAt).Scan(&s.ID)
}

func (r *ccaRepository) GetSessionByID(ctx context.Context, id string) (*domain.CCASession, error) {
	query := `
		SELECT id, cca_id, title, date, created_at, updated_at
		FROM cca_sessions
		WHERE id = $1
	`
	s := &domain.CCASession{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.CCAID, &s.Title, &s.Date, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *ccaRepository) ListSessionsByCCAID(ctx context.Context, ccaID string) ([]*domain.CCASession, error) {
	query := `
		SELECT id, cca_id, title, date, created_at, updated_at
		FROM cca_sessions
		WHERE cca_id = $1
		ORDER BY date DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, ccaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sessions := make([]*domain.CCASession, 0)
	for rows.Next() {
		s := &domain.CCASession{}
		if err := rows.Scan(&s.ID, &s.CCAID, &s.Title, &s.Date, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
