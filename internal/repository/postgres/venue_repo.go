package postgres

import (
	"context"
	"database/sql"
	"errors"

	"hallbooking/internal/domain"
)

type venueRepository struct {
	DB *sql.DB
}

func NewVenueRepository(db *sql.DB) domain.VenueRepository {
	return &venueRepository{DB: db}
}

func (r *venueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `
		INSERT INTO venues (name, location, capacity, opening_hours, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, v.Name, v.Location, v.Capacity, v.OpeningHours, v.Description, v.CreatedAt, v.UpdatedAt).Scan(&v.ID)
}

func (r *venueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `
		SELECT id, name, location, capacity, opening_hours, description, created_at, updated_at
		FROM venues
		WHERE id = $1
	`
	v := &domain.Venue{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Location, &v.Capacity, &v.OpeningHours, &v.Description, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *venueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	query := `
		SELECT id, name, location, capacity, opening_hours, description, created_at, updated_at
		FROM venues
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		v := &domain.Venue{}
		if err := rows.Scan(&v.ID, &v.Name, &v.Location, &v.Capacity, &v.OpeningHours, &v.Description, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func (r *venueRepository) Update(ctx context.Context, v *domain.Venue) error {
	query := `
		UPDATE venues
		SET name = $2, location = $3, capacity = $4, opening_hours = $5, description = $6, updated_at = $7
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query, v.ID, v.Name, v.Location, v.Capacity, v.OpeningHours, v.Description, v.UpdatedAt)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
