package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"hallbooking/internal/domain"
)

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{DB: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (venue_id, user_id, date, slots, purpose, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, b.VenueID, b.UserID, b.Date, b.Slots, b.Purpose, b.Status, b.CreatedAt, b.UpdatedAt).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `
		SELECT id, venue_id, user_id, date, slots, purpose, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`
	b := &domain.Booking{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.VenueID, &b.UserID, &b.Date, &b.Slots, &b.Purpose, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListActiveByVenueAndDate(ctx context.Context, venueID string, date int64) ([]*domain.Booking, error) {
	statuses := make([]string, len(domain.ActiveBookingStatuses))
	for i, s := range domain.ActiveBookingStatuses {
		statuses[i] = string(s)
	}
	query := `
		SELECT id, venue_id, user_id, date, slots, purpose, status, created_at, updated_at
		FROM bookings
		WHERE venue_id = $1 AND date = $2 AND status = ANY($3)
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, venueID, date, pq.Array(statuses))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `
		SELECT id, venue_id, user_id, date, slots, purpose, status, created_at, updated_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, venue_id, user_id, date, slots, purpose, status, created_at, updated_at
	`
	b := &domain.Booking{}
	err := r.DB.QueryRowContext(ctx, query, id, status).Scan(
		&b.ID, &b.VenueID, &b.UserID, &b.Date, &b.Slots, &b.Purpose, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b := &domain.Booking{}
		if err := rows.Scan(&b.ID, &b.VenueID, &b.UserID, &b.Date, &b.Slots, &b.Purpose, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
