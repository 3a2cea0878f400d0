package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"hallbooking/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		booking *domain.Booking
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			booking: &domain.Booking{
				VenueID:   "venue-1",
				UserID:    "user-1",
				Date:      1750003200,
				Slots:     "14,15,16",
				Purpose:   "band practice",
				Status:    domain.BookingStatusPending,
				CreatedAt: createdAt,
				UpdatedAt: createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings`).
					WithArgs("venue-1", "user-1", int64(1750003200), "14,15,16", "band practice", domain.BookingStatusPending, createdAt, createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("booking-uuid-1"))
			},
			wantID: "booking-uuid-1",
		},
		{
			name: "db error",
			booking: &domain.Booking{
				VenueID:   "venue-1",
				UserID:    "user-1",
				Status:    domain.BookingStatusPending,
				CreatedAt: createdAt,
				UpdatedAt: createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewBookingRepository(db)
			err = repo.Create(ctx, tt.booking)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.booking.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_ListActiveByVenueAndDate(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "venue_id", "user_id", "date", "slots", "purpose", "status", "created_at", "updated_at"}

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, venue_id, user_id, date, slots, purpose, status, created_at, updated_at\s+FROM bookings`).
		WithArgs("venue-1", int64(1750003200), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("b-1", "venue-1", "user-1", int64(1750003200), "1,2", "yoga", "approved", createdAt, createdAt).
			AddRow("b-2", "venue-1", "user-2", int64(1750003200), "5,6", "dance", "pending", createdAt, createdAt))

	repo := NewBookingRepository(db)
	bookings, err := repo.ListActiveByVenueAndDate(ctx, "venue-1", 1750003200)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	require.Equal(t, "1,2", bookings[0].Slots)
	require.Equal(t, domain.BookingStatusPending, bookings[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "venue_id", "user_id", "date", "slots", "purpose", "status", "created_at", "updated_at"}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE bookings`).
			WithArgs("b-1", domain.BookingStatusApproved).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("b-1", "venue-1", "user-1", int64(1750003200), "1,2", "yoga", "approved", createdAt, createdAt))

		repo := NewBookingRepository(db)
		b, err := repo.UpdateStatus(ctx, "b-1", domain.BookingStatusApproved)
		require.NoError(t, err)
		require.Equal(t, domain.BookingStatusApproved, b.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE bookings`).
			WithArgs("missing", domain.BookingStatusRejected).
			WillReturnError(sql.ErrNoRows)

		repo := NewBookingRepository(db)
		_, err = repo.UpdateStatus(ctx, "missing", domain.BookingStatusRejected)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
