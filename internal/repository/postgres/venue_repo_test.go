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

func TestVenueRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO venues`).
		WithArgs("Function Hall", "Block A Level 1", 120, "0700 - 2300", "Main multi-purpose hall", createdAt, createdAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("venue-uuid-1"))

	repo := NewVenueRepository(db)
	v := domain.NewVenue("Function Hall", "Block A Level 1", 120, "0700 - 2300", "Main multi-purpose hall", createdAt, createdAt)
	require.NoError(t, repo.Create(ctx, v))
	require.Equal(t, "venue-uuid-1", v.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "name", "location", "capacity", "opening_hours", "description", "created_at", "updated_at"}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name, location, capacity, opening_hours, description, created_at, updated_at\s+FROM venues`).
			WithArgs("venue-1").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("venue-1", "Band Room", "Basement", 15, "0900 - 2200", "", createdAt, createdAt))

		repo := NewVenueRepository(db)
		v, err := repo.GetByID(ctx, "venue-1")
		require.NoError(t, err)
		require.Equal(t, "Band Room", v.Name)
		require.Equal(t, "0900 - 2200", v.OpeningHours)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name, location, capacity, opening_hours, description, created_at, updated_at\s+FROM venues`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewVenueRepository(db)
		_, err = repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestVenueRepository_Update(t *testing.T) {
	ctx := context.Background()
	updatedAt := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE venues`).
			WithArgs("venue-1", "Band Room", "Basement", 20, "0900 - 2300", "refitted", updatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewVenueRepository(db)
		err = repo.Update(ctx, &domain.Venue{
			ID: "venue-1", Name: "Band Room", Location: "Basement",
			Capacity: 20, OpeningHours: "0900 - 2300", Description: "refitted", UpdatedAt: updatedAt,
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows affected maps to not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE venues`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewVenueRepository(db)
		err = repo.Update(ctx, &domain.Venue{ID: "missing"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
