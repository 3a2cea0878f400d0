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

func TestAttendanceRepository_CreateEntries(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("inserts all entries in one transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO attendance_entries`).
			WithArgs("sess-1", "a@hall.edu", "Alice Tan", createdAt).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("att-1"))
		mock.ExpectQuery(`INSERT INTO attendance_entries`).
			WithArgs("sess-1", "b@hall.edu", "Ben Lim", createdAt).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("att-2"))
		mock.ExpectCommit()

		repo := NewAttendanceRepository(db)
		entries := []*domain.AttendanceEntry{
			{SessionID: "sess-1", ParticipantEmail: "a@hall.edu", ParticipantName: "Alice Tan", CreatedAt: createdAt},
			{SessionID: "sess-1", ParticipantEmail: "b@hall.edu", ParticipantName: "Ben Lim", CreatedAt: createdAt},
		}
		require.NoError(t, repo.CreateEntries(ctx, entries))
		require.Equal(t, "att-1", entries[0].ID)
		require.Equal(t, "att-2", entries[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed insert rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO attendance_entries`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewAttendanceRepository(db)
		err = repo.CreateEntries(ctx, []*domain.AttendanceEntry{
			{SessionID: "sess-1", ParticipantEmail: "a@hall.edu", ParticipantName: "Alice Tan", CreatedAt: createdAt},
		})
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty input is a no-op", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewAttendanceRepository(db)
		require.NoError(t, repo.CreateEntries(ctx, nil))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAttendanceRepository_ListBySessionID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "session_id", "participant_email", "participant_name", "created_at"}

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, session_id, participant_email, participant_name, created_at\s+FROM attendance_entries`).
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("att-1", "sess-1", "a@hall.edu", "Alice Tan", createdAt))

	repo := NewAttendanceRepository(db)
	entries, err := repo.ListBySessionID(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "Alice Tan", entries[0].ParticipantName)
	require.NoError(t, mock.ExpectationsWereMet())
}
